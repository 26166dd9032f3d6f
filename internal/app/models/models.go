package models

// Role identifies the caller type carried in bearer tokens
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHR        Role = "hr"
	RoleVolunteer Role = "volunteer"
)
