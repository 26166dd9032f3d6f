package models

import "time"

// PersonalReport is one HR's scored interview review of one student.
// At most one report exists per (student, HR) pair; the interviewer fields
// are stamped from the authenticated identity, never from the client.
type PersonalReport struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	HRID      int64 `json:"hrId" db:"hr_id"`

	// Ratings, each 1-10
	ProfessionalAppearance *int16 `json:"professionalAppearanceAndAttitude,omitempty" db:"professional_appearance"`
	ManagerialAptitude     *int16 `json:"managerialAptitude,omitempty" db:"managerial_aptitude"`
	GeneralIntelligence    *int16 `json:"generalIntelligenceAndAwareness,omitempty" db:"general_intelligence"`
	TechnicalKnowledge     *int16 `json:"technicalKnowledge,omitempty" db:"technical_knowledge"`
	CommunicationSkills    *int16 `json:"communicationSkills,omitempty" db:"communication_skills"`
	AchievementsAmbition   *int16 `json:"achievementsAndAmbition,omitempty" db:"achievements_ambition"`
	SelfConfidence         *int16 `json:"selfConfidence,omitempty" db:"self_confidence"`
	OverallScore           *int16 `json:"overallScore,omitempty" db:"overall_score"`

	Strengths       *string `json:"strengths,omitempty" db:"strengths"`
	PointsToImprove *string `json:"pointsToImproveOn,omitempty" db:"points_to_improve"`
	Comments        *string `json:"comments,omitempty" db:"comments"`

	InterviewerName    string    `json:"interviewerName" db:"interviewer_name"`
	InterviewerCompany string    `json:"interviewerCompany" db:"interviewer_company"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}
