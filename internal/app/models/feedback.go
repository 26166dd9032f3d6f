package models

import "time"

// Feedback is a write-once event review submitted by an HR, readable by admin
type Feedback struct {
	ID                     int64     `json:"id" db:"id"`
	CompanyName            string    `json:"companyName" db:"company_name"`
	HRName                 string    `json:"hrName" db:"hr_name"`
	TechnicalKnowledge     int16     `json:"technicalKnowledge" db:"technical_knowledge"`
	ServiceAndCoordination int16     `json:"serviceAndCoordination" db:"service_and_coordination"`
	CommunicationSkills    int16     `json:"communicationSkills" db:"communication_skills"`
	FutureParticipation    int16     `json:"futureParticipation" db:"future_participation"`
	PunctualityAndInterest int16     `json:"punctualityAndInterest" db:"punctuality_and_interest"`
	Suggestions            *string   `json:"suggestions,omitempty" db:"suggestions"`
	IssuesFaced            *string   `json:"issuesFaced,omitempty" db:"issues_faced"`
	ImprovementSuggestions *string   `json:"improvementSuggestions,omitempty" db:"improvement_suggestions"`
	SubmittedAt            time.Time `json:"submittedAt" db:"submitted_at"`
}
