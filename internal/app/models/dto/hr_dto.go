package dto

// PersonalReportRequest carries an HR's review of one student. The server
// derives create-vs-edit from the existing report for the caller's own HR
// id; only supplied fields overwrite stored ones on edit. Interviewer
// identity fields are never accepted from the client.
type PersonalReportRequest struct {
	RegisterNumber string `json:"registerNumber" binding:"required"`

	ProfessionalAppearanceAndAttitude *int16 `json:"professionalAppearanceAndAttitude" binding:"omitempty,min=1,max=10"`
	ManagerialAptitude                *int16 `json:"managerialAptitude" binding:"omitempty,min=1,max=10"`
	GeneralIntelligenceAndAwareness   *int16 `json:"generalIntelligenceAndAwareness" binding:"omitempty,min=1,max=10"`
	TechnicalKnowledge                *int16 `json:"technicalKnowledge" binding:"omitempty,min=1,max=10"`
	CommunicationSkills               *int16 `json:"communicationSkills" binding:"omitempty,min=1,max=10"`
	AchievementsAndAmbition           *int16 `json:"achievementsAndAmbition" binding:"omitempty,min=1,max=10"`
	SelfConfidence                    *int16 `json:"selfConfidence" binding:"omitempty,min=1,max=10"`
	OverallScore                      *int16 `json:"overallScore" binding:"omitempty,min=1,max=10"`

	Strengths         *string `json:"strengths"`
	PointsToImproveOn *string `json:"pointsToImproveOn"`
	Comments          *string `json:"comments"`
}

// FeedbackRequest carries an HR's write-once event feedback
type FeedbackRequest struct {
	CompanyName            string `json:"companyName" binding:"required"`
	HRName                 string `json:"hrName" binding:"required"`
	TechnicalKnowledge     int16  `json:"technicalKnowledge" binding:"required,min=1,max=5"`
	ServiceAndCoordination int16  `json:"serviceAndCoordination" binding:"required,min=1,max=5"`
	CommunicationSkills    int16  `json:"communicationSkills" binding:"required,min=1,max=5"`
	FutureParticipation    int16  `json:"futureParticipation" binding:"required,min=1,max=5"`
	PunctualityAndInterest int16  `json:"punctualityAndInterest" binding:"required,min=1,max=5"`

	Suggestions            *string `json:"suggestions"`
	IssuesFaced            *string `json:"issuesFaced"`
	ImprovementSuggestions *string `json:"improvementSuggestions"`
}
