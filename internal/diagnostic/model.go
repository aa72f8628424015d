package diagnostic

import (
	"vetocheck-api/internal/catalog"
)

type AnswerValue string

const (
	AnswerYes     AnswerValue = "oui"
	AnswerNo      AnswerValue = "non"
	AnswerUnknown AnswerValue = "ne_sais_pas"
)

// Valid reports whether v is one of the three accepted answer values.
func (v AnswerValue) Valid() bool {
	return v == AnswerYes || v == AnswerNo || v == AnswerUnknown
}

// AnswerDetails carries the free-text precisions collected when a critical
// question is answered yes.
type AnswerDetails struct {
	Duration      string `json:"duration,omitempty"`
	Intensity     string `json:"intensity,omitempty"`
	Frequency     string `json:"frequency,omitempty"`
	Circumstances string `json:"circumstances,omitempty"`
}

// Answer is one answered questionnaire entry. The questionnaire collaborator
// guarantees at most one answer per question id; a later answer for the same
// question supersedes an earlier one.
type Answer struct {
	QuestionID string         `json:"question_id"`
	Value      AnswerValue    `json:"value"`
	Details    *AnswerDetails `json:"details,omitempty"`
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "femelle"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// AnimalProfile is captured before the questionnaire starts and is immutable
// for the duration of a diagnostic. Age is in months.
type AnimalProfile struct {
	Name         string          `json:"name"`
	Species      catalog.Species `json:"species"`
	Age          int             `json:"age"`
	Gender       Gender          `json:"gender"`
	IsNeutered   bool            `json:"is_neutered"`
	IsOverweight bool            `json:"is_overweight"`
}

type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskOrange RiskLevel = "orange"
	RiskRed    RiskLevel = "red"
)

type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyUrgent    Urgency = "urgent"
	UrgencySoon      Urgency = "soon"
)

// DangerousPattern is a known dangerous symptom co-occurrence detected in the
// answer batch.
type DangerousPattern struct {
	Name         string   `json:"name"`
	Symptoms     []string `json:"symptoms"`
	UrgencyLevel Urgency  `json:"urgency_level"`
	Description  string   `json:"description"`
}

// VetContact points the owner at an emergency line.
type VetContact struct {
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	IsEmergency bool   `json:"is_emergency"`
}

// DiagnosticResult is the single output record of a completed questionnaire.
type DiagnosticResult struct {
	RiskLevel            RiskLevel          `json:"risk_level"`
	Score                int                `json:"score"`
	UncertaintyRate      int                `json:"uncertainty_rate"`
	MainCategory         string             `json:"main_category"`
	Recommendations      []string           `json:"recommendations"`
	EmergencyAlert       string             `json:"emergency_alert,omitempty"`
	SterilizationMessage string             `json:"sterilization_message,omitempty"`
	CriticalSymptoms     []string           `json:"critical_symptoms"`
	DangerousPatterns    []DangerousPattern `json:"dangerous_patterns"`
	FollowUpActions      []string           `json:"follow_up_actions"`
	ConfidenceLevel      int                `json:"confidence_level"`
	TimeToVet            string             `json:"time_to_vet,omitempty"`
	VetContact           *VetContact        `json:"vet_contact,omitempty"`
}
