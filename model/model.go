// Package model defines the persisted questionnaire domain types. Field
// json tags follow the payloads exchanged with the web client.
package model

import (
	"time"

	"github.com/mgrabka/preop-intake/catalog"
)

// Status tracks a submission through the doctor's workflow.
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusCompleted:
		return true
	}
	return false
}

// Submission is one completed patient questionnaire.
type Submission struct {
	ID          string      `json:"id"`
	SubmittedAt time.Time   `json:"submittedAt"`
	Patient     PatientData `json:"patientData"`
	Status      Status      `json:"status"`
}

type PatientData struct {
	PersonalInfo       PersonalInfo       `json:"personalInfo"`
	ChronicDiseases    ChronicDiseases    `json:"chronicDiseases"`
	Allergies          Allergies          `json:"allergies"`
	CurrentMedications string             `json:"currentMedications"`
	SelectedDrugs      []SelectedDrug     `json:"selectedDrugs"`
	SubstanceUse       SubstanceUse       `json:"substanceUse"`
	AnesthesiaHistory  AnesthesiaHistory  `json:"anesthesiaHistory"`
	AnesthesiaChoice   AnesthesiaChoice   `json:"anesthesiaSelection"`
	Consultations      ConsultationDocs   `json:"consultations"`
	Consents           Consents           `json:"consents"`
}

type PersonalInfo struct {
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Weight           string `json:"weight"`
	Height           string `json:"height"`
	PlannedProcedure string `json:"plannedProcedure"`
	ProcedureDate    string `json:"procedureDate"`
	EReferralCode    string `json:"eReferralCode,omitempty"`
	EReferralImage   string `json:"eReferralImage,omitempty"`
	EReferralMethod  string `json:"eReferralMethod,omitempty"`
}

// ChronicDiseases groups declared conditions by body system, matching
// the questionnaire's checklist sections.
type ChronicDiseases struct {
	Cardiovascular  []string `json:"cardiovascular"`
	Vascular        []string `json:"vascular"`
	Respiratory     []string `json:"respiratory"`
	Nervous         []string `json:"nervous"`
	Musculoskeletal []string `json:"musculoskeletal"`
	Digestive       []string `json:"digestive"`
	Urinary         []string `json:"urinary"`
	Endocrine       []string `json:"endocrine"`
	Other           []string `json:"other"`
}

// AllConditions flattens every body-system list into one slice, in
// section order.
func (cd ChronicDiseases) AllConditions() []string {
	all := []string{}
	for _, group := range [][]string{
		cd.Cardiovascular, cd.Vascular, cd.Respiratory, cd.Nervous,
		cd.Musculoskeletal, cd.Digestive, cd.Urinary, cd.Endocrine, cd.Other,
	} {
		all = append(all, group...)
	}
	return all
}

type Allergies struct {
	Medications []string `json:"medications"`
	Substances  []string `json:"substances"`
}

// SelectedDrug is one medication the patient takes, either picked from
// the catalog or entered manually (CategoryCustom).
type SelectedDrug struct {
	ID        string       `json:"id"`
	Drug      catalog.Drug `json:"drug"`
	Dosage    string       `json:"dosage"`
	Frequency string       `json:"frequency"`
	Notes     string       `json:"notes,omitempty"`
}

type SubstanceUse struct {
	Tobacco string `json:"tobacco"`
	Alcohol string `json:"alcohol"`
	Drugs   string `json:"drugs"`
}

type AnesthesiaHistory struct {
	PreviousAnesthesia bool   `json:"previousAnesthesia"`
	Complications      string `json:"complications"`
	FamilyHistory      bool   `json:"familyHistory"`
	Implants           string `json:"implants"`
}

type AnesthesiaChoice struct {
	PreferredType         string   `json:"preferredType"`
	Contraindications     []string `json:"contraindications"`
	SpecialConsiderations string   `json:"specialConsiderations"`
}

// ConsultationDocs holds uploaded consultation documentation, one image
// list per specialty clinic.
type ConsultationDocs struct {
	CardiologyImages    []string `json:"cardiologyImages"`
	PneumologyImages    []string `json:"pneumologyImages"`
	NeurologyImages     []string `json:"neurologyImages"`
	EndocrinologyImages []string `json:"endocrinologyImages"`
	OtherImages         []string `json:"otherImages"`
	Notes               string   `json:"notes"`
}

// HasCardiologyEvidence reports whether the patient attached any recent
// cardiology documentation.
func (c ConsultationDocs) HasCardiologyEvidence() bool {
	return len(c.CardiologyImages) > 0
}

type Consents struct {
	DataProcessing          bool `json:"dataProcessing"`
	AIUsage                 bool `json:"aiUsage"`
	ProcedureConsent        bool `json:"procedureConsent"`
	QuestionnaireSubmission bool `json:"questionnaireSubmission"`
}

// Examination is the doctor's structured pre-anesthesia exam record for
// one submission.
type Examination struct {
	SubmissionID string               `json:"submissionId"`
	VitalSigns   VitalSigns           `json:"vitalSigns"`
	Intubation   IntubationAssessment `json:"intubationAssessment"`
	ASA          ASAClassification    `json:"asaClassification"`
	ExamNotes    string               `json:"physicalExamNotes"`
	Findings     ExamFindings         `json:"physicalExamFindings"`
	CompletedAt  time.Time            `json:"completedAt"`
	ExaminedBy   string               `json:"examinedBy"`
}

type VitalSigns struct {
	Systolic         string `json:"systolic"`
	Diastolic        string `json:"diastolic"`
	HeartRate        string `json:"heartRate"`
	Temperature      string `json:"temperature"`
	RespiratoryRate  string `json:"respiratoryRate"`
	OxygenSaturation string `json:"oxygenSaturation"`
}

type IntubationAssessment struct {
	Mallampati        string `json:"mallampati"`
	Thyromental       string `json:"thyromental"`
	NeckMovement      string `json:"neckMovement"`
	JawMovement       string `json:"jawMovement"`
	TeethCondition    string `json:"teethCondition"`
	OverallDifficulty string `json:"overallDifficulty"`
}

type ASAClassification struct {
	Class       string `json:"class"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type ExamFindings struct {
	Cardiovascular []string `json:"cardiovascular"`
	Respiratory    []string `json:"respiratory"`
	Nervous        []string `json:"nervous"`
	Skin           []string `json:"skin"`
	Other          []string `json:"other"`
}
