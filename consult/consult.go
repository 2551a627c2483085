// Package consult derives specialist consultation requirements and risk
// qualifiers from a patient's declared chronic diseases. Conditions are
// matched by their exact questionnaire labels.
package consult

// Specialty is a closed set of specialist clinics a patient can be
// referred to before anesthesia.
type Specialty string

const (
	SpecialtyCardiology    Specialty = "Kardiologia"
	SpecialtyPneumology    Specialty = "Pulmonologia"
	SpecialtyNeurology     Specialty = "Neurologia"
	SpecialtyEndocrinology Specialty = "Endokrynologia"
)

// Condition labels as they appear on the questionnaire checklists.
const (
	ConditionHypertension    = "Nadciśnienie tętnicze"
	ConditionCoronaryDisease = "Choroba wieńcowa / przebyte zawały serca"
	ConditionArrhythmia      = "Zaburzenia rytmu serca (np. migotanie przedsionków)"
	ConditionHeartFailure    = "Niewydolność serca"
	ConditionValveDisease    = "Wady zastawkowe serca"
	ConditionPacemaker       = "Wszczepiony rozrusznik / ICD"

	ConditionAsthma     = "Astma oskrzelowa"
	ConditionCOPD       = "POChP (Przewlekła Obturacyjna Choroba Płuc)"
	ConditionSleepApnea = "Bezdech senny"

	ConditionEpilepsy  = "Padaczka"
	ConditionStroke    = "Udar mózgu lub TIA"
	ConditionParkinson = "Choroba Parkinsona"
	ConditionMS        = "Stwardnienie rozsiane"

	ConditionDiabetesType1  = "Cukrzyca typu 1"
	ConditionHypothyroidism = "Niedoczynność tarczycy (hipotyroza)"
	ConditionHyperthyroid   = "Nadczynność tarczycy (hipertyroza)"
	ConditionAddison        = "Choroba Addisona"

	ConditionKidneyDisease = "Przewlekła choroba nerek"
)

// specialtyTriggers maps each specialty to the conditions that require a
// consultation there. Order fixes the order specialties are reported in.
var specialtyTriggers = []struct {
	specialty  Specialty
	conditions []string
}{
	{SpecialtyCardiology, []string{
		ConditionCoronaryDisease,
		ConditionHeartFailure,
		ConditionValveDisease,
		ConditionPacemaker,
		ConditionArrhythmia,
	}},
	{SpecialtyPneumology, []string{
		ConditionAsthma,
		ConditionCOPD,
		ConditionSleepApnea,
	}},
	{SpecialtyNeurology, []string{
		ConditionEpilepsy,
		ConditionStroke,
		ConditionParkinson,
		ConditionMS,
	}},
	{SpecialtyEndocrinology, []string{
		ConditionDiabetesType1,
		ConditionHypothyroidism,
		ConditionHyperthyroid,
		ConditionAddison,
	}},
}

// riskCardiacConditions are the cardiac findings that by themselves mark
// the patient as high anesthesia risk.
var riskCardiacConditions = []string{
	ConditionCoronaryDisease,
	ConditionHeartFailure,
	ConditionValveDisease,
	ConditionPacemaker,
}

// referralCardiacConditions are the cardiac findings that require a
// fresh cardiology opinion when no recent documentation is on file.
// Deliberately not the same list as riskCardiacConditions.
var referralCardiacConditions = []string{
	ConditionCoronaryDisease,
	ConditionArrhythmia,
	ConditionHeartFailure,
}

var highRiskConditions = []string{
	ConditionCoronaryDisease,
	ConditionHeartFailure,
	ConditionAsthma,
	ConditionCOPD,
	ConditionEpilepsy,
	ConditionDiabetesType1,
	ConditionKidneyDisease,
}

var heartOrLungConditions = []string{
	ConditionCoronaryDisease,
	ConditionHeartFailure,
	ConditionValveDisease,
	ConditionPacemaker,
	ConditionAsthma,
	ConditionCOPD,
	ConditionSleepApnea,
}

func containsAny(conditions, triggers []string) bool {
	for _, c := range conditions {
		for _, trig := range triggers {
			if c == trig {
				return true
			}
		}
	}
	return false
}

// RequiredSpecialties returns the specialties the patient must consult,
// given every condition they declared, in fixed clinic order without
// duplicates. Unknown condition strings are ignored.
func RequiredSpecialties(conditions []string) []Specialty {
	specialties := []Specialty{}
	for _, trig := range specialtyTriggers {
		if containsAny(conditions, trig.conditions) {
			specialties = append(specialties, trig.specialty)
		}
	}
	return specialties
}

// HasRiskCardiacConditions reports whether any declared cardiac condition
// alone qualifies the patient as high anesthesia risk.
func HasRiskCardiacConditions(cardiovascular []string) bool {
	return containsAny(cardiovascular, riskCardiacConditions)
}

// NeedsCardiacReferral reports whether the patient needs a new cardiology
// referral. Recent documentation (ECG/echo on file) waives it.
func NeedsCardiacReferral(cardiovascular []string, hasRecentEvidence bool) bool {
	if hasRecentEvidence {
		return false
	}
	return containsAny(cardiovascular, referralCardiacConditions)
}

// HighRiskConditions filters the declared conditions down to those on the
// high-anesthesia-risk list, preserving input order.
func HighRiskConditions(conditions []string) []string {
	matched := []string{}
	for _, c := range conditions {
		for _, hr := range highRiskConditions {
			if c == hr {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}

// HasHeartOrLungDiseases reports whether any declared cardiovascular or
// respiratory condition concerns the heart or lungs, which gates the
// cardiopulmonary exam findings on the doctor dashboard.
func HasHeartOrLungDiseases(cardiovascular, respiratory []string) bool {
	return containsAny(cardiovascular, heartOrLungConditions) ||
		containsAny(respiratory, heartOrLungConditions)
}
