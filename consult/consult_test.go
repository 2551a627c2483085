package consult

import (
	"reflect"
	"testing"
)

func TestRequiredSpecialties(t *testing.T) {
	tests := []struct {
		name       string
		conditions []string
		want       []Specialty
	}{
		{"none", nil, []Specialty{}},
		{"unknown condition", []string{"Migrena"}, []Specialty{}},
		{"hypertension alone is not a trigger", []string{ConditionHypertension}, []Specialty{}},
		{"asthma", []string{ConditionAsthma}, []Specialty{SpecialtyPneumology}},
		{
			"coronary plus epilepsy",
			[]string{ConditionCoronaryDisease, ConditionEpilepsy},
			[]Specialty{SpecialtyCardiology, SpecialtyNeurology},
		},
		{
			"two cardiac conditions report cardiology once",
			[]string{ConditionHeartFailure, ConditionArrhythmia},
			[]Specialty{SpecialtyCardiology},
		},
		{
			"all four clinics",
			[]string{ConditionPacemaker, ConditionCOPD, ConditionParkinson, ConditionAddison},
			[]Specialty{SpecialtyCardiology, SpecialtyPneumology, SpecialtyNeurology, SpecialtyEndocrinology},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredSpecialties(tt.conditions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RequiredSpecialties(%v) = %v, want %v", tt.conditions, got, tt.want)
			}
		})
	}
}

func TestHasRiskCardiacConditions(t *testing.T) {
	if !HasRiskCardiacConditions([]string{ConditionPacemaker}) {
		t.Error("pacemaker should qualify as risk cardiac condition")
	}
	// Arrhythmia requires a referral but is not on the risk list.
	if HasRiskCardiacConditions([]string{ConditionArrhythmia}) {
		t.Error("arrhythmia alone should not qualify as risk cardiac condition")
	}
	if HasRiskCardiacConditions([]string{ConditionHypertension}) {
		t.Error("hypertension should not qualify as risk cardiac condition")
	}
}

func TestNeedsCardiacReferral(t *testing.T) {
	if !NeedsCardiacReferral([]string{ConditionArrhythmia}, false) {
		t.Error("arrhythmia without documentation should need a referral")
	}
	if NeedsCardiacReferral([]string{ConditionArrhythmia}, true) {
		t.Error("recent documentation should waive the referral")
	}
	// Pacemaker is on the risk list but not on the referral list.
	if NeedsCardiacReferral([]string{ConditionPacemaker}, false) {
		t.Error("pacemaker alone should not need a referral")
	}
	if NeedsCardiacReferral(nil, false) {
		t.Error("no conditions should not need a referral")
	}
}

func TestHighRiskConditions(t *testing.T) {
	conditions := []string{
		ConditionHypertension,
		ConditionCoronaryDisease,
		ConditionSleepApnea,
		ConditionKidneyDisease,
	}
	got := HighRiskConditions(conditions)
	want := []string{ConditionCoronaryDisease, ConditionKidneyDisease}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HighRiskConditions(%v) = %v, want %v", conditions, got, want)
	}

	if got := HighRiskConditions(nil); len(got) != 0 {
		t.Errorf("HighRiskConditions(nil) = %v, want empty", got)
	}
}

func TestHasHeartOrLungDiseases(t *testing.T) {
	if !HasHeartOrLungDiseases(nil, []string{ConditionSleepApnea}) {
		t.Error("sleep apnea is a lung concern")
	}
	if !HasHeartOrLungDiseases([]string{ConditionValveDisease}, nil) {
		t.Error("valve disease is a heart concern")
	}
	if HasHeartOrLungDiseases([]string{ConditionArrhythmia}, nil) {
		t.Error("arrhythmia is not on the cardiopulmonary exam list")
	}
	if HasHeartOrLungDiseases([]string{ConditionEpilepsy}, []string{ConditionDiabetesType1}) {
		t.Error("neither epilepsy nor diabetes concerns heart or lungs")
	}
}
