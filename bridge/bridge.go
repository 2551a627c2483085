// Package bridge implements the anticoagulant bridge-therapy rule
// engine: static discontinuation templates, calendar-date arithmetic
// around a surgery date and prescription text rendering. All operations
// are pure and safe for concurrent use.
package bridge

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgrabka/preop-intake/catalog"
	"github.com/mgrabka/preop-intake/model"
)

const (
	surgeryDateLayout = "2006-01-02"
	planDateLayout    = "02.01.2006"
)

// anticoagulantCategories are the catalog categories that flag a
// medication for bridge-therapy review.
var anticoagulantCategories = map[catalog.Category]bool{
	catalog.CategoryAnticoagulant: true,
	catalog.CategoryHeparin:       true,
	catalog.CategoryAntiplatelet:  true,
}

// Classify filters the patient's medications down to those in an
// anticoagulant category, preserving input order.
func Classify(medications []model.SelectedDrug) []model.SelectedDrug {
	detected := []model.SelectedDrug{}
	for _, med := range medications {
		if anticoagulantCategories[med.Drug.Category] {
			detected = append(detected, med)
		}
	}
	return detected
}

// LookupTemplate finds the discontinuation protocol for a drug. A
// missing template is an expected outcome, not an error: the drug has
// no defined bridging protocol.
func LookupTemplate(drugID string) (Template, bool) {
	for _, tpl := range templates {
		if tpl.DrugID == drugID {
			return tpl, true
		}
	}
	return Template{}, false
}

// Templates returns all defined discontinuation protocols.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Dates are the concrete calendar dates computed for one template and
// surgery date. BridgeStart and BridgeEnd are nil when the template has
// no bridging sub-protocol.
type Dates struct {
	Surgery     time.Time
	Stop        time.Time
	BridgeStart *time.Time
	BridgeEnd   *time.Time
}

// ComputeDates resolves a template's day offsets against a surgery date
// in ISO format (2006-01-02). Arithmetic is whole-calendar-day; day 0
// is the surgery date itself.
func ComputeDates(tpl Template, surgeryDate string) (Dates, error) {
	surgery, err := time.Parse(surgeryDateLayout, surgeryDate)
	if err != nil {
		return Dates{}, fmt.Errorf("parse surgery date %q: %w", surgeryDate, err)
	}

	dates := Dates{
		Surgery: surgery,
		Stop:    surgery.AddDate(0, 0, -tpl.StopDaysBefore),
	}
	if tpl.Bridge != nil {
		start := surgery.AddDate(0, 0, -tpl.Bridge.StartDay)
		end := surgery.AddDate(0, 0, -tpl.Bridge.EndDay)
		dates.BridgeStart = &start
		dates.BridgeEnd = &end
	}
	return dates, nil
}

// PlanTherapy is the dated bridging sub-plan inside a Plan.
type PlanTherapy struct {
	Drug         string `json:"drug"`
	Dosage       string `json:"dosage"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Instructions string `json:"instructions"`
}

// Plan is a generated bridge-therapy plan for one patient and surgery
// date. Dates are pre-rendered in Polish day.month.year format. Plans
// are immutable once generated; changed inputs produce a new plan.
type Plan struct {
	Patient            string       `json:"patient"`
	Medication         string       `json:"medication"`
	SurgeryDate        string       `json:"surgeryDate"`
	SurgeryType        string       `json:"surgeryType"`
	StopDate           string       `json:"stopDate"`
	Bridge             *PlanTherapy `json:"bridgeTherapy,omitempty"`
	ResumeInstructions string       `json:"resumeInstructions"`
	CustomInstructions string       `json:"customInstructions,omitempty"`
	Risk               RiskLevel    `json:"riskLevel"`
	GeneratedAt        time.Time    `json:"generatedAt"`
}

// GeneratePlan builds a dated plan from a template. The surgery date
// must be a valid ISO date; everything else is template substitution.
func GeneratePlan(patient string, tpl Template, surgeryDate string, surgeryType SurgeryType, customInstructions string) (Plan, error) {
	dates, err := ComputeDates(tpl, surgeryDate)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Patient:            patient,
		Medication:         tpl.DrugName,
		SurgeryDate:        dates.Surgery.Format(planDateLayout),
		SurgeryType:        surgeryType.Label(),
		StopDate:           dates.Stop.Format(planDateLayout),
		ResumeInstructions: tpl.ResumeInstructions,
		CustomInstructions: customInstructions,
		Risk:               tpl.Risk,
		GeneratedAt:        time.Now(),
	}
	if tpl.Bridge != nil {
		plan.Bridge = &PlanTherapy{
			Drug:         tpl.Bridge.Drug,
			Dosage:       tpl.Bridge.Dosage,
			StartDate:    dates.BridgeStart.Format(planDateLayout),
			EndDate:      dates.BridgeEnd.Format(planDateLayout),
			Instructions: tpl.Bridge.Instructions,
		}
	}
	return plan, nil
}

// RenderPrescription formats a plan as printable prescription text.
// The bridging section is omitted when the plan has none and the
// remaining sections renumber; same for empty custom instructions.
func RenderPrescription(plan Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RECEPTA - TERAPIA POMOSTOWA\n\n")
	fmt.Fprintf(&b, "Pacjent: %s\n", plan.Patient)
	fmt.Fprintf(&b, "Data zabiegu: %s\n", plan.SurgeryDate)
	fmt.Fprintf(&b, "Rodzaj zabiegu: %s\n\n", plan.SurgeryType)
	b.WriteString("ZALECENIA:\n\n")

	section := 1
	fmt.Fprintf(&b, "%d. ODSTAWIENIE LEKU:\n   %s - odstawić %s\n\n", section, plan.Medication, plan.StopDate)

	if plan.Bridge != nil {
		section++
		fmt.Fprintf(&b, "%d. TERAPIA POMOSTOWA:\n", section)
		fmt.Fprintf(&b, "   %s\n", plan.Bridge.Drug)
		fmt.Fprintf(&b, "   Dawkowanie: %s\n", plan.Bridge.Dosage)
		fmt.Fprintf(&b, "   Od: %s\n", plan.Bridge.StartDate)
		fmt.Fprintf(&b, "   Do: %s\n\n", plan.Bridge.EndDate)
		fmt.Fprintf(&b, "   INSTRUKCJE: %s\n\n", plan.Bridge.Instructions)
	}

	section++
	fmt.Fprintf(&b, "%d. WZNOWIENIE PO ZABIEGU:\n   %s\n\n", section, plan.ResumeInstructions)

	if plan.CustomInstructions != "" {
		section++
		fmt.Fprintf(&b, "%d. DODATKOWE UWAGI:\n   %s\n\n", section, plan.CustomInstructions)
	}

	fmt.Fprintf(&b, "Data wystawienia: %s", plan.GeneratedAt.Format(planDateLayout))
	return b.String()
}
