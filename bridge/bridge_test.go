package bridge

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mgrabka/preop-intake/catalog"
	"github.com/mgrabka/preop-intake/model"
)

func selected(drugID string) model.SelectedDrug {
	drug, ok := catalog.ByID(drugID)
	if !ok {
		panic("unknown drug id " + drugID)
	}
	return model.SelectedDrug{ID: "sel-" + drugID, Drug: drug, Dosage: drug.CommonDosages[0], Frequency: "1x dziennie"}
}

func TestClassify(t *testing.T) {
	meds := []model.SelectedDrug{
		selected("metformin"),
		selected("warfarin"),
		selected("enoxaparin"),
		selected("clopidogrel"),
		selected("bisoprolol"),
	}

	got := Classify(meds)
	want := []string{"warfarin", "enoxaparin", "clopidogrel"}
	if len(got) != len(want) {
		t.Fatalf("Classify returned %d drugs, want %d", len(got), len(want))
	}
	for i, med := range got {
		if med.Drug.ID != want[i] {
			t.Errorf("Classify[%d] = %s, want %s", i, med.Drug.ID, want[i])
		}
	}

	again := Classify(meds)
	if !reflect.DeepEqual(got, again) {
		t.Error("Classify is not deterministic over unchanged input")
	}

	if got := Classify(nil); len(got) != 0 {
		t.Errorf("Classify(nil) = %v, want empty", got)
	}
}

func TestLookupTemplate(t *testing.T) {
	tpl, ok := LookupTemplate("aspirin")
	if !ok {
		t.Fatal("LookupTemplate(aspirin) not found")
	}
	if tpl.StopDaysBefore != 7 || tpl.Bridge != nil || tpl.Risk != RiskLow {
		t.Errorf("aspirin template = %+v", tpl)
	}

	if _, ok := LookupTemplate("metformin"); ok {
		t.Error("LookupTemplate(metformin) found a protocol")
	}
}

func TestComputeDates(t *testing.T) {
	warfarin, _ := LookupTemplate("warfarin")
	dates, err := ComputeDates(warfarin, "2024-06-15")
	if err != nil {
		t.Fatal(err)
	}

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	if !dates.Stop.Equal(day("2024-06-10")) {
		t.Errorf("stop date = %s, want 2024-06-10", dates.Stop.Format("2006-01-02"))
	}
	if dates.BridgeStart == nil || !dates.BridgeStart.Equal(day("2024-06-12")) {
		t.Errorf("bridge start = %v, want 2024-06-12", dates.BridgeStart)
	}
	if dates.BridgeEnd == nil || !dates.BridgeEnd.Equal(day("2024-06-14")) {
		t.Errorf("bridge end = %v, want 2024-06-14", dates.BridgeEnd)
	}
}

func TestComputeDatesWithoutBridgeProtocol(t *testing.T) {
	aspirin, _ := LookupTemplate("aspirin")
	dates, err := ComputeDates(aspirin, "2024-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if dates.Stop.Format("2006-01-02") != "2024-06-08" {
		t.Errorf("stop date = %s, want 2024-06-08", dates.Stop.Format("2006-01-02"))
	}
	if dates.BridgeStart != nil || dates.BridgeEnd != nil {
		t.Errorf("aspirin has no bridge protocol, got start=%v end=%v", dates.BridgeStart, dates.BridgeEnd)
	}
}

func TestComputeDatesInvalidDate(t *testing.T) {
	warfarin, _ := LookupTemplate("warfarin")
	for _, input := range []string{"", "15.06.2024", "2024-13-40", "wkrótce"} {
		if _, err := ComputeDates(warfarin, input); err == nil {
			t.Errorf("ComputeDates(%q) did not fail", input)
		}
	}
}

func TestGeneratePlan(t *testing.T) {
	warfarin, _ := LookupTemplate("warfarin")
	plan, err := GeneratePlan("Jan Kowalski", warfarin, "2024-06-15", SurgeryMajor, "Kontrola INR przed zabiegiem")
	if err != nil {
		t.Fatal(err)
	}

	if plan.Patient != "Jan Kowalski" || plan.Medication != "Warfaryna" {
		t.Errorf("plan header = %q / %q", plan.Patient, plan.Medication)
	}
	if plan.SurgeryDate != "15.06.2024" || plan.StopDate != "10.06.2024" {
		t.Errorf("plan dates = surgery %s, stop %s", plan.SurgeryDate, plan.StopDate)
	}
	if plan.SurgeryType != "Zabieg duży (wysokie ryzyko krwawienia)" {
		t.Errorf("plan surgery type = %q", plan.SurgeryType)
	}
	if plan.Bridge == nil {
		t.Fatal("warfarin plan has no bridge therapy")
	}
	if plan.Bridge.StartDate != "12.06.2024" || plan.Bridge.EndDate != "14.06.2024" {
		t.Errorf("bridge window = %s - %s", plan.Bridge.StartDate, plan.Bridge.EndDate)
	}
	if plan.Risk != RiskHigh {
		t.Errorf("plan risk = %s", plan.Risk)
	}
	if plan.GeneratedAt.IsZero() {
		t.Error("plan has no generation timestamp")
	}
}

func TestRenderPrescription(t *testing.T) {
	warfarin, _ := LookupTemplate("warfarin")
	plan, err := GeneratePlan("Jan Kowalski", warfarin, "2024-06-15", SurgeryModerate, "")
	if err != nil {
		t.Fatal(err)
	}

	text := RenderPrescription(plan)
	for _, want := range []string{
		"RECEPTA - TERAPIA POMOSTOWA",
		"Pacjent: Jan Kowalski",
		"Data zabiegu: 15.06.2024",
		"1. ODSTAWIENIE LEKU:",
		"Warfaryna - odstawić 10.06.2024",
		"2. TERAPIA POMOSTOWA:",
		"Enoksaparyna (Clexane)",
		"Od: 12.06.2024",
		"Do: 14.06.2024",
		"3. WZNOWIENIE PO ZABIEGU:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prescription missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "DODATKOWE UWAGI") {
		t.Error("prescription renders custom instructions section without content")
	}
}

func TestRenderPrescriptionWithoutBridgeSection(t *testing.T) {
	aspirin, _ := LookupTemplate("aspirin")
	plan, err := GeneratePlan("Anna Nowak", aspirin, "2024-06-15", SurgeryMinor, "Odstawić także ibuprofen")
	if err != nil {
		t.Fatal(err)
	}

	text := RenderPrescription(plan)
	if strings.Contains(text, "TERAPIA POMOSTOWA:") {
		t.Errorf("aspirin prescription renders a bridge section:\n%s", text)
	}
	// Sections renumber when the bridge section is absent.
	for _, want := range []string{
		"1. ODSTAWIENIE LEKU:",
		"2. WZNOWIENIE PO ZABIEGU:",
		"3. DODATKOWE UWAGI:",
		"Odstawić także ibuprofen",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prescription missing %q:\n%s", want, text)
		}
	}
}

func TestSurgeryTypeLabels(t *testing.T) {
	if !SurgeryEmergency.Valid() {
		t.Error("emergency should be a valid surgery type")
	}
	if SurgeryType("elective").Valid() {
		t.Error("elective is not a defined surgery type")
	}
	if got := SurgeryType("elective").Label(); got != "elective" {
		t.Errorf("unknown type label = %q, want raw value", got)
	}
}
