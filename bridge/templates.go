package bridge

// RiskLevel grades the thromboembolic risk of interrupting a drug.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SurgeryType classifies the planned procedure by bleeding risk.
type SurgeryType string

const (
	SurgeryMinor     SurgeryType = "minor"
	SurgeryModerate  SurgeryType = "moderate"
	SurgeryMajor     SurgeryType = "major"
	SurgeryEmergency SurgeryType = "emergency"
)

var surgeryTypeLabels = map[SurgeryType]string{
	SurgeryMinor:     "Zabieg małoinwazyjny (niskie ryzyko krwawienia)",
	SurgeryModerate:  "Zabieg umiarkowany (średnie ryzyko krwawienia)",
	SurgeryMajor:     "Zabieg duży (wysokie ryzyko krwawienia)",
	SurgeryEmergency: "Zabieg pilny/nagły",
}

// Label returns the Polish display text for the surgery type, or the
// raw value for an unknown type.
func (st SurgeryType) Label() string {
	if label, ok := surgeryTypeLabels[st]; ok {
		return label
	}
	return string(st)
}

func (st SurgeryType) Valid() bool {
	_, ok := surgeryTypeLabels[st]
	return ok
}

// Therapy describes the substitute injectable given while the primary
// anticoagulant is withheld. Day offsets count backwards from surgery;
// day 0 is the surgery date itself.
type Therapy struct {
	Drug         string `json:"drug"`
	Dosage       string `json:"dosage"`
	StartDay     int    `json:"startDay"`
	EndDay       int    `json:"endDay"`
	Instructions string `json:"instructions"`
}

// Template is the static discontinuation protocol for one drug. Not
// every anticoagulant has one; NOACs clear fast enough that most need
// no bridging at all.
type Template struct {
	DrugID             string    `json:"drugId"`
	DrugName           string    `json:"drugName"`
	Indication         string    `json:"indication"`
	StopDaysBefore     int       `json:"stopDaysBefore"`
	Bridge             *Therapy  `json:"bridgeTherapy,omitempty"`
	ResumeInstructions string    `json:"resumeInstructions"`
	Risk               RiskLevel `json:"riskLevel"`
}

var lmwhBridge = Therapy{
	Drug:         "Enoksaparyna (Clexane)",
	Dosage:       "1mg/kg s.c. 2x dziennie",
	StartDay:     3,
	EndDay:       1,
	Instructions: "Ostatnia dawka 12-24h przed zabiegiem",
}

var templates = []Template{
	{
		DrugID:             "warfarin",
		DrugName:           "Warfaryna",
		Indication:         "Migotanie przedsionków / Zaburzenia rytmu",
		StopDaysBefore:     5,
		Bridge:             &lmwhBridge,
		ResumeInstructions: "Wznowić 12-24h po zabiegu, gdy hemostaza prawidłowa",
		Risk:               RiskHigh,
	},
	{
		DrugID:             "acenocoumarol",
		DrugName:           "Acenocoumarol (Sintrom)",
		Indication:         "Migotanie przedsionków / Zaburzenia rytmu",
		StopDaysBefore:     5,
		Bridge:             &lmwhBridge,
		ResumeInstructions: "Wznowić 12-24h po zabiegu, gdy hemostaza prawidłowa",
		Risk:               RiskHigh,
	},
	{
		DrugID:             "rivaroxaban",
		DrugName:           "Riwaroksaban (Xarelto)",
		Indication:         "Migotanie przedsionków",
		StopDaysBefore:     2,
		ResumeInstructions: "Wznowić 6-10h po zabiegu małoinwazyjnym, 48-72h po dużym zabiegu",
		Risk:               RiskMedium,
	},
	{
		DrugID:             "apixaban",
		DrugName:           "Apiksaban (Eliquis)",
		Indication:         "Migotanie przedsionków",
		StopDaysBefore:     2,
		ResumeInstructions: "Wznowić 6-10h po zabiegu małoinwazyjnym, 48-72h po dużym zabiegu",
		Risk:               RiskMedium,
	},
	{
		DrugID:             "dabigatran",
		DrugName:           "Dabigatran (Pradaxa)",
		Indication:         "Migotanie przedsionków",
		StopDaysBefore:     2,
		ResumeInstructions: "Wznowić 6-10h po zabiegu małoinwazyjnym, 48-72h po dużym zabiegu",
		Risk:               RiskMedium,
	},
	{
		DrugID:             "clopidogrel",
		DrugName:           "Klopidogrel (Plavix)",
		Indication:         "Profilaktyka przeciwpłytkowa po PCI/stentach",
		StopDaysBefore:     7,
		ResumeInstructions: "Wznowić 24h po zabiegu jeśli hemostaza prawidłowa",
		Risk:               RiskHigh,
	},
	{
		DrugID:             "aspirin",
		DrugName:           "Kwas acetylosalicylowy (Aspiryna)",
		Indication:         "Profilaktyka pierwotna/wtórna",
		StopDaysBefore:     7,
		ResumeInstructions: "Wznowić 24h po zabiegu",
		Risk:               RiskLow,
	},
}
