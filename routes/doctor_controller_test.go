package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mgrabka/preop-intake/app"
	"github.com/mgrabka/preop-intake/catalog"
	"github.com/mgrabka/preop-intake/consult"
	"github.com/mgrabka/preop-intake/model"
)

func requestWithID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func seedSubmission(t *testing.T, a app.App) model.Submission {
	t.Helper()
	warfarin, _ := catalog.ByID("warfarin")
	submission, err := a.Submissions.Submit(context.Background(), model.PatientData{
		PersonalInfo: model.PersonalInfo{
			FullName:      "Jan Kowalski",
			ProcedureDate: "2024-06-15",
		},
		ChronicDiseases: model.ChronicDiseases{
			Cardiovascular: []string{consult.ConditionArrhythmia},
			Nervous:        []string{consult.ConditionEpilepsy},
		},
		SelectedDrugs: []model.SelectedDrug{
			{ID: "sel-1", Drug: warfarin, Dosage: "5mg", Frequency: "1x dziennie"},
		},
		Consents: model.Consents{DataProcessing: true, QuestionnaireSubmission: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	return submission
}

func TestGetQuestionnaireReview(t *testing.T) {
	a, _ := testApp(t)
	submission := seedSubmission(t, a)

	r := requestWithID(httptest.NewRequest("GET", "/", nil), submission.ID)
	w := httptest.NewRecorder()
	GetQuestionnaireReview(a)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body)
	}

	var review struct {
		RequiredSpecialties  []string `json:"requiredSpecialties"`
		HasRiskCardiac       bool     `json:"hasRiskCardiac"`
		NeedsCardiacReferral bool     `json:"needsCardiacReferral"`
		HighRiskConditions   []string `json:"highRiskConditions"`
		Anticoagulants       []struct {
			HasProtocol bool `json:"hasProtocol"`
			Medication  struct {
				Drug catalog.Drug `json:"drug"`
			} `json:"medication"`
		} `json:"anticoagulants"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &review); err != nil {
		t.Fatal(err)
	}

	wantSpecialties := []string{"Kardiologia", "Neurologia"}
	if len(review.RequiredSpecialties) != 2 ||
		review.RequiredSpecialties[0] != wantSpecialties[0] ||
		review.RequiredSpecialties[1] != wantSpecialties[1] {
		t.Errorf("requiredSpecialties = %v, want %v", review.RequiredSpecialties, wantSpecialties)
	}
	// arrhythmia triggers a referral but is not on the risk list
	if review.HasRiskCardiac {
		t.Error("hasRiskCardiac = true for arrhythmia only")
	}
	if !review.NeedsCardiacReferral {
		t.Error("needsCardiacReferral = false without documentation")
	}
	if len(review.HighRiskConditions) != 1 || review.HighRiskConditions[0] != consult.ConditionEpilepsy {
		t.Errorf("highRiskConditions = %v", review.HighRiskConditions)
	}
	if len(review.Anticoagulants) != 1 ||
		!review.Anticoagulants[0].HasProtocol ||
		review.Anticoagulants[0].Medication.Drug.ID != "warfarin" {
		t.Errorf("anticoagulants = %+v", review.Anticoagulants)
	}
}

func TestGenerateBridgePlanHandler(t *testing.T) {
	a, _ := testApp(t)
	submission := seedSubmission(t, a)

	body := `{"drugId":"warfarin","surgeryDate":"2024-06-15","surgeryType":"major","customInstructions":"Kontrola INR"}`
	r := requestWithID(httptest.NewRequest("POST", "/", strings.NewReader(body)), submission.ID)
	w := httptest.NewRecorder()
	GenerateBridgePlan(a)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body)
	}
	var resp struct {
		Prescription string `json:"prescription"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Jan Kowalski", "10.06.2024", "Enoksaparyna (Clexane)", "Kontrola INR"} {
		if !strings.Contains(resp.Prescription, want) {
			t.Errorf("prescription missing %q:\n%s", want, resp.Prescription)
		}
	}
}

func TestGenerateBridgePlanRejections(t *testing.T) {
	a, _ := testApp(t)
	submission := seedSubmission(t, a)

	tests := []struct {
		name string
		id   string
		body string
		want int
	}{
		{"unknown submission", "no-such-id", `{"drugId":"warfarin","surgeryDate":"2024-06-15"}`, http.StatusNotFound},
		{"no protocol for drug", submission.ID, `{"drugId":"metformin","surgeryDate":"2024-06-15"}`, http.StatusUnprocessableEntity},
		{"invalid date", submission.ID, `{"drugId":"warfarin","surgeryDate":"15.06.2024"}`, http.StatusUnprocessableEntity},
		{"unknown surgery type", submission.ID, `{"drugId":"warfarin","surgeryDate":"2024-06-15","surgeryType":"elective"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := requestWithID(httptest.NewRequest("POST", "/", strings.NewReader(tt.body)), tt.id)
			w := httptest.NewRecorder()
			GenerateBridgePlan(a)(w, r)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.want, w.Body)
			}
		})
	}
}

func TestUpdateQuestionnaireStatusHandler(t *testing.T) {
	a, _ := testApp(t)
	submission := seedSubmission(t, a)

	r := requestWithID(httptest.NewRequest("PUT", "/", strings.NewReader(`{"status":"reviewed"}`)), submission.ID)
	w := httptest.NewRecorder()
	UpdateQuestionnaireStatus(a)(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	loaded, err := a.Submissions.ByID(context.Background(), submission.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Status != model.StatusReviewed {
		t.Errorf("submission status = %q", loaded.Status)
	}

	r = requestWithID(httptest.NewRequest("PUT", "/", strings.NewReader(`{"status":"archived"}`)), submission.ID)
	w = httptest.NewRecorder()
	UpdateQuestionnaireStatus(a)(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: code = %d, want 400", w.Code)
	}
}

func TestExaminationHandlers(t *testing.T) {
	a, _ := testApp(t)
	submission := seedSubmission(t, a)

	r := requestWithID(httptest.NewRequest("GET", "/", nil), submission.ID)
	w := httptest.NewRecorder()
	GetExamination(a)(w, r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("before upsert: status = %d, want 404", w.Code)
	}

	body := `{"vitalSigns":{"systolic":"140"},"asaClassification":{"class":"II"},"examinedBy":"Anna Nowak"}`
	r = requestWithID(httptest.NewRequest("PUT", "/", strings.NewReader(body)), submission.ID)
	w = httptest.NewRecorder()
	UpsertExamination(a)(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: status = %d, body: %s", w.Code, w.Body)
	}

	r = requestWithID(httptest.NewRequest("GET", "/", nil), submission.ID)
	w = httptest.NewRecorder()
	GetExamination(a)(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("after upsert: status = %d", w.Code)
	}
	var exam model.Examination
	if err := json.Unmarshal(w.Body.Bytes(), &exam); err != nil {
		t.Fatal(err)
	}
	if exam.SubmissionID != submission.ID || exam.ASA.Class != "II" || exam.ExaminedBy != "Anna Nowak" {
		t.Errorf("examination = %+v", exam)
	}
}
