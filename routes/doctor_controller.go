package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
	"github.com/go-chi/render"
	"github.com/mgrabka/preop-intake/app"
	"github.com/mgrabka/preop-intake/bridge"
	"github.com/mgrabka/preop-intake/consult"
	"github.com/mgrabka/preop-intake/httpx"
	"github.com/mgrabka/preop-intake/log"
	"github.com/mgrabka/preop-intake/model"
	"github.com/mgrabka/preop-intake/store"
)

func ListQuestionnaires(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.Submissions.All(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_questionnaires", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

func GetQuestionnaireById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Submissions.ByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_questionnaire", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_questionnaire", err)
			return
		}

		render.JSON(w, r, submission)
	}
}

func UpdateQuestionnaireStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body struct {
			Status model.Status `json:"status"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if !body.Status.Valid() {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"update_status.validate", "unknown status %q", body.Status)
			return
		}

		err = app.Submissions.UpdateStatus(r.Context(), id, body.Status)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_status", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_status", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// detectedAnticoagulant pairs a flagged medication with its
// discontinuation protocol, when one is defined.
type detectedAnticoagulant struct {
	Medication  model.SelectedDrug `json:"medication"`
	HasProtocol bool               `json:"hasProtocol"`
	Template    *bridge.Template   `json:"template,omitempty"`
}

func GetQuestionnaireReview(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Submissions.ByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_review", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_review", err)
			return
		}

		patient := submission.Patient
		all := patient.ChronicDiseases.AllConditions()
		cardio := patient.ChronicDiseases.Cardiovascular

		anticoagulants := []detectedAnticoagulant{}
		for _, med := range bridge.Classify(patient.SelectedDrugs) {
			detected := detectedAnticoagulant{Medication: med}
			if tpl, ok := bridge.LookupTemplate(med.Drug.ID); ok {
				detected.HasProtocol = true
				detected.Template = &tpl
			}
			anticoagulants = append(anticoagulants, detected)
		}

		render.JSON(w, r, map[string]any{
			"requiredSpecialties":  consult.RequiredSpecialties(all),
			"hasRiskCardiac":       consult.HasRiskCardiacConditions(cardio),
			"needsCardiacReferral": consult.NeedsCardiacReferral(cardio, patient.Consultations.HasCardiologyEvidence()),
			"highRiskConditions":   consult.HighRiskConditions(all),
			"hasHeartOrLung": consult.HasHeartOrLungDiseases(
				cardio, patient.ChronicDiseases.Respiratory),
			"anticoagulants": anticoagulants,
		})
	}
}

func GenerateBridgePlan(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Submissions.ByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "bridge_plan", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.bridge_plan", err)
			return
		}

		var body struct {
			DrugID             string             `json:"drugId"`
			SurgeryDate        string             `json:"surgeryDate"`
			SurgeryType        bridge.SurgeryType `json:"surgeryType"`
			CustomInstructions string             `json:"customInstructions"`
		}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if body.SurgeryType != "" && !body.SurgeryType.Valid() {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"bridge_plan.validate", "unknown surgery type %q", body.SurgeryType)
			return
		}

		tpl, ok := bridge.LookupTemplate(body.DrugID)
		if !ok {
			// a legitimate outcome: this drug has no bridging protocol
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel,
				"bridge_plan.lookup_template", "no bridging protocol for drug %q", body.DrugID)
			return
		}

		plan, err := bridge.GeneratePlan(
			submission.Patient.PersonalInfo.FullName,
			tpl,
			body.SurgeryDate,
			body.SurgeryType,
			body.CustomInstructions,
		)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel,
				"bridge_plan.generate", "invalid surgery date %q", body.SurgeryDate)
			return
		}

		render.JSON(w, r, map[string]any{
			"plan":         plan,
			"prescription": bridge.RenderPrescription(plan),
		})
	}
}

func GetExamination(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		exam, err := app.Examinations.BySubmission(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_examination", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_examination", err)
			return
		}

		render.JSON(w, r, exam)
	}
}

func UpsertExamination(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, err := app.Submissions.ByID(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httpx.LogNotFound(w, "put_examination", id)
				return
			}
			httpx.LogInternalError(w, "db.put_examination.get_questionnaire", err)
			return
		}

		exam := model.Examination{}
		err := render.DecodeJSON(r.Body, &exam)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		exam.SubmissionID = id
		if exam.ExaminedBy == "" {
			exam.ExaminedBy = doctorName(r)
		}

		exam, err = app.Examinations.Upsert(r.Context(), exam)
		if err != nil {
			httpx.LogInternalError(w, "db.put_examination", err)
			return
		}

		render.JSON(w, r, exam)
	}
}

// doctorName reads the authenticated doctor's display name from the
// token claims set at login.
func doctorName(r *http.Request) string {
	claims, ok := r.Context().Value(oauth.ClaimsContext).(map[string]string)
	if !ok {
		return ""
	}
	return claims["full_name"]
}
