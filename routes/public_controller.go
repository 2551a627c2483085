package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mgrabka/preop-intake/app"
	"github.com/mgrabka/preop-intake/catalog"
	"github.com/mgrabka/preop-intake/httpx"
	"github.com/mgrabka/preop-intake/log"
	"github.com/mgrabka/preop-intake/model"
)

func SearchDrugs(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		limit := 0
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			var err error
			limit, err = strconv.Atoi(rawLimit)
			if err != nil {
				httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_query_param.limit")
				return
			}
		}

		render.JSON(w, r, map[string]any{
			"drugs": catalog.Search(query, limit),
		})
	}
}

func ListDrugCategories(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"categories": catalog.Categories(),
		})
	}
}

func GetDrugsByCategory(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		render.JSON(w, r, map[string]any{
			"drugs": catalog.ByCategory(catalog.Category(category)),
		})
	}
}

func GetDrugById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		drug, ok := catalog.ByID(id)
		if !ok {
			httpx.LogNotFound(w, "get_drug", id)
			return
		}
		render.JSON(w, r, drug)
	}
}

func SubmitQuestionnaire(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patient := model.PatientData{}
		err := render.DecodeJSON(r.Body, &patient)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if patient.PersonalInfo.FullName == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"submit_questionnaire.validate", "missing patient name")
			return
		}
		if !patient.Consents.DataProcessing || !patient.Consents.QuestionnaireSubmission {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"submit_questionnaire.validate", "missing required consents")
			return
		}

		// manually entered drugs carry no catalog category
		for i, sd := range patient.SelectedDrugs {
			if sd.Drug.Category == "" {
				patient.SelectedDrugs[i].Drug.Category = catalog.CategoryCustom
			}
		}

		submission, err := app.Submissions.Submit(r.Context(), patient)
		if err != nil {
			httpx.LogInternalError(w, "db.submit_questionnaire", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": submission.ID,
		})
	}
}
