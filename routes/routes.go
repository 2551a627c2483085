package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/mgrabka/preop-intake/app"
	"github.com/mgrabka/preop-intake/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Doctor(app.TokenSecret)).
		Mount("/panel", servePrivateFiles("/panel"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// drug catalog
	api.Get("/drugs", SearchDrugs(app))
	api.Get("/drugs/categories", ListDrugCategories(app))
	api.Get("/drugs/category/{category}", GetDrugsByCategory(app))
	api.Get("/drugs/{id}", GetDrugById(app))

	// patient questionnaire intake
	api.Post("/questionnaires", SubmitQuestionnaire(app))

	api.Route("/doctor", func(r chi.Router) {
		r.Use(middlewares.Doctor(app.TokenSecret))

		r.Get("/questionnaires", ListQuestionnaires(app))
		r.Get("/questionnaires/{id}", GetQuestionnaireById(app))
		r.Put("/questionnaires/{id}/status", UpdateQuestionnaireStatus(app))
		r.Get("/questionnaires/{id}/review", GetQuestionnaireReview(app))
		r.Post("/questionnaires/{id}/bridge-plan", GenerateBridgePlan(app))
		r.Get("/questionnaires/{id}/examination", GetExamination(app))
		r.Put("/questionnaires/{id}/examination", UpsertExamination(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
