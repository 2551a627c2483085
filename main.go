package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mgrabka/preop-intake/app"
	"github.com/mgrabka/preop-intake/config"
	"github.com/mgrabka/preop-intake/database"
	"github.com/mgrabka/preop-intake/httpx"
	"github.com/mgrabka/preop-intake/log"
	"github.com/mgrabka/preop-intake/routes"
	"github.com/mgrabka/preop-intake/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	bearerServer := httpx.NewBearerServer(db, cfg)

	app := app.App{
		BearerServer: bearerServer,
		Config:       cfg,
		Submissions:  store.NewSubmissions(db),
		Examinations: store.NewExaminations(db),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
