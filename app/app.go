package app

import (
	"github.com/go-chi/oauth"
	"github.com/mgrabka/preop-intake/config"
	"github.com/mgrabka/preop-intake/store"
)

// App bundles the shared dependencies handed to every controller.
type App struct {
	*oauth.BearerServer
	config.Config
	Submissions  *store.SubmissionStore
	Examinations *store.ExaminationStore
}
