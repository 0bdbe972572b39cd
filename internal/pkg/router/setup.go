package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fkuebler/paymirror/app/repository"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// Router installs a group of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers every route explicitly at startup. Nothing is
// registered as an import side effect.
func InstallRouter(app *fiber.App, repos *repository.Repositories, syncer *sync.Syncer) {
	setup(app, NewHttpRouter(repos, syncer))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
