package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	"github.com/fkuebler/paymirror/app/repository"
	"github.com/fkuebler/paymirror/internal/pkg/cache"
	"github.com/fkuebler/paymirror/internal/pkg/database"
	"github.com/fkuebler/paymirror/internal/pkg/env"
	"github.com/fkuebler/paymirror/internal/pkg/router"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook receiver and admin browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := NewApplication()
		return app.Listen(fmt.Sprintf("%s:%s",
			env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	syncer := sync.NewSyncer(
		database.GetDB(),
		stripeapi.NewClient(env.GetEnv("STRIPE_SECRET_KEY", "")),
		newLogger(),
	)
	repos := repository.NewFactory(database.GetDB()).GetRepositories()

	// ROUTER
	router.InstallRouter(app, repos, syncer)

	return app
}
