package main

import (
	"log"
	"os"

	"forum/internal/app/post"
	"forum/internal/app/thread"
	"forum/internal/config"
	"forum/internal/db"
	"forum/internal/db/seeder"
	"forum/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	_ = utils.LoadEnv()

	app := &cli.App{
		Name:  "forumctl",
		Usage: "maintenance commands for the forum store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "path to the SQLite store file",
				EnvVars: []string{"DB_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create the threads and posts tables if they are absent",
				Action: func(c *cli.Context) error {
					return withStore(c, func(conn *gorm.DB, logger *zap.Logger) error {
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "create the welcome thread when the forum is empty",
				Action: func(c *cli.Context) error {
					return withStore(c, func(conn *gorm.DB, logger *zap.Logger) error {
						postRepo := post.NewRepository(conn)
						threads := thread.NewService(thread.NewRepository(conn), postRepo, nil, logger)
						return seeder.NewSeeder(threads, logger).Seed(c.Context)
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withStore opens the configured store, ensures the schema and runs fn.
func withStore(c *cli.Context, fn func(conn *gorm.DB, logger *zap.Logger) error) error {
	cfg := config.LoadConfig()
	if path := c.String("db"); path != "" {
		cfg.DBPath = path
	}

	logger, err := utils.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	conn, err := db.Connect(&cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	if err := db.Migrate(conn, logger); err != nil {
		return err
	}
	return fn(conn, logger)
}
