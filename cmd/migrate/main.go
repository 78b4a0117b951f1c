package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-planner/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-planner/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [up|down|status]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("database.connect.failed", zap.Error(err))
	}
	defer database.CloseDB(db)

	switch command {
	case "up", "down":
		direction := migrate.Up
		if command == "down" {
			direction = migrate.Down
		}
		n, err := database.Migrate(db, direction)
		if err != nil {
			logger.Fatal("database.migrate.failed", zap.String("direction", command), zap.Error(err))
		}
		logger.Info("database.migrated", zap.String("direction", command), zap.Int("applied", n))

	case "status":
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("database.handle.failed", zap.Error(err))
		}
		records, err := migrate.GetMigrationRecords(sqlDB, "postgres")
		if err != nil {
			logger.Fatal("database.status.failed", zap.Error(err))
		}
		applied := make(map[string]string, len(records))
		for _, r := range records {
			applied[r.Id] = r.AppliedAt.Format("2006-01-02 15:04:05")
		}

		all, err := database.MigrationSource().FindMigrations()
		if err != nil {
			logger.Fatal("database.status.failed", zap.Error(err))
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MIGRATION\tAPPLIED")
		for _, m := range all {
			at, ok := applied[m.Id]
			if !ok {
				at = "no"
			}
			fmt.Fprintf(w, "%s\t%s\n", m.Id, at)
		}
		w.Flush()

	default:
		flag.Usage()
		os.Exit(2)
	}
}
