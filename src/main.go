package main

import (
	"context"
	"net/http"

	"kitawise-server/src/api"
	"kitawise-server/src/config"
	"kitawise-server/src/db"
	"kitawise-server/src/logging"
	"kitawise-server/src/records"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	var store db.Store
	switch cfg.Store {
	case config.StoreMemory:
		logging.Logger.Warn("Using in-memory store; records will not survive a restart")
		store = db.NewMemoryStore()
	default:
		if cfg.DatabaseURL == "" {
			logging.Logger.Fatal("DATABASE_URL is required")
		}
		pg, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Logger.Fatalf("DB connection failed: %v", err)
		}
		store = pg
	}

	cached, err := db.NewCachedStore(store)
	if err != nil {
		logging.Logger.Fatalf("Cache init failed: %v", err)
	}
	defer cached.Close()

	router := api.NewRouter(api.Deps{
		Projects:       records.NewProjectService(cached),
		Expenses:       records.NewExpenseService(cached),
		Goals:          records.NewGoalService(cached),
		Users:          records.NewUserService(cached),
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	logging.Logger.Infof("Kitawise API listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logging.Logger.Fatal(err)
	}
}
