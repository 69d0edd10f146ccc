package main

import (
	"log"

	"notevault-be/internal/config"
	"notevault-be/internal/model"
	"notevault-be/pkg/database"
)

func main() {
	cfg := config.Load()

	if !cfg.RemoteConfigured() {
		log.Fatal("Remote backend is not configured; nothing to migrate (local store needs no schema)")
	}

	dsn, err := database.BuildDSN(cfg.Remote.URL, cfg.Remote.AccessKey)
	if err != nil {
		log.Fatalf("Invalid remote backend configuration: %v", err)
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Note{},
		&model.NoteCategory{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migrations completed")
}
