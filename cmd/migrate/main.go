package main

import (
	"log"
	"os"

	"collabnotes-be/internal/model"
	"collabnotes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// Order matters: collaborator rows reference both users and notes.
	models := []interface{}{
		&model.User{},
		&model.Note{},
		&model.NoteCollaborator{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			color.Red("Error: AutoMigrate failed for %T: %v", m, err)
			os.Exit(1)
		}
		color.Green("Migrated %T", m)
	}

	color.Green("Migration complete.")
}
