// Command seed prepares a development database: it guarantees the
// administrator account exists and optionally loads fixture or generated
// content.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	var (
		adminEmail    = flag.String("admin-email", "admin@inkwell.local", "email for the administrator account")
		adminName     = flag.String("admin-name", "Administrator", "display name for the administrator account")
		adminPassword = flag.String("admin-password", "", "password for the administrator account (required on first run)")
		fixtures      = flag.String("fixtures", "", "path to a YAML fixture file to load")
		generate      = flag.Int("generate", 0, "number of fake posts to generate")
	)
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *adminPassword == "" {
		log.Fatal("-admin-password is required")
	}
	admin, err := seed.EnsureAdmin(db, cfg.AdminUserID, *adminEmail, *adminName, *adminPassword)
	if err != nil {
		log.Fatalf("Failed to ensure administrator: %v", err)
	}
	log.Printf("Administrator ready: id=%d email=%s", admin.ID, admin.Email)

	if *fixtures != "" {
		if err := seed.LoadFixtures(db, *fixtures); err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		log.Printf("Fixtures loaded from %s", *fixtures)
	}

	if *generate > 0 {
		if err := seed.Generate(db, *generate); err != nil {
			log.Fatalf("Failed to generate content: %v", err)
		}
		log.Printf("Generated %d posts", *generate)
	}
}
