// Command main runs the database seeder for EduHub.
package main

import (
	"flag"
	"log"

	"eduhub/internal/config"
	"eduhub/internal/database"
	"eduhub/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numInquiries := flag.Int("inquiries", 200, "Number of backlog inquiries to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext placeholder passwords (dev only)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d inquiries, clean=%v dry-run=%v\n",
		*numUsers, *numInquiries, *shouldClean, *dryRun)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		NumInquiries: *numInquiries,
		ShouldClean:  *shouldClean,
		DryRun:       *dryRun,
		SkipBcrypt:   *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All demo users have the password: password123")
}
