// Package main provides admin management utilities for EduHub.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"eduhub/internal/config"
	"eduhub/internal/database"
	"eduhub/internal/models"

	"gorm.io/gorm"
)

// AdminSetup provides a utility to manage platform roles from the command line
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go promote <user_id>        - Promote user to admin")
		fmt.Println("  go run ./cmd/admin/main.go demote <user_id>         - Demote user to regular user")
		fmt.Println("  go run ./cmd/admin/main.go set-role <user_id> <role> - Set an explicit role (admin|manager|user)")
		fmt.Println("  go run ./cmd/admin/main.go list-admins              - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go promote <user_id>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.PlatformRoleAdmin)

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go demote <user_id>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.PlatformRoleUser)

	case "set-role":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run ./cmd/admin/main.go set-role <user_id> <role>")
			os.Exit(1)
		}
		role := os.Args[3]
		if !models.ValidPlatformRole(role) {
			fmt.Printf("Unknown role: %s (expected admin, manager, or user)\n", role)
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.PlatformRole(role))

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setRole(db *gorm.DB, userID string, role models.PlatformRole) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with ID %s not found\n", userID)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.Role == role {
		fmt.Printf("User %s (ID: %d) already has role %s\n", user.FullName, user.ID, role)
		return
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("Set role of %s (ID: %d) to %s\n", user.FullName, user.ID, role)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("role = ?", models.PlatformRoleAdmin).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found in the system")
		return
	}

	fmt.Printf("Found %d admin(s):\n", len(admins))
	for _, admin := range admins {
		fmt.Printf("  - %s <%s> (ID: %d)\n", admin.FullName, admin.Email, admin.ID)
	}
}
