package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"eduhub/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests need a running Postgres and are opt-in via EDUHUB_PG_INTEGRATION=1.
// They create an ephemeral database, run the embedded SQL migrations against
// it, exercise rollback, and drop the database afterwards.

type pgEnv struct {
	host string
	port string
	user string
	pass string
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func readPGEnv() pgEnv {
	return pgEnv{
		host: getEnvOrDefault("DB_HOST", "localhost"),
		port: getEnvOrDefault("DB_PORT", "5432"),
		user: getEnvOrDefault("DB_USER", "eduhub_user"),
		pass: getEnvOrDefault("DB_PASSWORD", "eduhub_password"),
	}
}

func maintenanceDSN(cfg pgEnv, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.user, cfg.pass, cfg.host, cfg.port, dbName)
}

func createEphemeralDB(t *testing.T) (pgEnv, string) {
	t.Helper()
	cfg := readPGEnv()
	dbName := fmt.Sprintf("eduhub_mig_%d", time.Now().UnixNano())

	sqlDB, err := sql.Open("pgx", maintenanceDSN(cfg, "postgres"))
	if err != nil {
		t.Fatalf("open maintenance db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := sqlDB.ExecContext(context.Background(), `CREATE DATABASE `+dbName); err != nil {
		t.Fatalf("create ephemeral db: %v", err)
	}

	t.Cleanup(func() {
		_, _ = sqlDB.ExecContext(context.Background(), `SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1`, dbName)
		_, _ = sqlDB.ExecContext(context.Background(), `DROP DATABASE IF EXISTS `+dbName)
	})

	return cfg, dbName
}

func openEphemeralGorm(t *testing.T, cfg pgEnv, dbName string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open(maintenanceDSN(cfg, dbName)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open ephemeral gorm db: %v", err)
	}
	return db
}

func TestMigrationsAgainstPostgres(t *testing.T) {
	if os.Getenv("EDUHUB_PG_INTEGRATION") == "" {
		t.Skip("set EDUHUB_PG_INTEGRATION=1 to run Postgres migration tests")
	}

	cfg, dbName := createEphemeralDB(t)
	db := openEphemeralGorm(t, cfg, dbName)
	ctx := context.Background()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	// The migrated schema must accept the domain models.
	inquiry := models.Inquiry{
		AcademyName: "Seoul Coding Academy",
		FullName:    "Kim Minji",
		Email:       "minji@seoulcoding.kr",
		Phone:       "010-1234-5678",
		Status:      models.InquiryStatusPending,
	}
	if err := db.Create(&inquiry).Error; err != nil {
		t.Fatalf("insert into migrated schema: %v", err)
	}

	// Re-running is a no-op.
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("re-run migrations: %v", err)
	}

	store := NewMigrationStore(db)
	applied, err := store.GetAppliedMigrations(ctx)
	if err != nil {
		t.Fatalf("read applied migrations: %v", err)
	}
	if len(applied) != len(GetMigrations()) {
		t.Fatalf("expected %d applied migrations, got %d", len(GetMigrations()), len(applied))
	}
}

func TestMigrationRollbackAgainstPostgres(t *testing.T) {
	if os.Getenv("EDUHUB_PG_INTEGRATION") == "" {
		t.Skip("set EDUHUB_PG_INTEGRATION=1 to run Postgres migration tests")
	}

	cfg, dbName := createEphemeralDB(t)
	db := openEphemeralGorm(t, cfg, dbName)
	ctx := context.Background()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := RollbackMigration(ctx, db, 1); err != nil {
		t.Fatalf("rollback migration 1: %v", err)
	}

	if db.Migrator().HasTable("inquiries") {
		t.Error("inquiries table still exists after rollback")
	}

	store := NewMigrationStore(db)
	applied, err := store.GetAppliedMigrations(ctx)
	if err != nil {
		t.Fatalf("read applied migrations: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("expected no applied migrations after rollback, got %v", applied)
	}
}
