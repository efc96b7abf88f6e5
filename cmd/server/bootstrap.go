package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campuswell/mindline/internal/api"
	dbstore "github.com/campuswell/mindline/internal/db"
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

// openStore returns the sqlite-backed store when MINDLINE_SQLITE_PATH is
// set, otherwise the in-memory store. First run against a fresh sqlite
// file gets migrations plus a default referral directory.
func openStore() (api.Store, error) {
	sqlitePath := os.Getenv("MINDLINE_SQLITE_PATH")
	if sqlitePath == "" {
		log.Printf("MINDLINE_SQLITE_PATH not set, using in-memory store")
		return seedReferrals(api.NewMemoryStore())
	}

	firstRun := false
	if _, err := os.Stat(sqlitePath); os.IsNotExist(err) {
		firstRun = true
		if err := os.MkdirAll(filepath.Dir(sqlitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", filepath.ToSlash(sqlitePath))
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := dbstore.RunMigrations(conn, os.Getenv("MINDLINE_MIGRATIONS_DIR")); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store, err := dbstore.NewStore(conn)
	if err != nil {
		return nil, fmt.Errorf("init sqlite store: %w", err)
	}
	if firstRun {
		log.Printf("first run, seeding referral directory into %s", sqlitePath)
		return seedReferrals(store)
	}
	return store, nil
}

// seedReferrals installs the default campus referral directory so the
// referral endpoint has per-level entries before an admin curates them.
func seedReferrals(store api.Store) (api.Store, error) {
	defaults := []*models.Referral{
		{ID: "ref-counseling", Name: "University Counseling and Mental Health Centre", Type: "urgent_care", Contact: "+250 788 123 456", Description: "Immediate professional mental health support", Category: string(models.RiskHigh)},
		{ID: "ref-student-counseling", Name: "Student Counseling Services", Type: "counseling", Contact: "+250 788 654 321", Description: "Professional counseling and support", Category: string(models.RiskModerate)},
		{ID: "ref-peer-support", Name: "Peer Support Network", Type: "peer_support", Contact: "peersupport@campus.ac.rw", Description: "Trained student listeners", Category: string(models.RiskModerate)},
		{ID: "ref-self-care", Name: "Self-Care Resources", Type: "self_help", Contact: "Available online", Description: "Wellness tips and stress management", Category: string(models.RiskLow)},
	}
	for _, r := range defaults {
		if err := store.AddReferral(r); err != nil {
			return nil, fmt.Errorf("seed referral %s: %w", r.ID, err)
		}
	}
	return store, nil
}

// seedAdmin creates the configured admin account if it does not exist.
func seedAdmin(auth *services.AuthService) error {
	email := os.Getenv("MINDLINE_ADMIN_EMAIL")
	password := os.Getenv("MINDLINE_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	_, err := auth.RegisterWithRole(email, password, models.RoleAdmin)
	if err != nil {
		if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorConflict {
			return nil
		}
		return err
	}
	log.Printf("admin account seeded for %s", email)
	return nil
}
