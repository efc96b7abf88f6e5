package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/campuswell/mindline/internal/api"
	"github.com/campuswell/mindline/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func NewStore(db *sql.DB) (api.Store, error) {
	return NewSQLiteStore(db)
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeJSON(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeStringSlice(ns sql.NullString) []string {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		log.Printf("sqlite store: decode string slice: %v", err)
		return []string{}
	}
	return out
}

func decodeEmotions(ns sql.NullString) models.Emotions {
	var out models.Emotions
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		log.Printf("sqlite store: decode emotions: %v", err)
	}
	return out
}

func (s *SQLiteStore) AddUser(u *models.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, pass_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PassHash, u.Role, u.CreatedAt.UTC(),
	)
	return err
}

func (s *SQLiteStore) FindUserByEmail(email string) (*models.User, error) {
	row := s.db.QueryRow(
		`SELECT id, email, pass_hash, role, created_at FROM users WHERE email = ?`, email,
	)
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PassHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *SQLiteStore) AddAssessment(userID string, a *models.AssessmentResult) error {
	if a == nil {
		return errors.New("nil assessment")
	}
	emotions, err := encodeJSON(a.Emotions)
	if err != nil {
		return err
	}
	factors, err := encodeJSON(a.RiskFactors)
	if err != nil {
		return err
	}
	tags, err := encodeJSON(a.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO assessments (id, user_id, text, sentiment, emotions, risk_level, risk_factors, tags, confidence, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, userID, a.Text, a.Sentiment, emotions, string(a.RiskLevel), factors, tags, a.Confidence, a.Timestamp.UTC(),
	)
	return err
}

func (s *SQLiteStore) ListAssessmentsByUser(userID string) ([]*models.AssessmentResult, error) {
	rows, err := s.db.Query(
		`SELECT id, text, sentiment, emotions, risk_level, risk_factors, tags, confidence, submitted_at
		 FROM assessments WHERE user_id = ? ORDER BY submitted_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*models.AssessmentResult{}
	for rows.Next() {
		a, _, err := scanAssessment(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListAssessmentRecords() ([]*api.AssessmentRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, text, sentiment, emotions, risk_level, risk_factors, tags, confidence, submitted_at
		 FROM assessments ORDER BY submitted_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*api.AssessmentRecord{}
	for rows.Next() {
		a, uid, err := scanAssessment(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, &api.AssessmentRecord{UserID: uid, Result: a})
	}
	return out, rows.Err()
}

func scanAssessment(rows *sql.Rows, withUser bool) (*models.AssessmentResult, string, error) {
	a := &models.AssessmentResult{}
	var (
		userID                  string
		emotions, factors, tags sql.NullString
		level                   string
		submittedAt             time.Time
	)
	var err error
	if withUser {
		err = rows.Scan(&a.ID, &userID, &a.Text, &a.Sentiment, &emotions, &level, &factors, &tags, &a.Confidence, &submittedAt)
	} else {
		err = rows.Scan(&a.ID, &a.Text, &a.Sentiment, &emotions, &level, &factors, &tags, &a.Confidence, &submittedAt)
	}
	if err != nil {
		return nil, "", err
	}
	a.Emotions = decodeEmotions(emotions)
	a.RiskLevel = models.RiskLevel(level)
	a.RiskFactors = decodeStringSlice(factors)
	a.Tags = decodeStringSlice(tags)
	a.Timestamp = submittedAt
	return a, userID, nil
}

func (s *SQLiteStore) AddReferral(r *models.Referral) error {
	if r == nil {
		return errors.New("nil referral")
	}
	_, err := s.db.Exec(
		`INSERT INTO referrals (id, name, type, contact, description, category) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Type, toNullString(r.Contact), toNullString(r.Description), r.Category,
	)
	return err
}

func (s *SQLiteStore) ListReferralsByCategory(category string) ([]*models.Referral, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, contact, description, category FROM referrals WHERE category = ? ORDER BY name`, category,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*models.Referral{}
	for rows.Next() {
		r := &models.Referral{}
		var contact, description sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &contact, &description, &r.Category); err != nil {
			return nil, err
		}
		r.Contact = contact.String
		r.Description = description.String
		out = append(out, r)
	}
	return out, rows.Err()
}

var _ api.Store = (*SQLiteStore)(nil)
