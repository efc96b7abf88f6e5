package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/campuswell/mindline/internal/models"
)

// AssessmentRow is one CSV line of the admin export. SubmittedAt is a
// preformatted timestamp string; list fields are pipe-joined so the row
// stays flat.
type AssessmentRow struct {
	ID          string
	UserID      string
	RiskLevel   models.RiskLevel
	Sentiment   float64
	Confidence  float64
	RiskFactors []string
	Tags        []string
	SubmittedAt string
}

// ExportAssessmentsCSV renders assessment rows into a CSV document.
func ExportAssessmentsCSV(rows []AssessmentRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{
		"assessment_id", "user_id", "risk_level", "sentiment", "confidence",
		"risk_factors", "tags", "submitted_at",
	})
	for _, r := range rows {
		rec := []string{
			r.ID,
			r.UserID,
			string(r.RiskLevel),
			strconv.FormatFloat(r.Sentiment, 'f', 4, 64),
			strconv.FormatFloat(r.Confidence, 'f', 4, 64),
			strings.Join(r.RiskFactors, " | "),
			strings.Join(r.Tags, " | "),
			r.SubmittedAt,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
