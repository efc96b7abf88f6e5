package models

import "time"

// RiskLevel is the coarse classification attached to every assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Valid reports whether l is one of the three defined levels.
func (l RiskLevel) Valid() bool {
	return l == RiskLow || l == RiskModerate || l == RiskHigh
}

// Emotions is the fixed five-emotion intensity vector. Values are
// independent intensities in [0,1]; they are not a distribution.
type Emotions struct {
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
	Anger   float64 `json:"anger"`
	Fear    float64 `json:"fear"`
	Anxiety float64 `json:"anxiety"`
}

// AssessmentResult is the immutable outcome of analyzing one check-in.
// Field names follow the delegation wire contract, so a locally computed
// result and a remotely delegated one are indistinguishable in shape.
type AssessmentResult struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Sentiment   float64   `json:"sentiment"`
	Emotions    Emotions  `json:"emotions"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	RiskFactors []string  `json:"riskFactors"`
	Tags        []string  `json:"tags"`
	Confidence  float64   `json:"confidence"`
	Timestamp   time.Time `json:"timestamp"`
}

// User is an authenticated account. Role is "student" or "admin".
type User struct {
	ID        string
	Email     string
	PassHash  []byte
	Role      string
	CreatedAt time.Time
}

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Referral is a support service suggested for a given risk level.
type Referral struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
