package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/campuswell/mindline/internal/models"
)

// HTTPClient abstracts the outbound client so delegation can be tested
// without a network.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DelegationReason classifies why a delegation attempt failed. The
// caller decides to fall back explicitly; nothing is swallowed.
type DelegationReason string

const (
	DelegationNetwork DelegationReason = "network"
	DelegationStatus  DelegationReason = "status"
	DelegationSchema  DelegationReason = "schema"
)

// DelegationError is the typed failure of a remote scoring attempt.
type DelegationError struct {
	Reason DelegationReason
	Err    error
}

func (e *DelegationError) Error() string {
	return fmt.Sprintf("remote scoring failed (%s): %v", e.Reason, e.Err)
}

func (e *DelegationError) Unwrap() error { return e.Err }

const defaultDelegationTimeout = 10 * time.Second

// RemoteScorer forwards raw text to an external scoring service and
// validates the structured response. Any deviation from the wire
// contract is a typed failure, never a partial result.
type RemoteScorer struct {
	endpoint string
	token    string
	client   HTTPClient
	timeout  time.Duration
}

func NewRemoteScorer(endpoint, token string, client HTTPClient) *RemoteScorer {
	if client == nil {
		client = &http.Client{Timeout: defaultDelegationTimeout}
	}
	return &RemoteScorer{
		endpoint: endpoint,
		token:    token,
		client:   client,
		timeout:  defaultDelegationTimeout,
	}
}

// remotePayload decodes with pointers so a missing field is
// distinguishable from a zero value; every contract field must be
// present.
type remotePayload struct {
	ID          string           `json:"id"`
	Sentiment   *float64         `json:"sentiment"`
	Emotions    *models.Emotions `json:"emotions"`
	RiskLevel   *string          `json:"riskLevel"`
	RiskFactors *[]string        `json:"riskFactors"`
	Tags        *[]string        `json:"tags"`
	Confidence  *float64         `json:"confidence"`
	Timestamp   time.Time        `json:"timestamp"`
}

// Analyze POSTs {"text": ...} with a bearer token and returns the
// remote assessment, or a DelegationError. The wait is bounded by the
// configured timeout regardless of the caller's context.
func (r *RemoteScorer) Analyze(ctx context.Context, text string) (*models.AssessmentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, &DelegationError{Reason: DelegationSchema, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &DelegationError{Reason: DelegationNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &DelegationError{Reason: DelegationNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DelegationError{Reason: DelegationStatus, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload remotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &DelegationError{Reason: DelegationSchema, Err: err}
	}
	res, err := payload.toResult(text)
	if err != nil {
		return nil, &DelegationError{Reason: DelegationSchema, Err: err}
	}
	return res, nil
}

func (p *remotePayload) toResult(text string) (*models.AssessmentResult, error) {
	if p.Sentiment == nil || p.Emotions == nil || p.RiskLevel == nil ||
		p.RiskFactors == nil || p.Tags == nil || p.Confidence == nil {
		return nil, fmt.Errorf("missing contract fields")
	}
	level := models.RiskLevel(*p.RiskLevel)
	if !level.Valid() {
		return nil, fmt.Errorf("unknown risk level %q", *p.RiskLevel)
	}
	if *p.Sentiment < -1 || *p.Sentiment > 1 {
		return nil, fmt.Errorf("sentiment %f out of range", *p.Sentiment)
	}
	for name, v := range map[string]float64{
		"joy": p.Emotions.Joy, "sadness": p.Emotions.Sadness, "anger": p.Emotions.Anger,
		"fear": p.Emotions.Fear, "anxiety": p.Emotions.Anxiety, "confidence": *p.Confidence,
	} {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%s %f out of range", name, v)
		}
	}
	return &models.AssessmentResult{
		ID:          p.ID,
		Text:        text,
		Sentiment:   *p.Sentiment,
		Emotions:    *p.Emotions,
		RiskLevel:   level,
		RiskFactors: *p.RiskFactors,
		Tags:        *p.Tags,
		Confidence:  *p.Confidence,
		Timestamp:   p.Timestamp,
	}, nil
}
