package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

type fakeHTTPClient struct {
	status  int
	body    string
	err     error
	lastReq *http.Request
}

func (c *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &http.Response{
		StatusCode: c.status,
		Body:       io.NopCloser(strings.NewReader(c.body)),
	}, nil
}

const validRemoteBody = `{
	"id": "r-1",
	"sentiment": -0.4,
	"emotions": {"joy": 0.1, "sadness": 0.6, "anger": 0.1, "fear": 0.3, "anxiety": 0.5},
	"riskLevel": "moderate",
	"riskFactors": ["signs of depression"],
	"tags": ["signs of depression", "anxiety symptoms"],
	"confidence": 0.92,
	"timestamp": "2026-08-29T10:00:00Z"
}`

func TestRemoteAnalyzeSuccess(t *testing.T) {
	client := &fakeHTTPClient{status: http.StatusOK, body: validRemoteBody}
	scorer := NewRemoteScorer("http://ml.internal/score", "tok-1", client)

	res, err := scorer.Analyze(context.Background(), "feeling down lately")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.ID != "r-1" || res.RiskLevel != "moderate" || res.Confidence != 0.92 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Text != "feeling down lately" {
		t.Fatalf("text not echoed into result: %q", res.Text)
	}
	if got := client.lastReq.Header.Get("Authorization"); got != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", got)
	}
	if got := client.lastReq.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestRemoteAnalyzeNetworkError(t *testing.T) {
	client := &fakeHTTPClient{err: errors.New("connection refused")}
	scorer := NewRemoteScorer("http://ml.internal/score", "", client)

	_, err := scorer.Analyze(context.Background(), "text")
	var derr *DelegationError
	if !errors.As(err, &derr) || derr.Reason != DelegationNetwork {
		t.Fatalf("want network DelegationError, got %v", err)
	}
}

func TestRemoteAnalyzeBadStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		client := &fakeHTTPClient{status: status, body: `{}`}
		scorer := NewRemoteScorer("http://ml.internal/score", "", client)
		_, err := scorer.Analyze(context.Background(), "text")
		var derr *DelegationError
		if !errors.As(err, &derr) || derr.Reason != DelegationStatus {
			t.Fatalf("status %d: want status DelegationError, got %v", status, err)
		}
	}
}

func TestRemoteAnalyzeSchemaFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing sentiment", `{"emotions":{},"riskLevel":"low","riskFactors":[],"tags":[],"confidence":0.5}`},
		{"missing confidence", `{"sentiment":0,"emotions":{},"riskLevel":"low","riskFactors":[],"tags":[]}`},
		{"unknown risk level", strings.Replace(validRemoteBody, `"moderate"`, `"extreme"`, 1)},
		{"sentiment out of range", strings.Replace(validRemoteBody, `-0.4`, `-1.4`, 1)},
		{"emotion out of range", strings.Replace(validRemoteBody, `"sadness": 0.6`, `"sadness": 1.6`, 1)},
	}
	for _, tc := range cases {
		client := &fakeHTTPClient{status: http.StatusOK, body: tc.body}
		scorer := NewRemoteScorer("http://ml.internal/score", "", client)
		_, err := scorer.Analyze(context.Background(), "text")
		var derr *DelegationError
		if !errors.As(err, &derr) || derr.Reason != DelegationSchema {
			t.Fatalf("%s: want schema DelegationError, got %v", tc.name, err)
		}
	}
}

func TestDelegationErrorMessage(t *testing.T) {
	err := &DelegationError{Reason: DelegationStatus, Err: fmt.Errorf("status 503")}
	if !strings.Contains(err.Error(), "status") || !strings.Contains(err.Error(), "503") {
		t.Fatalf("unhelpful error message: %q", err.Error())
	}
	if errors.Unwrap(err) == nil {
		t.Fatalf("expected wrapped cause")
	}
}
