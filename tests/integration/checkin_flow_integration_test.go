//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("MINDLINE_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

func TestCheckinJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	userEmail := fmt.Sprintf("integration_%d@example.com", time.Now().UnixNano())
	password := "Secret123!"

	var registerResp struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
	doPost(t, client, base+"/api/auth/register", "", map[string]string{
		"email":    userEmail,
		"password": password,
	}, &registerResp)
	if registerResp.Token == "" || registerResp.UserID == "" {
		t.Fatalf("unexpected register response: %+v", registerResp)
	}
	if registerResp.Role != "student" {
		t.Fatalf("register role = %q, want student", registerResp.Role)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	doPost(t, client, base+"/api/auth/login", "", map[string]string{
		"email":    userEmail,
		"password": password,
	}, &loginResp)
	token := loginResp.Token
	if token == "" {
		t.Fatalf("login did not return token")
	}

	var submitResp struct {
		ID        string  `json:"id"`
		RiskLevel string  `json:"riskLevel"`
		Sentiment float64 `json:"sentiment"`
	}
	doPost(t, client, base+"/api/assessments", token, map[string]string{
		"text": "i've been really worried about my exams and can't sleep at night",
	}, &submitResp)
	if submitResp.ID == "" || submitResp.RiskLevel == "" {
		t.Fatalf("unexpected assessment response: %+v", submitResp)
	}

	var histResp struct {
		Count       int `json:"count"`
		Assessments []struct {
			ID string `json:"id"`
		} `json:"assessments"`
	}
	doGet(t, client, base+"/api/assessments", token, &histResp)
	if histResp.Count < 1 || len(histResp.Assessments) < 1 {
		t.Fatalf("history missing submission: %+v", histResp)
	}
	if histResp.Assessments[0].ID != submitResp.ID {
		t.Fatalf("latest history entry %s, want %s", histResp.Assessments[0].ID, submitResp.ID)
	}

	var refResp struct {
		Referrals []struct {
			Name string `json:"name"`
		} `json:"referrals"`
	}
	doGet(t, client, base+"/api/referrals?risk="+submitResp.RiskLevel, token, &refResp)
	if len(refResp.Referrals) == 0 {
		t.Fatalf("no referrals for level %s", submitResp.RiskLevel)
	}
}

func doPost(t *testing.T, client *http.Client, url, token string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func doGet(t *testing.T, client *http.Client, url, token string, out any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
