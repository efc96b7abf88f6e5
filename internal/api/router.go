package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campuswell/mindline/internal/analysis"
	"github.com/campuswell/mindline/internal/middleware"
	"github.com/campuswell/mindline/internal/models"
	"github.com/campuswell/mindline/internal/services"
)

type Router struct {
	store       Store
	auth        *services.AuthService
	assessments *services.AssessmentService
	analytics   *services.AnalyticsService
	referrals   *services.ReferralService
}

// NewRouter wires the service layer over the given store. analyzer and
// delegate may be nil; the assessment service falls back to a default
// local pipeline and skips delegation respectively.
func NewRouter(store Store, analyzer *analysis.Analyzer, delegate services.Delegate) *Router {
	return &Router{
		store:       store,
		auth:        services.NewAuthService(newAuthStoreAdapter(store), middleware.SignToken),
		assessments: services.NewAssessmentService(newAssessmentStoreAdapter(store), analyzer, delegate),
		analytics:   services.NewAnalyticsService(newAnalyticsStoreAdapter(store)),
		referrals:   services.NewReferralService(newReferralStoreAdapter(store)),
	}
}

// Auth exposes the auth service for startup seeding.
func (rt *Router) Auth() *services.AuthService { return rt.auth }

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", rt.handleRegister)    // POST
	mux.HandleFunc("/api/auth/login", rt.handleLogin)          // POST
	mux.HandleFunc("/api/assessments", rt.handleAssessments)   // POST submit, GET history
	mux.HandleFunc("/api/referrals", rt.handleReferrals)       // GET ?risk=
	mux.HandleFunc("/api/admin/analytics", rt.handleAnalytics) // GET, admin
	mux.HandleFunc("/api/export", rt.handleExport)             // GET, admin
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// POST /api/auth/register
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Register(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: res.Token, UserID: res.UserID, Role: res.Role})
}

// POST /api/auth/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, UserID: res.UserID, Role: res.Role})
}

// POST /api/assessments: submit one check-in
// GET  /api/assessments: own history, most recent first
func (rt *Router) handleAssessments(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserIDFromContext(r.Context())
	if uid == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	switch r.Method {
	case http.MethodPost:
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := rt.assessments.Submit(r.Context(), uid, req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	case http.MethodGet:
		list, err := rt.assessments.History(uid)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"assessments": list, "count": len(list)})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/referrals?risk=low|moderate|high
func (rt *Router) handleReferrals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if middleware.UserIDFromContext(r.Context()) == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	risk := r.URL.Query().Get("risk")
	if risk == "" {
		risk = string(models.RiskLow)
	}
	list, err := rt.referrals.ForRiskLevel(models.RiskLevel(risk))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"risk": risk, "referrals": list})
}

// GET /api/admin/analytics
func (rt *Router) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}
	sum, err := rt.analytics.Summary()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// GET /api/export: CSV of all assessments
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}
	records, err := rt.store.ListAssessmentRecords()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rows := make([]services.AssessmentRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, services.AssessmentRow{
			ID:          rec.Result.ID,
			UserID:      rec.UserID,
			RiskLevel:   rec.Result.RiskLevel,
			Sentiment:   rec.Result.Sentiment,
			Confidence:  rec.Result.Confidence,
			RiskFactors: rec.Result.RiskFactors,
			Tags:        rec.Result.Tags,
			SubmittedAt: rec.Result.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	b, err := services.ExportAssessmentsCSV(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=assessments.csv")
	_, _ = w.Write(b)
}

func (rt *Router) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if middleware.UserIDFromContext(r.Context()) == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return false
	}
	if middleware.RoleFromContext(r.Context()) != models.RoleAdmin {
		http.Error(w, "admin only", http.StatusForbidden)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		http.Error(w, se.Message, statusFor(se.Code))
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	case services.ErrorBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
