package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/campuswell/mindline/internal/analysis"
	"github.com/campuswell/mindline/internal/api"
	"github.com/campuswell/mindline/internal/middleware"
	"github.com/campuswell/mindline/internal/services"
	"github.com/campuswell/mindline/internal/utils"
)

func main() {
	addr := utils.SafeEnv("MINDLINE_ADDR", ":8080")
	commit := os.Getenv("MINDLINE_COMMIT")
	buildTime := os.Getenv("MINDLINE_BUILD_TIME")

	store, err := openStore()
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		log.Fatalf("analyzer init: %v", err)
	}

	var delegate services.Delegate
	if endpoint := os.Getenv("MINDLINE_ML_URL"); endpoint != "" {
		delegate = services.NewRemoteScorer(endpoint, os.Getenv("MINDLINE_ML_TOKEN"), nil)
		log.Printf("remote scoring enabled via %s", endpoint)
	}

	router := api.NewRouter(store, analyzer, delegate)
	if err := seedAdmin(router.Auth()); err != nil {
		log.Fatalf("admin seed: %v", err)
	}

	mux := http.NewServeMux()
	router.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Mindline API",
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	handler := middleware.NoStore(middleware.SecureHeaders(middleware.CORS(middleware.LocaleMiddleware(middleware.WithAuth(mux)))))

	log.Printf("Mindline server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildAnalyzer assembles the local pipeline from the environment: an
// optional lexicon override and an optional blended variant.
func buildAnalyzer() (*analysis.Analyzer, error) {
	lex := analysis.Default()
	if path := os.Getenv("MINDLINE_LEXICON_PATH"); path != "" {
		loaded, err := analysis.Load(path)
		if err != nil {
			return nil, err
		}
		lex = loaded
		log.Printf("lexicon loaded from %s", path)
	}
	opts := []analysis.Option{}
	if os.Getenv("MINDLINE_ML_BLEND") == "1" {
		opts = append(opts,
			analysis.WithVariant(analysis.VariantBlended),
			analysis.WithToxicityScorer(analysis.NewLexicalToxicity()),
		)
	}
	return analysis.NewAnalyzer(lex, opts...), nil
}
