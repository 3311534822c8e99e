package serverapp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/config"
	"github.com/JohanGylseth/Sami-2/internal/engine"
	"github.com/JohanGylseth/Sami-2/internal/httpmw"
	"github.com/JohanGylseth/Sami-2/internal/progress"
	"github.com/JohanGylseth/Sami-2/internal/shop"
)

// Options configures the service handler.
type Options struct {
	Config *config.Config
	// DataDir is the save-data directory (file backend) or the parent of
	// the save database (sqlite backend).
	DataDir string
	// Backend selects snapshot storage: "file" (default), "sqlite", or
	// "memory".
	Backend string
	Logger  *log.Logger
}

// NewHandler wires the progression engine into an http.Handler. The
// returned cleanup closes the storage backend.
func NewHandler(opts Options) (http.Handler, func() error, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	store, cleanup, err := openStore(opts)
	if err != nil {
		return nil, nil, err
	}

	manager := progress.NewManager(store, opts.Logger)
	trackerFor := func(r *http.Request) *progress.Tracker {
		return manager.ForProfile(r.Header.Get("X-Profile-ID"))
	}
	balance := config.FromEnv(opts.Config.Balance)

	mux := http.NewServeMux()
	rr := &RouteRegistry{}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"service": "samiquest",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	progressHandler := progress.NewHandler()
	progressHandler.SetTrackerResolver(trackerFor)
	progressHandler.SetUnlockedFunc(func(s progress.Snapshot) []catalog.ChallengeID {
		return engine.UnlockedChallenges(s)
	})
	handle(mux, rr, "GET /api/progress/state", "Save state for the active profile", "", progressHandler.State)
	handle(mux, rr, "POST /api/progress/reset", "Reset the active profile to a fresh save", "", progressHandler.Reset)

	engineHandler := engine.NewHandler(balance)
	engineHandler.SetTrackerResolver(trackerFor)
	handle(mux, rr, "GET /api/challenges", "Map state: unlock and completion per challenge", "", engineHandler.Challenges)
	handle(mux, rr, "POST /api/challenges/complete", "Record a finished mini-game and grant its rewards", `{"challengeId":"languagePuzzle"}`, engineHandler.Complete)
	handle(mux, rr, "POST /api/choices", "Record a moral-choice answer", `{"scenarioId":"choice1","choiceText":"..."}`, engineHandler.Choice)
	handle(mux, rr, "POST /api/final-mission/complete", "Complete the final mission once all artifacts are owned", "", engineHandler.FinalMission)

	shopHandler := shop.NewHandler()
	shopHandler.SetTrackerResolver(trackerFor)
	handle(mux, rr, "GET /api/village/shop", "Shop catalog with ownership and affordability", "", shopHandler.State)
	handle(mux, rr, "POST /api/village/purchase", "Buy a village item", `{"itemId":"goahti"}`, shopHandler.Purchase)

	catalogHandler := catalog.NewHandler()
	handle(mux, rr, "GET /api/catalog/vocabulary", "Language-puzzle word list", "", catalogHandler.Vocabulary)
	handle(mux, rr, "GET /api/catalog/history", "Timeline events in order", "", catalogHandler.History)
	handle(mux, rr, "GET /api/catalog/scenarios", "Moral-choice scenario definitions", "", catalogHandler.Scenarios)
	handle(mux, rr, "GET /api/catalog/village-items", "Village shop catalog", "", catalogHandler.Items)

	registerAdminUI(mux, rr)

	h := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	)
	return h, cleanup, nil
}

func openStore(opts Options) (progress.Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", "file":
		fs, err := progress.NewFileStore(filepath.Join(opts.DataDir, "saves"))
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return fs, noop, nil
	case "sqlite":
		if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		ss, err := progress.OpenSQLiteStore(filepath.Join(opts.DataDir, "saves.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return ss, ss.Close, nil
	case "memory":
		return progress.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
