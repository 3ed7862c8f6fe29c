package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/clock"
	"github.com/FabLrc/GithubCICDChecker/internal/config"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/engine"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
	"github.com/FabLrc/GithubCICDChecker/internal/github"
	"github.com/FabLrc/GithubCICDChecker/internal/scoring"
	"github.com/FabLrc/GithubCICDChecker/internal/signal"
)

// maxScanBodyBytes bounds the POST /api/v1/scan request body.
const maxScanBodyBytes = 1 << 20

// AddServeCommand adds the serve command to the root command.
func AddServeCommand(root *cobra.Command) {
	root.AddCommand(newServeCmd())
}

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose l'analyse via une API HTTP",
		Long: `Démarre un serveur HTTP exposant l'analyse en JSON :

  POST /api/v1/scan    lance une analyse ({"repository": "owner/repo"})
  GET  /api/v1/checks  liste le catalogue de checks
  GET  /live           sonde de vivacité
  GET  /ready          sonde de disponibilité

Le serveur s'arrête proprement sur SIGINT/SIGTERM en laissant les requêtes
en cours se terminer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, listenAddr)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "adresse d'écoute (prioritaire sur la configuration)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, listenOverride string) error {
	logger := GetLogger()
	cfg := loadConfig(ctx, cmd)

	addr := cfg.Server.ListenAddr
	if listenOverride != "" {
		addr = listenOverride
	}

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	server := NewServer(cfg, cat, logger)

	sig := signal.NewHandler(ctx)
	defer sig.Stop()

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	logger.Info().Str("addr", addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-sig.Context().Done():
	}

	logger.Info().Dur("timeout", constants.DefaultShutdownTimeout).Msg("shutting down, draining in-flight requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	return nil
}

// Server is the HTTP API. One instance serves all requests; every field is
// read-only after construction.
type Server struct {
	cfg            *config.Config
	catalog        *catalog.Catalog
	logger         zerolog.Logger
	clock          clock.Clock
	newSnapshotter func(cfg *config.Config, token string) (snapshotter, error)
	newReviewer    func(cfg *config.Config, cat *catalog.Catalog, token string) (reviewer, error)
}

// NewServer builds a Server backed by the real GitHub and AI clients.
func NewServer(cfg *config.Config, cat *catalog.Catalog, logger zerolog.Logger) *Server {
	deps := defaultScanDeps()
	return &Server{
		cfg:            cfg,
		catalog:        cat,
		logger:         logger,
		clock:          deps.clock,
		newSnapshotter: deps.newSnapshotter,
		newReviewer:    deps.newReviewer,
	}
}

// Router assembles the HTTP routes wrapped in request logging, compression
// and CORS middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/live", s.handleLive).Methods(http.MethodGet)
	r.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/scan", s.handleScan).Methods(http.MethodPost)
	api.HandleFunc("/checks", s.handleChecks).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = s.withRequestLog(handler)
	handler = handlers.CompressHandler(handler)

	origins := []string{"*"}
	if s.cfg.Server.OriginAllowed != "" {
		origins = []string{s.cfg.Server.OriginAllowed}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
}

// withRequestLog tags each request with an id, attaches a request-scoped
// logger to the context and logs the outcome with status and duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		logger := s.logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		w.Header().Set("X-Request-ID", requestID)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(logger.WithContext(r.Context())))

		logger.Info().
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// scanRequest is the body of POST /api/v1/scan.
type scanRequest struct {
	// Repository is the owner/repo identifier or GitHub URL. Required.
	Repository string `json:"repository"`

	// Token optionally overrides the configured GitHub token for this scan.
	Token string `json:"token,omitempty"`

	// AI requests the AI review on top of the report. Review failures
	// degrade to a report without review, never to an error response.
	AI bool `json:"ai,omitempty"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxScanBodyBytes)
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Corps de requête JSON invalide."})
		return
	}

	repo, err := github.ParseRepo(req.Repository)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	token := req.Token
	if token == "" {
		token = s.cfg.GitHub.Token()
	}

	sn, err := s.newSnapshotter(s.cfg, token)
	if err != nil {
		logger.Error().Err(err).Msg("building GitHub client failed")
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	snapCtx, cancel := context.WithTimeout(r.Context(), s.cfg.GitHub.Timeout)
	defer cancel()
	snap, err := sn.Snapshot(snapCtx, repo)
	if err != nil {
		logger.Warn().Err(err).Str("repo", repo.FullName()).Msg("snapshot assembly failed")
		status := http.StatusBadGateway
		if stderrors.Is(err, errors.ErrRepoAccess) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}

	results, err := engine.NewRunner(s.catalog).Run(r.Context(), snap)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	report := scoring.Aggregate(repo, results, s.catalog, s.clock.Now())

	if req.AI {
		aiToken := req.Token
		if aiToken == "" {
			aiToken = s.cfg.AI.Token()
		}
		review, reviewErr := s.review(r.Context(), aiToken, report, snap)
		if reviewErr != nil {
			logger.Debug().Err(reviewErr).Msg("AI review unavailable")
		} else {
			report.Review = review
		}
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) review(ctx context.Context, token string, report *domain.ScoreReport, snap *domain.RepositorySnapshot) (*domain.Review, error) {
	rev, err := s.newReviewer(s.cfg, s.catalog, token)
	if err != nil {
		return nil, err
	}
	return rev.Review(ctx, report, firstWorkflowYAML(snap))
}

func (s *Server) handleChecks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Definitions())
}

func (s *Server) handleLive(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "checks": s.catalog.Len()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response failed")
	}
}

// writeError emits the JSON error document, reusing the user-facing French
// messages and suggested actions of the CLI.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	doc := map[string]string{"error": errors.UserMessage(err)}
	if action := errors.Actionable(err); action != "" {
		doc["action"] = action
	}
	s.writeJSON(w, status, doc)
}
