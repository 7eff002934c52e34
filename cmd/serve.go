package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadqual/internal/model"
	"github.com/sells-group/leadqual/internal/pipeline"
	"github.com/sells-group/leadqual/internal/scorer"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lead scoring HTTP server",
	Long: `Serves POST /score: accepts a CSV upload and returns the scored
leads as JSON. Scoring only; dedupe and prioritization stay in the run
command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := buildEngine(false)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: buildRouter(engine),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// buildRouter assembles the HTTP routes. CORS is wide open for now so the
// dashboard frontend can call from anywhere; tighten before production.
func buildRouter(engine *scorer.Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/score", handleScore(engine))

	return r
}

// handleScore parses an uploaded CSV and returns every lead scored, as a
// JSON array. Malformed CSV is a 400 with a descriptive message.
func handleScore(engine *scorer.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := uploadReader(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer body.Close()

		leads, err := pipeline.ParseLeadsCSV(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid or empty csv: "+eris.Cause(err).Error())
			return
		}

		scored := make([]model.ScoredLead, 0, len(leads))
		for _, lead := range leads {
			score, breakdown := engine.Score(req.Context(), lead, scorer.MXUnchecked)
			scored = append(scored, model.ScoredLead{
				Lead:      lead,
				Score:     score,
				Breakdown: breakdown,
			})
		}

		zap.L().Info("scored upload",
			zap.String("request_id", middleware.GetReqID(req.Context())),
			zap.Int("leads", len(scored)),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(scored)
	}
}

// uploadReader returns the CSV content of the request: the "file" part of a
// multipart upload when present, else the raw request body.
func uploadReader(req *http.Request) (io.ReadCloser, error) {
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		return req.Body, nil
	}
	f, _, err := req.FormFile("file")
	if err != nil {
		return nil, eris.New(`multipart upload requires a "file" field`)
	}
	return f, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
