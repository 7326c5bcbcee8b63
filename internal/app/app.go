package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/anthurium-ai/txn-classify/internal/classify"
	"github.com/anthurium-ai/txn-classify/internal/logger"
	"github.com/anthurium-ai/txn-classify/internal/metrics"
	"github.com/anthurium-ai/txn-classify/internal/predict"
	"github.com/anthurium-ai/txn-classify/internal/store"
)

type App struct {
	Engine    *classify.Engine
	Store     *store.Store
	Predictor *predict.Bayes
	Met       *metrics.Collector
	Log       zerolog.Logger
}

type Config struct {
	Addr string
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(a.requestLog)

	r.Post("/classify", a.handleClassify)
	r.Post("/classify/csv", a.handleClassifyCSV)
	r.Post("/merchants", a.handleAddMerchant)
	r.Get("/healthz", a.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requestLog tags each request with an id and logs it on completion.
func (a *App) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		log := a.Log.With().Str("request_id", id).Logger()
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), log)))
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func Run(ctx context.Context, a *App, cfg Config) error {
	a.Met.Register(prometheus.DefaultRegisterer)
	srv := &http.Server{Addr: cfg.Addr, Handler: a.Router()}

	go func() {
		<-ctx.Done()
		cctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(cctx)
	}()

	a.Log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
