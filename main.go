package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Velofit/internal/auth"
	"Velofit/internal/calc/fit"
	"Velofit/internal/calc/premium/autodesign"
	"Velofit/internal/calc/premium/batch"
	"Velofit/internal/calc/premium/importer"
	"Velofit/internal/calc/premium/recommend"
	"Velofit/internal/calc/report"
	"Velofit/internal/config"
	"Velofit/internal/logger"
	"Velofit/internal/repo"
	"Velofit/internal/rider"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, store *repo.PostgresRepository, cfg *config.Config, log *zap.Logger) {
	authEnv := &auth.Authenv{
		JWTkey: []byte(cfg.Auth.TokenKey),
		Repo:   store,
		Logger: log.Named("auth"),
		Secure: cfg.Server.TLSEnabled(),
	}
	riderH := &rider.Handler{Riders: store, Fits: store, Logger: log.Named("rider")}
	fitH := &fit.Handler{Logger: log.Named("fit")}
	reportH := &report.Handler{Logger: log.Named("report")}
	batchH := &batch.Handler{Logger: log.Named("batch")}
	importH := &importer.Handler{Logger: log.Named("import")}
	recommendH := &recommend.Handler{}
	autoH := &autodesign.Handler{}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.Auth.RatePerSec), cfg.Auth.Burst)

	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/fit/calc", fitH.Calc).Methods("POST")
	api.HandleFunc("/fit/quick", fitH.Quick).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/rider", riderH.GetRider).Methods("GET")
	secureApi.HandleFunc("/rider", riderH.PutRider).Methods("PUT")
	secureApi.HandleFunc("/fit", riderH.CreateFit).Methods("POST")
	secureApi.HandleFunc("/fits", riderH.ListFits).Methods("GET")
	secureApi.HandleFunc("/fits/{id}", riderH.GetFit).Methods("GET")

	secureApi.HandleFunc("/fit/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/fit/batch", batchH.Fit).Methods("POST")
	secureApi.HandleFunc("/fit/import", importH.Fit).Methods("POST")
	secureApi.HandleFunc("/fit/stem", recommendH.Stem).Methods("POST")
	secureApi.HandleFunc("/fit/frame", autoH.Frame).Methods("POST")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	db, err := repo.Open(ctx, cfg.Database.URL, cfg.Database.MaxOpenConns, cfg.Database.ConnMaxLifetime)
	if err != nil {
		return err
	}
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, repo.NewPostgresRepository(db), cfg, log)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: CORS(router),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting server", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLSEnabled()))
		var err error
		if cfg.Server.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	wg.Wait()
	log.Info("server stopped")
	return nil
}
