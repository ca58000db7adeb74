// Package server assembles the process-wide dependencies of the listings
// API: configuration, loggers, the Postgres pool, the optional Redis client
// and job worker, and the HTTP listener. It also tears them down in order.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/listings-api/internal/config"
	"github.com/deppfellow/listings-api/internal/database"
	"github.com/deppfellow/listings-api/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/listings-api/internal/logger"
)

const redisPingTimeout = 5 * time.Second

type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	// Redis is nil when no address is configured.
	Redis *redis.Client

	// Job is nil unless Redis answered and a Resend key is configured.
	Job *job.JobService

	httpServer *http.Server
}

// New opens the database pool, then Redis and the welcome email worker when
// they are configured. Only a database failure is fatal.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if !s.connectRedis() {
		return s, nil
	}

	if err := s.startJobs(); err != nil {
		_ = s.Redis.Close()
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// connectRedis sets s.Redis and reports whether Redis answered a ping.
func (s *Server) connectRedis() bool {
	if s.Config.Redis.Address == "" {
		s.Logger.Info().Msg("redis not configured, background jobs disabled")
		return false
	}

	client := redis.NewClient(&redis.Options{Addr: s.Config.Redis.Address})
	if s.LoggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}
	s.Redis = client

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		s.Logger.Error().
			Err(err).
			Str("address", s.Config.Redis.Address).
			Msg("redis unreachable, background jobs disabled")
		return false
	}

	return true
}

func (s *Server) startJobs() error {
	if s.Config.Integration.ResendAPIKey == "" {
		s.Logger.Info().Msg("resend api key not configured, welcome emails disabled")
		return nil
	}

	jobs := job.NewJobService(s.Logger, s.Config)
	if err := jobs.Start(); err != nil {
		return fmt.Errorf("failed to start job service: %w", err)
	}
	s.Job = jobs

	return nil
}

// SetupHTTPServer wraps handler in the listener configured by server.*.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	seconds := func(n int) time.Duration { return time.Duration(n) * time.Second }

	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  seconds(s.Config.Server.ReadTimeout),
		WriteTimeout: seconds(s.Config.Server.WriteTimeout),
		IdleTimeout:  seconds(s.Config.Server.IdleTimeout),
	}
}

// Start blocks serving HTTP. After Shutdown it returns http.ErrServerClosed.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("addr", s.httpServer.Addr).
		Str("env", s.Config.Primary.Env).
		Msg("listings api listening")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires, then stops the job
// worker and closes Redis, the pool and the New Relic agent, in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	s.LoggerService.Shutdown()

	return errors.Join(errs...)
}
