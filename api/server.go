package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/config"
	"github.com/bazarche/bazarche-backend/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	// Request logging can be switched off where a proxy already logs access.
	if config.GetBool(router.config, "HTTP_REQUEST_LOGGING", true) {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	}

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	for i := range acceptedOrigins {
		acceptedOrigins[i] = strings.TrimSpace(acceptedOrigins[i])
	}
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	adminPasswordHash := config.GetString(router.config, "ADMIN_PASSWORD_HASH", "")
	jwtSecret := []byte(config.GetString(router.config, "JWT_SECRET", ""))
	uploadBucket := config.GetString(router.config, "UPLOAD_BUCKET", "")
	uploadBaseURL := config.GetString(router.config, "UPLOAD_BASE_URL", "")

	// Object storage is optional; the upload endpoint reports unavailable
	// when no bucket is configured.
	var s3Client *s3.Client
	if uploadBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("Could not load object storage credentials; uploads disabled")
		} else {
			s3Client = s3.NewFromConfig(awsCfg)
		}
	}

	handlers := initializeHandlers(database, s3Client, adminPasswordHash, jwtSecret, uploadBucket, uploadBaseURL)

	authMiddleware := newAuthMiddleware(jwtSecret)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
