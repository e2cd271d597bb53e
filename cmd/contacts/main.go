package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/simple-contacts/pkg/account"
	accountapi "github.com/tendant/simple-contacts/pkg/account/api"
	"github.com/tendant/simple-contacts/pkg/avatar"
	"github.com/tendant/simple-contacts/pkg/contact"
	contactapi "github.com/tendant/simple-contacts/pkg/contact/api"
	"github.com/tendant/simple-contacts/pkg/emailverification"
	verificationapi "github.com/tendant/simple-contacts/pkg/emailverification/api"
	"github.com/tendant/simple-contacts/pkg/mongodb"
	"github.com/tendant/simple-contacts/pkg/notification"
	"github.com/tendant/simple-contacts/pkg/tokengenerator"
)

type ServerConfig struct {
	Host            string        `env:"HOST" env-default:"localhost"`
	Port            uint16        `env:"PORT" env-default:"4000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type JwtConfig struct {
	Secret   string        `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer   string        `env:"JWT_ISSUER" env-default:"simple-contacts"`
	Audience string        `env:"JWT_AUDIENCE" env-default:"simple-contacts"`
	Expiry   time.Duration `env:"JWT_EXPIRY" env-default:"23h"`
}

type EmailConfig struct {
	Host     string `env:"SMTP_HOST" env-default:"localhost"`
	Port     int    `env:"SMTP_PORT" env-default:"1025"`
	TLS      bool   `env:"SMTP_TLS" env-default:"false"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM" env-default:"noreply@example.com"`
}

type VerificationConfig struct {
	BaseURL     string        `env:"BASE_URL" env-default:"http://localhost:4000"`
	TokenExpiry time.Duration `env:"VERIFICATION_TOKEN_EXPIRY" env-default:"1h"`
}

type AvatarConfig struct {
	Dir        string `env:"AVATAR_DIR" env-default:"public/avatars"`
	PublicPath string `env:"AVATAR_PUBLIC_PATH" env-default:"/avatars"`
}

type Config struct {
	Server       ServerConfig
	Mongo        mongodb.Config
	Jwt          JwtConfig
	Email        EmailConfig
	Verification VerificationConfig
	Avatar       AvatarConfig
}

func main() {
	loadEnvFile()

	config := Config{}
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed reading config", "error", err)
		os.Exit(-1)
	}

	ctx := context.Background()

	db, err := mongodb.NewDatabase(ctx, config.Mongo)
	if err != nil {
		slog.Error("Failed connecting to mongodb", "uri", config.Mongo.URI, "error", err)
		os.Exit(-1)
	}
	defer db.Client().Disconnect(context.Background())

	accountRepo := account.NewMongoRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		slog.Error("Failed creating indexes", "error", err)
		os.Exit(-1)
	}
	verificationRepo := emailverification.NewMongoRepository(db)
	contactRepo := contact.NewMongoRepository(db)

	notificationManager, err := notification.NewNotificationManagerWithOptions(
		notification.WithSMTP(notification.SMTPConfig{
			Host:     config.Email.Host,
			Port:     config.Email.Port,
			TLS:      config.Email.TLS,
			Username: config.Email.Username,
			Password: config.Email.Password,
			From:     config.Email.From,
		}),
		notification.WithDefaultTemplates(),
	)
	if err != nil {
		slog.Error("Failed creating notification manager", "error", err)
		os.Exit(-1)
	}

	verificationService := emailverification.NewEmailVerificationService(
		verificationRepo,
		notificationManager,
		config.Verification.BaseURL,
		emailverification.WithTokenExpiry(config.Verification.TokenExpiry),
	)

	accountService := account.NewAccountService(accountRepo,
		account.WithTokenGenerator(tokengenerator.NewJwtTokenGenerator(
			config.Jwt.Secret,
			config.Jwt.Issuer,
			config.Jwt.Audience,
			tokengenerator.WithExpiry(config.Jwt.Expiry),
		)),
		account.WithVerificationService(verificationService),
	)

	contactService := contact.NewContactService(contactRepo)

	avatars, err := avatar.NewProcessor(config.Avatar.Dir, config.Avatar.PublicPath)
	if err != nil {
		slog.Error("Failed preparing avatar directory", "dir", config.Avatar.Dir, "error", err)
		os.Exit(-1)
	}

	jwtAuth := jwtauth.New("HS256", []byte(config.Jwt.Secret), nil)

	accountHandler := accountapi.NewHandler(accountService, avatars, jwtAuth)
	verificationHandler := verificationapi.NewHandler(verificationService)
	contactHandler := contactapi.NewHandler(contactService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	healthcheck := mongodb.Healthcheck(db.Client())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := healthcheck(r.Context()); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	r.Route("/api/users", func(r chi.Router) {
		accountHandler.RegisterRoutes(r)
		verificationHandler.RegisterRoutes(r)
	})
	r.Route("/api/contacts", contactHandler.RegisterRoutes)

	fileServer := http.StripPrefix(config.Avatar.PublicPath+"/", http.FileServer(http.Dir(config.Avatar.Dir)))
	r.Get(config.Avatar.PublicPath+"/*", fileServer.ServeHTTP)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(-1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// loadEnvFile loads a local .env file when present. Real deployments set
// environment variables directly.
func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("Failed loading .env file", "error", err)
		}
	}
}
