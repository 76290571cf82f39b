package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apicontext "github.com/oghenefuyereo/spendwise-api/internal/api/http/context"
	"github.com/oghenefuyereo/spendwise-api/internal/api/http/router"
	"github.com/oghenefuyereo/spendwise-api/internal/config"
	"github.com/oghenefuyereo/spendwise-api/internal/hasher"
	"github.com/oghenefuyereo/spendwise-api/internal/identity"
	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/repository/postgres"
	"github.com/oghenefuyereo/spendwise-api/internal/server"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
	storage "github.com/oghenefuyereo/spendwise-api/internal/storage/minio"
	"github.com/oghenefuyereo/spendwise-api/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	goalRepo := postgres.NewGoalRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	passwordHasher := hasher.NewBcrypt(cfg.Password.BcryptCost)
	verifier := identity.NewGoogle(cfg.Google, logger)
	ctxMgr := apicontext.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(accountRepo, passwordHasher, tokenManager, logger)
	accountService := service.NewAccount(accountRepo, passwordHasher, logger)
	transactionService := service.NewTransaction(transactionRepo, categoryRepo, storageClient, logger)
	categoryService := service.NewCategory(categoryRepo, logger)
	goalService := service.NewGoal(goalRepo, logger)

	r := router.New(
		authService,
		accountService,
		transactionService,
		categoryService,
		goalService,
		verifier,
		tokenManager,
		ctxMgr,
		logger,
	)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
