package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"prana"
	"prana/config"
	"prana/internal/application/guard"
	"prana/internal/application/usecase"
	"prana/internal/domain/entity"
	"prana/internal/infrastructure/broker"
	"prana/internal/infrastructure/database"
	"prana/internal/infrastructure/minio"
	"prana/internal/infrastructure/session"
	"prana/internal/presentation"
	"prana/internal/presentation/handler"
	"prana/internal/presentation/middleware"
	"prana/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	if err := logger.InitGlobalLogger(&cfg.Logger); err != nil {
		ExitOnError(err)
	}
	defer func() { _ = logger.Close() }()

	logger.Info("running prana", "version", prana.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	dbWriter := database.NewBlogWriter(db)
	dbUpdater := database.NewBlogUpdater(db)
	dbRetriever := database.NewBlogRetriever(db)
	dbRemover := database.NewRemover(db)
	dbLister := database.NewBlogLister(db)
	userStore := database.NewUserStore(db)

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(fmt.Errorf("preparing bucket %s: %w", cfg.MinIOUploader.Bucket, err))
	}

	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIORemover)
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOUploader)

	sessionStore, err := session.New(cfg.Session)
	if err != nil {
		ExitOnError(err)
	}

	activity := usecase.NewActivityTracker(userStore)

	createHandler := handler.NewCreateHandler(usecase.NewCreator(dbWriter, brokerPublisher))
	listHandler := handler.NewListHandler(usecase.NewLister(dbLister))
	getHandler := handler.NewGetHandler(usecase.NewGetter(dbRetriever))
	updateHandler := handler.NewUpdateHandler(usecase.NewUpdater(dbRetriever, dbUpdater, brokerPublisher))
	deleteHandler := handler.NewDeleteHandler(usecase.NewDeleter(dbRemover, brokerPublisher))
	userHandler := handler.NewUserHandler(usecase.NewUserGetter(userStore))

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	allowOrigins := cfg.HTTP.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodOptions},
		AllowCredentials: allowOrigins[0] != "*",
		MaxAge:           86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))
	e.Use(middleware.LoadSession(sessionStore))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	admin := []echo.MiddlewareFunc{
		middleware.Guards(guard.Authenticated()),
		middleware.TrackActivity(activity),
		middleware.Guards(guard.HasRole(userStore, cfg.Auth.AdminRole)),
	}
	upload := middleware.Upload(minIOUploader, minIORemover, entity.ImageField, entity.AuthorImageField)

	e.GET("/blogs", listHandler.HandleList)
	e.POST("/blogs", createHandler.HandleCreate, append(admin, upload)...)
	e.GET("/blog/:"+presentation.IDParam, getHandler.HandleGet)
	e.PUT("/blog/:"+presentation.IDParam, updateHandler.HandleUpdate, append(admin, upload)...)
	e.DELETE("/blog/:"+presentation.IDParam, deleteHandler.HandleDelete, admin...)

	e.GET("/users/:"+presentation.UserIDParam, userHandler.HandleGetUser,
		middleware.Guards(guard.Authenticated()),
		middleware.TrackActivity(activity),
		middleware.Guards(guard.Owner(presentation.UserIDParam)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	activity.Wait()

	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect from database", "err", err)
	}
}
