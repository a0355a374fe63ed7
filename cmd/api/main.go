package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/onelearning/edusphere-api/api/swagger"
	"github.com/onelearning/edusphere-api/internal/handler"
	"github.com/onelearning/edusphere-api/internal/middleware"
	"github.com/onelearning/edusphere-api/internal/repository"
	"github.com/onelearning/edusphere-api/internal/service"
	"github.com/onelearning/edusphere-api/pkg/config"
	"github.com/onelearning/edusphere-api/pkg/database"
	"github.com/onelearning/edusphere-api/pkg/logger"
	corsmiddleware "github.com/onelearning/edusphere-api/pkg/middleware/cors"
	reqidmiddleware "github.com/onelearning/edusphere-api/pkg/middleware/requestid"
	"github.com/onelearning/edusphere-api/pkg/storage"

	rediscache "github.com/onelearning/edusphere-api/pkg/cache"
)

// @title EduSphere API
// @version 1.0.0
// @description Educational and clinical records backend
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := rediscache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("export storage init failed", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	reportRepo := repository.NewReportRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, logr)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, cacheRepo, logr)
	patientSvc := service.NewPatientService(patientRepo, validate, logr, cfg.Uploads.MaxAnalysisImages)
	reportSvc := service.NewReportService(reportRepo, logr)
	exportSvc := service.NewExportService(reportRepo, exportStore, signer, metricsSvc, cfg.Exports.SignedURLTTL, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cacheRepo, metricsSvc, cfg.Dashboard.CacheEnabled, cfg.Dashboard.CacheTTL, logr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exportSvc.Start(ctx)
	defer exportSvc.Stop()

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	patientHandler := handler.NewPatientHandler(patientSvc)
	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/students", authHandler.ListStudents)

		api.GET("/topics", catalogHandler.ListTopics)
		api.GET("/courses/:topicId", catalogHandler.ListCoursesByTopic)
		api.GET("/module-courses/:moduleId", catalogHandler.ListCoursesByModule)
		api.GET("/course-overview/:courseId", catalogHandler.GetCourseOverview)
		api.GET("/cases", catalogHandler.ListCases)

		api.POST("/assignments", assignmentHandler.Publish)
		api.GET("/assignments/topic/:topicId", assignmentHandler.ListByTopic)
		api.GET("/student/topics/:studentId", assignmentHandler.ListTopicsForStudent)
		api.GET("/student/courses/:topicId/:studentId", assignmentHandler.ListCoursesForStudent)

		api.POST("/patient-registration", patientHandler.Register)
		api.GET("/patient-registrations", patientHandler.ListByUser)
		api.GET("/patient-registration/:registration_id", patientHandler.GetByRegistrationID)
		api.POST("/consent-form", patientHandler.SubmitConsentForm)
		api.POST("/image-analysis", patientHandler.SubmitImageAnalysis)
		api.GET("/image-analysis/:registration_id", patientHandler.GetImageAnalysis)
		api.GET("/patient-scan-images/:patient_id", patientHandler.ListScanImages)
		api.POST("/patient-scan-images", patientHandler.AddScanImage)

		api.POST("/save-report-pdf", reportHandler.Save)
		api.GET("/get-all-report-pdfs", reportHandler.ListAll)
		api.GET("/reports/export", reportHandler.Export)
		api.GET("/reports/download", reportHandler.Download)

		api.GET("/dashboard-stats", dashboardHandler.Stats)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
