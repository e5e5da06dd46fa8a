// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	notificationv1 "github.com/buildcrew/sitemaster/api/proto/notification/v1/generated"
	schedulev1 "github.com/buildcrew/sitemaster/api/proto/schedule/v1/generated"
	taskv1 "github.com/buildcrew/sitemaster/api/proto/task/v1/generated"
	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/migrate"
	"github.com/buildcrew/sitemaster/internal/config"
	"github.com/buildcrew/sitemaster/internal/database"
	"github.com/buildcrew/sitemaster/internal/middleware"
	"github.com/buildcrew/sitemaster/internal/repository"
	"github.com/buildcrew/sitemaster/internal/service"
	"github.com/buildcrew/sitemaster/internal/workflow"
	"github.com/buildcrew/sitemaster/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	}
	entClient, err := database.NewEntClient(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Separate sqlx handle for the dashboard aggregate reads
	sqlxDB, err := database.NewSQLXDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open summary database handle: %v", err)
	}
	defer func() {
		if err := sqlxDB.Close(); err != nil {
			log.Printf("Failed to close summary database handle: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Initialize token manager
	tokenManager := auth.NewTokenManager(cfg.JWT.AccessSecret, cfg.JWT.Issuer)

	// Initialize services
	notificationService := service.NewNotificationService(entClient)
	eventLogger := service.NewEventLogger(notificationService)

	deleteCoordinator := workflow.NewDeleteCoordinator(cfg.Workflow.DeleteConfirmationTTL)
	summaryRepo := repository.NewSummaryRepository(sqlxDB)

	scheduleService := service.NewScheduleService(entClient, summaryRepo, deleteCoordinator, eventLogger)
	taskService := service.NewTaskService(entClient, summaryRepo, eventLogger)

	// Initialize middleware
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	authInterceptor := middleware.NewAuthInterceptor(tokenManager)
	validationInterceptor := middleware.NewValidationInterceptor(middleware.DefaultValidationConfig())

	// Create gRPC server with interceptors
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			validationInterceptor.Unary(),
			authInterceptor.Unary(),
			loggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			metadataExtractor.Stream(),
			validationInterceptor.Stream(),
			authInterceptor.Stream(),
		),
	)

	// Register services
	schedulev1.RegisterScheduleServiceServer(grpcServer, scheduleService)
	taskv1.RegisterTaskServiceServer(grpcServer, taskService)
	notificationv1.RegisterNotificationServiceServer(grpcServer, notificationService)

	// Register health check
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("schedule.v1.ScheduleService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("task.v1.TaskService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("notification.v1.NotificationService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection for development
	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	// Create listener
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Start server in goroutine
	go func() {
		log.Printf("SiteMaster gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	grpcServer.GracefulStop()
	log.Println("Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	clientInfo := middleware.GetClientInfoFromContext(ctx)
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (user: %s, ip: %s)",
		logLevel, info.FullMethod, duration, clientInfo.UserID, clientInfo.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
