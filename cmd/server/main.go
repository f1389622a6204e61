package main

import (
	"context"
	"fmt"
	"log"

	"docugen/internal/config"
	"docugen/internal/docgen"
	"docugen/internal/handler"
	"docugen/internal/registry"
	"docugen/internal/repository/postgres"
	"docugen/internal/router"
	"docugen/internal/service"
	"docugen/internal/storage/localfs"
	s3storage "docugen/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	usageLogRepo := postgres.NewUsageLogRepo(db)

	// Initialize template storage
	localStore, err := localfs.NewStore(cfg.Templates.LocalDir)
	if err != nil {
		return fmt.Errorf("failed to initialize local template store: %w", err)
	}

	templateStore := localStore
	remoteStore, err := s3storage.NewTemplateStore(&cfg.S3)
	if err != nil {
		if cfg.Templates.Store == "s3" {
			return fmt.Errorf("failed to initialize S3 template store: %w", err)
		}
		log.Printf("S3 template store unavailable, remote sync disabled: %v", err)
		remoteStore = nil
	}
	if cfg.Templates.Store == "s3" {
		templateStore = remoteStore
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	assembler := docgen.NewAssembler(templateStore)
	generationSvc := service.NewGenerationService(assembler, usageLogRepo)
	templateSvc := service.NewTemplateService(templateStore, remoteStore)
	reportSvc := service.NewReportService(usageLogRepo)
	registryClient := registry.NewClient(&cfg.Registry)

	if cfg.Templates.SyncOnStart && remoteStore != nil && cfg.Templates.Store == "local" {
		synced, err := templateSvc.SyncFromRemote(context.Background())
		if err != nil {
			log.Printf("startup template sync failed: %v", err)
		} else {
			log.Printf("synced %d templates from remote store", synced)
		}
	}

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	documentH := handler.NewDocumentHandler(generationSvc)
	registryH := handler.NewRegistryHandler(registryClient)
	templateH := handler.NewTemplateHandler(templateSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, documentH, registryH, templateH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
