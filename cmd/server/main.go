package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"multaqa/config"
	authadapter "multaqa/internal/adapters/auth"
	emailadapter "multaqa/internal/adapters/email"
	delivery "multaqa/internal/delivery/http"
	"multaqa/internal/delivery/http/controllers"
	"multaqa/internal/delivery/http/middleware"
	"multaqa/internal/repository/postgres"
	"multaqa/internal/services"
)

// @title Multaqa API
// @version 1.0
// @description Bilingual event platform: dynamic registration forms and submission triage.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	sectionRepo := postgres.NewSectionRepository(db)
	templateRepo := postgres.NewSectionTemplateRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	sectorRepo := postgres.NewSectorRepository(db)
	opportunityRepo := postgres.NewOpportunityRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	postRepo := postgres.NewPostRepository(db)
	linkRepo := postgres.NewLinkRepository(db)
	userRepo := postgres.NewAdminUserRepository(db)

	tokens := authadapter.NewJWTTokens(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)

	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer(), cfg.SubmissionNotifyEmail, cfg.BaseURL)
	eventSvc := services.NewEventService(eventRepo, sectionRepo, templateRepo)
	submissionSvc := services.NewSubmissionService(
		submissionRepo, eventRepo, sectionRepo, templateRepo,
		sectorRepo, opportunityRepo, emailSvc, logger,
	)
	programSvc := services.NewProgramService(sessionRepo, eventRepo)
	sectorSvc := services.NewSectorService(sectorRepo)
	opportunitySvc := services.NewOpportunityService(opportunityRepo)
	contentSvc := services.NewContentService(postRepo, linkRepo)
	authSvc := services.NewAuthService(userRepo, hasher, tokens)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:        controllers.NewAuthController(logger, authSvc),
		Event:       controllers.NewEventController(logger, eventSvc),
		Submission:  controllers.NewSubmissionController(logger, submissionSvc),
		Program:     controllers.NewProgramController(logger, programSvc),
		Sector:      controllers.NewSectorController(logger, sectorSvc),
		Opportunity: controllers.NewOpportunityController(logger, opportunitySvc),
		Content:     controllers.NewContentController(logger, contentSvc),
	}, tokens, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, mux))

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
