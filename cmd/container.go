package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/careergist/careergist/career/activity/activityapi"
	"github.com/careergist/careergist/career/activity/activityinfra"
	"github.com/careergist/careergist/career/activity/activitysrv"
	"github.com/careergist/careergist/career/analytics/analyticsapi"
	"github.com/careergist/careergist/career/interview/interviewapi"
	"github.com/careergist/careergist/career/interview/interviewsrv"
	"github.com/careergist/careergist/career/learning/learningapi"
	"github.com/careergist/careergist/career/learning/learninginfra"
	"github.com/careergist/careergist/career/learning/learningsrv"
	"github.com/careergist/careergist/career/resume/resumeapi"
	"github.com/careergist/careergist/career/resume/resumeinfra"
	"github.com/careergist/careergist/career/resume/resumesrv"
	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/career/suggestion/suggestionapi"
	"github.com/careergist/careergist/career/suggestion/suggestioninfra"
	"github.com/careergist/careergist/career/suggestion/suggestionsrv"
	"github.com/careergist/careergist/internal/ai/resumemd"
	"github.com/careergist/careergist/internal/ai/textgen"
	"github.com/careergist/careergist/internal/nlp"
	"github.com/careergist/careergist/pkg/fsx"
	"github.com/careergist/careergist/pkg/fsx/fsxs3"
	"github.com/careergist/careergist/pkg/iam/auth"
	"github.com/careergist/careergist/pkg/iam/auth/authinfra"
	"github.com/careergist/careergist/pkg/iam/user/userinfra"
	"github.com/careergist/careergist/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Core Services
	TokenService      auth.TokenService
	SuggestionService *suggestionsrv.SuggestionService
	ResumeService     *resumesrv.ResumeService
	ActivityService   *activitysrv.ActivityService
	InterviewService  *interviewsrv.InterviewService
	LearningService   *learningsrv.LearningService

	// API Handlers
	AuthHandlers       *auth.AuthHandlers
	SuggestionHandlers *suggestionapi.Handlers
	ResumeHandlers     *resumeapi.Handlers
	ActivityHandlers   *activityapi.Handlers
	AnalyticsHandlers  *analyticsapi.Handlers
	InterviewHandlers  *interviewapi.Handlers
	LearningHandlers   *learningapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		logx.Warn("OPENAI_API_KEY is not set, generation features will fail")
	}

	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	favoriteRepo := activityinfra.NewPostgresFavoriteRepository(c.DB)
	searchRepo := activityinfra.NewPostgresSearchTermRepository(c.DB)
	catalogRepo := suggestioninfra.NewPostgresCatalogRepository(c.DB)
	suggestionRepo := suggestioninfra.NewPostgresSuggestionRepository(c.DB)

	// --- Caches ---
	suggestionCache := suggestioninfra.NewRedisSuggestionCache(c.Redis, suggestioninfra.DefaultSuggestionTTL)
	courseCache := learninginfra.NewRedisCourseCache(c.Redis, learninginfra.DefaultCourseTTL)

	// --- AI and NLP ---
	generator := textgen.NewClient(openAIKey, "")
	converter := resumemd.NewConverter(openAIKey)
	extractor := skills.NewExtractor(nlp.NewProseTagger(), skills.DefaultConfig())

	// --- Auth ---
	passwordSvc := authinfra.NewBcryptPasswordService()
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)
	c.AuthHandlers = auth.NewAuthHandlers(userRepo, c.TokenService, passwordSvc)

	// --- Domain Services ---
	c.SuggestionService = suggestionsrv.NewSuggestionService(
		extractor,
		catalogRepo,
		suggestionRepo,
		userRepo,
		generator,
		suggestionCache,
	)
	c.ResumeService = resumesrv.NewResumeService(resumeRepo, c.FileSystem, converter)
	c.ActivityService = activitysrv.NewActivityService(
		favoriteRepo,
		searchRepo,
		resumeRepo,
		userRepo,
		extractor,
	)
	c.InterviewService = interviewsrv.NewInterviewService(generator)
	c.LearningService = learningsrv.NewLearningService(
		extractor,
		resumeRepo,
		learninginfra.NewCourseraClient(),
		generator,
		courseCache,
	)

	// --- Handlers ---
	c.SuggestionHandlers = suggestionapi.NewHandlers(c.SuggestionService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.ActivityHandlers = activityapi.NewHandlers(c.ActivityService)
	c.AnalyticsHandlers = analyticsapi.NewHandlers()
	c.InterviewHandlers = interviewapi.NewHandlers(c.InterviewService)
	c.LearningHandlers = learningapi.NewHandlers(c.LearningService)
}
