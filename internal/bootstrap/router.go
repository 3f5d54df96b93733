package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/nexter-app/nexter-backend/config"
	httpapi "github.com/nexter-app/nexter-backend/internal/api/http"
	"github.com/nexter-app/nexter-backend/internal/api/http/middleware"
	assetshttp "github.com/nexter-app/nexter-backend/internal/assets/http"
	assetsrepo "github.com/nexter-app/nexter-backend/internal/assets/repository"
	assistanthttp "github.com/nexter-app/nexter-backend/internal/assistant/http"
	assistantrepo "github.com/nexter-app/nexter-backend/internal/assistant/repository"
	assistantsvc "github.com/nexter-app/nexter-backend/internal/assistant/service"
	"github.com/nexter-app/nexter-backend/internal/auth/google"
	authhttp "github.com/nexter-app/nexter-backend/internal/auth/http"
	authmw "github.com/nexter-app/nexter-backend/internal/auth/middleware"
	authrepo "github.com/nexter-app/nexter-backend/internal/auth/repository"
	authsvc "github.com/nexter-app/nexter-backend/internal/auth/service"
	"github.com/nexter-app/nexter-backend/internal/auth/token"
	chathttp "github.com/nexter-app/nexter-backend/internal/chat/http"
	"github.com/nexter-app/nexter-backend/internal/chat/llm"
	chatsvc "github.com/nexter-app/nexter-backend/internal/chat/service"
	projectshttp "github.com/nexter-app/nexter-backend/internal/projects/http"
	projectsrepo "github.com/nexter-app/nexter-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Tokens      *token.Issuer

	// External-mode handles. Nil in memory mode.
	SQLDB    *sql.DB
	PgPool   *pgxpool.Pool
	RedisCli *redis.Client

	// Memory-mode stores, shared with the janitor.
	MemAssistant *assistantrepo.MemoryStore
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version, dep.PgPool, dep.RedisCli)
	healthHandler.RegisterRoutes(r)

	var (
		userRepo    authrepo.UserRepo
		projectRepo projectsrepo.ProjectRepo
		assetRepo   assetsrepo.AssetRepo
		assistStore assistantrepo.Store
	)

	if cfg.App.StorageMode == "external" {
		userRepo = authrepo.NewPostgresUserRepo(dep.SQLDB)
		projectRepo = projectsrepo.NewPostgresProjectRepo(dep.SQLDB)
		assetRepo = assetsrepo.NewPostgresAssetRepo(dep.SQLDB)
		assistStore = assistantrepo.NewRedisStore(dep.RedisCli, cfg.Assistant.UploadTTL)
	} else {
		userRepo = authrepo.NewMemoryUserRepo()
		projectRepo = projectsrepo.NewMemoryProjectRepo()
		assetRepo = assetsrepo.NewMemoryAssetRepo()
		assistStore = dep.MemAssistant
	}

	authService := authsvc.NewAuthService(userRepo, dep.Tokens)
	googleClient := google.NewClient(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret)
	assistantService := assistantsvc.NewAssistantService(assistStore)
	chatService := chatsvc.NewChatService(llm.New(cfg.Assistant.UpstreamAIURL))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(rate.Limit(20), 40))
	if cfg.App.StorageMode == "memory" {
		api.Use(middleware.SimulatedLatency(cfg.App.MockDelayMin, cfg.App.MockDelayMax))
	}

	requireUser := authmw.RequireUser(dep.Tokens)

	authhttp.New(authService, googleClient).Register(api, requireUser)

	// The assistant flow and chat are open: the SPA drives them before
	// an account exists.
	assistanthttp.New(assistantService).Register(api.Group("/assistant"))
	chathttp.New(chatService).Register(api)

	projectsGroup := api.Group("/projects")
	projectsGroup.Use(requireUser)
	projectshttp.New(projectRepo).Register(projectsGroup)

	assetsGroup := api.Group("/assets")
	assetsGroup.Use(requireUser)
	assetshttp.New(assetRepo).Register(assetsGroup)

	return r
}
