package v1

import (
	"net/http"

	"go-intake-backend/config"
	"go-intake-backend/internal/delivery/http/middleware"
	"go-intake-backend/internal/delivery/http/response"
	"go-intake-backend/internal/domain"
	"go-intake-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	IntakeUC     domain.IntakeUsecase
	ContractorUC domain.ContractorUsecase
	HealthUC     usecase.HealthUsecase
	RedisClient  *goredis.Client // nil means in-memory rate limiting
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public intake routes, rate limited per IP
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(deps.RedisClient, middleware.IntakeRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		deps.Config.RateLimitWindowSeconds,
	)))
	{
		NewIntakeHandler(public, deps.IntakeUC)
		NewContractorHandler(public, deps.ContractorUC)
	}

	return r
}
