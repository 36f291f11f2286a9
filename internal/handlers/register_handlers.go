package handlers

import (
	"net/http"

	"github.com/SscSPs/monthly_ledger/cmd/docs"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/middleware"
	"github.com/SscSPs/monthly_ledger/internal/platform/config"
	"github.com/SscSPs/monthly_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterDeps bundles what RegisterRoutes wires into the router.
type RouterDeps struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer
	Posthog  *utils.PosthogClientWrapper
	Limiter  *limiter.Limiter
	DBPool   *pgxpool.Pool // optional, used by the health check
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	r.GET("/health", healthCheck(deps.DBPool))

	setupAPIV1Routes(r, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, deps.Config)
}

// healthCheck answers OK, or 503 when the database does not answer a ping.
func healthCheck(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, deps RouterDeps) {
	chain := []gin.HandlerFunc{}
	if deps.Limiter != nil {
		chain = append(chain, middleware.RateLimit(deps.Limiter))
	}
	chain = append(chain, middleware.AuthMiddleware(deps.Config.JWTSecret), middleware.PosthogMiddleware(deps.Posthog))
	v1 := r.Group("/api/v1", chain...)

	RegisterWorkplaceRoutes(v1, deps.Services.Workplace)

	me := v1.Group("/me", middleware.ResolveUserOwner())
	registerOwnerRoutes(me, deps)

	workplace := v1.Group("/workplaces/:"+middleware.WorkplaceIDParam, middleware.ResolveWorkplaceOwner())
	registerOwnerRoutes(workplace, deps)
}

// registerOwnerRoutes registers the ledger routes that act on one owner's data.
func registerOwnerRoutes(rg *gin.RouterGroup, deps RouterDeps) {
	RegisterLineItemRoutes(rg, deps.Services.LineItem, deps.Posthog)
	RegisterCategoryRoutes(rg, deps.Services.Category)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
