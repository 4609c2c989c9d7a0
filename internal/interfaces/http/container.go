package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"lotledger/internal/infrastructure/auth"
	"lotledger/internal/infrastructure/config"
	"lotledger/internal/infrastructure/permission"
	"lotledger/internal/infrastructure/ratelimit"
	"lotledger/internal/infrastructure/renderer"
	"lotledger/internal/interfaces/http/middleware"
	"lotledger/internal/shared/db"
	"lotledger/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers
// together and exposes the configured gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	txManager           *db.TransactionManager
	hasher              *auth.BcryptPasswordHasher
	jwtSvc              *auth.JWTService
	loginRateLimiter    *ratelimit.RedisLoginRateLimiter
	enforcer            *permission.Enforcer
	certificateRenderer *renderer.PDFCertificateRenderer

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
}

// NewContainer builds the full dependency graph. Initialization order
// matters: services before use cases, use cases before handlers.
func NewContainer(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()
	c.setupRoutes()

	return c, nil
}

// Engine returns the configured gin engine, ready to serve.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
