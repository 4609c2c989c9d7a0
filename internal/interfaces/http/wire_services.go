package http

import (
	"fmt"
	"time"

	"lotledger/internal/infrastructure/auth"
	"lotledger/internal/infrastructure/permission"
	"lotledger/internal/infrastructure/ratelimit"
	"lotledger/internal/infrastructure/renderer"
	"lotledger/internal/interfaces/http/middleware"
	"lotledger/internal/shared/db"
)

func (c *Container) initServices() error {
	c.txManager = db.NewTransactionManager(c.db)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	c.loginRateLimiter = ratelimit.NewRedisLoginRateLimiter(
		c.redis,
		c.cfg.Auth.LoginRateLimit,
		time.Duration(c.cfg.Auth.LoginRateWindowMinutes)*time.Minute,
	)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Auth.CasbinModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to build access enforcer: %w", err)
	}
	if err := permission.InitQualityPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed access policies: %w", err)
	}
	c.enforcer = enforcer

	c.certificateRenderer = renderer.NewPDFCertificateRenderer(c.cfg.Quality.CertificateDir, c.log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	return nil
}
