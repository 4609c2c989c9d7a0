package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotledger/internal/infrastructure/permission"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the authenticated role against the policy for a
// (module, action) pair.
func (m *PermissionMiddleware) RequirePermission(module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, module, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "module", module, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "module", module, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
