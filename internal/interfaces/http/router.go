package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotledger/internal/interfaces/http/middleware"
	"lotledger/internal/shared/constants"
)

// setupRoutes configures all HTTP routes. Every route except login and the
// health check requires a valid token plus a role permission on the owning
// module.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := c.engine.Group("/api/v1")

	v1.POST("/auth/login", c.hdlrs.authHandler.Login)

	authed := v1.Group("")
	authed.Use(c.authMiddleware.RequireAuth())

	c.setupCatalogRoutes(authed)
	c.setupInventoryRoutes(authed)
	c.setupLabRoutes(authed)
	c.setupCorrectionRoutes(authed)
	c.setupAuditRoutes(authed)
	c.setupUserRoutes(authed)
}

func (c *Container) setupCatalogRoutes(g *gin.RouterGroup) {
	read := c.permissionMiddleware.RequirePermission(constants.ModuleCatalog, constants.ActionRead)
	write := c.permissionMiddleware.RequirePermission(constants.ModuleCatalog, constants.ActionWrite)

	materials := g.Group("/materials")
	{
		materials.GET("", read, c.hdlrs.materialHandler.ListMaterials)
		materials.POST("", write, c.hdlrs.materialHandler.CreateMaterial)
		materials.PATCH("/:id/name", write, c.hdlrs.materialHandler.RenameMaterial)
		materials.PATCH("/:id/active", write, c.hdlrs.materialHandler.ToggleMaterial)

		materials.GET("/:id/profile", read, c.hdlrs.profileHandler.GetProfile)
		materials.POST("/:id/profile", write, c.hdlrs.profileHandler.AddProfileEntry)
		materials.DELETE("/:id/profile/:testId", write, c.hdlrs.profileHandler.RemoveProfileEntry)
	}

	tests := g.Group("/standard-tests")
	{
		tests.GET("", read, c.hdlrs.profileHandler.ListStandardTests)
		tests.POST("", write, c.hdlrs.profileHandler.CreateStandardTest)
	}
}

func (c *Container) setupInventoryRoutes(g *gin.RouterGroup) {
	read := c.permissionMiddleware.RequirePermission(constants.ModuleInventory, constants.ActionRead)
	write := c.permissionMiddleware.RequirePermission(constants.ModuleInventory, constants.ActionWrite)
	sample := c.permissionMiddleware.RequirePermission(constants.ModuleSampling, constants.ActionWrite)

	lots := g.Group("/lots")
	{
		lots.GET("", read, c.hdlrs.lotHandler.ListLots)
		lots.POST("", write, c.hdlrs.lotHandler.ReceiveLot)
		lots.GET("/:id", read, c.hdlrs.lotHandler.GetLot)
		lots.POST("/:id/sample", sample, c.hdlrs.lotHandler.SampleLot)
	}
}

func (c *Container) setupLabRoutes(g *gin.RouterGroup) {
	read := c.permissionMiddleware.RequirePermission(constants.ModuleLab, constants.ActionRead)
	write := c.permissionMiddleware.RequirePermission(constants.ModuleLab, constants.ActionWrite)

	g.GET("/lots/:id/analysis", read, c.hdlrs.labHandler.BeginAnalysis)
	g.POST("/lots/:id/analysis", write, c.hdlrs.labHandler.SubmitAnalysis)

	analyses := g.Group("/analyses")
	{
		analyses.GET("", read, c.hdlrs.labHandler.ListAnalyses)
		analyses.GET("/:id", read, c.hdlrs.labHandler.GetAnalysis)
		analyses.POST("/:id/certificate", read, c.hdlrs.labHandler.ReprintCertificate)
	}
}

func (c *Container) setupCorrectionRoutes(g *gin.RouterGroup) {
	write := c.permissionMiddleware.RequirePermission(constants.ModuleCorrection, constants.ActionWrite)

	g.PATCH("/lots/:id", write, c.hdlrs.correctionHandler.CorrectLot)
	g.PATCH("/analyses/:id", write, c.hdlrs.correctionHandler.CorrectAnalysis)
}

func (c *Container) setupAuditRoutes(g *gin.RouterGroup) {
	read := c.permissionMiddleware.RequirePermission(constants.ModuleAudit, constants.ActionRead)

	g.GET("/audit", read, c.hdlrs.auditHandler.ListAudit)
}

func (c *Container) setupUserRoutes(g *gin.RouterGroup) {
	read := c.permissionMiddleware.RequirePermission(constants.ModuleUsers, constants.ActionRead)
	write := c.permissionMiddleware.RequirePermission(constants.ModuleUsers, constants.ActionWrite)

	users := g.Group("/users")
	{
		users.GET("", read, c.hdlrs.userHandler.ListUsers)
		users.POST("", write, c.hdlrs.userHandler.CreateUser)
		users.PATCH("/:id/lock", write, c.hdlrs.userHandler.SetUserLock)
		users.PATCH("/:id/role", write, c.hdlrs.userHandler.AssignRole)
	}
}
