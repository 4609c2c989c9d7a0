package http

import (
	"lotledger/internal/interfaces/http/handlers"
)

// allHandlers groups the HTTP handler instances.
type allHandlers struct {
	authHandler       *handlers.AuthHandler
	materialHandler   *handlers.MaterialHandler
	profileHandler    *handlers.ProfileHandler
	lotHandler        *handlers.LotHandler
	labHandler        *handlers.LabHandler
	correctionHandler *handlers.CorrectionHandler
	auditHandler      *handlers.AuditHandler
	userHandler       *handlers.UserHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.authenticateUC, c.log),
		materialHandler: handlers.NewMaterialHandler(
			u.createMaterialUC, u.renameMaterialUC, u.toggleMaterialUC, u.listMaterialsUC, c.log),
		profileHandler: handlers.NewProfileHandler(
			u.createStandardTestUC, u.listStandardTestsUC, u.addProfileEntryUC, u.removeProfileEntryUC, u.getProfileUC, c.log),
		lotHandler: handlers.NewLotHandler(
			u.receiveLotUC, u.sampleLotUC, u.getLotUC, u.listLotsUC, c.log),
		labHandler: handlers.NewLabHandler(
			u.beginAnalysisUC, u.submitAnalysisUC, u.getAnalysisUC, u.listAnalysesUC, u.reprintCertificateUC, c.log),
		correctionHandler: handlers.NewCorrectionHandler(
			u.correctLotUC, u.correctAnalysisUC, c.log),
		auditHandler: handlers.NewAuditHandler(u.listAuditUC, c.log),
		userHandler: handlers.NewUserHandler(
			u.createUserUC, u.listUsersUC, u.setUserLockUC, u.assignRoleUC, c.log),
	}
}
