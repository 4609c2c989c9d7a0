package http

import (
	auditUsecases "lotledger/internal/application/audit/usecases"
	catalogUsecases "lotledger/internal/application/catalog/usecases"
	correctionUsecases "lotledger/internal/application/correction/usecases"
	inventoryUsecases "lotledger/internal/application/inventory/usecases"
	labUsecases "lotledger/internal/application/lab/usecases"
	userUsecases "lotledger/internal/application/user/usecases"
)

// allUseCases groups the use case instances by bounded context.
type allUseCases struct {
	// Catalog
	createMaterialUC     *catalogUsecases.CreateMaterialUseCase
	renameMaterialUC     *catalogUsecases.RenameMaterialUseCase
	toggleMaterialUC     *catalogUsecases.ToggleMaterialUseCase
	listMaterialsUC      *catalogUsecases.ListMaterialsUseCase
	createStandardTestUC *catalogUsecases.CreateStandardTestUseCase
	listStandardTestsUC  *catalogUsecases.ListStandardTestsUseCase
	addProfileEntryUC    *catalogUsecases.AddProfileEntryUseCase
	removeProfileEntryUC *catalogUsecases.RemoveProfileEntryUseCase
	getProfileUC         *catalogUsecases.GetProfileUseCase

	// Inventory
	receiveLotUC *inventoryUsecases.ReceiveLotUseCase
	sampleLotUC  *inventoryUsecases.SampleLotUseCase
	getLotUC     *inventoryUsecases.GetLotUseCase
	listLotsUC   *inventoryUsecases.ListLotsUseCase

	// Lab
	beginAnalysisUC      *labUsecases.BeginAnalysisUseCase
	submitAnalysisUC     *labUsecases.SubmitAnalysisUseCase
	getAnalysisUC        *labUsecases.GetAnalysisUseCase
	listAnalysesUC       *labUsecases.ListAnalysesUseCase
	reprintCertificateUC *labUsecases.ReprintCertificateUseCase

	// Correction
	correctLotUC      *correctionUsecases.CorrectLotUseCase
	correctAnalysisUC *correctionUsecases.CorrectAnalysisUseCase

	// Audit
	listAuditUC *auditUsecases.ListAuditUseCase

	// Users
	authenticateUC *userUsecases.AuthenticateUseCase
	createUserUC   *userUsecases.CreateUserUseCase
	listUsersUC    *userUsecases.ListUsersUseCase
	setUserLockUC  *userUsecases.SetUserLockUseCase
	assignRoleUC   *userUsecases.AssignRoleUseCase
}

func (c *Container) initUseCases() {
	r := c.repos

	c.ucs = &allUseCases{
		createMaterialUC:     catalogUsecases.NewCreateMaterialUseCase(r.materialRepo, r.auditRepo, c.txManager, c.log),
		renameMaterialUC:     catalogUsecases.NewRenameMaterialUseCase(r.materialRepo, r.auditRepo, c.txManager, c.log),
		toggleMaterialUC:     catalogUsecases.NewToggleMaterialUseCase(r.materialRepo, r.auditRepo, c.txManager, c.log),
		listMaterialsUC:      catalogUsecases.NewListMaterialsUseCase(r.materialRepo, c.log),
		createStandardTestUC: catalogUsecases.NewCreateStandardTestUseCase(r.testRepo, r.auditRepo, c.txManager, c.log),
		listStandardTestsUC:  catalogUsecases.NewListStandardTestsUseCase(r.testRepo, c.log),
		addProfileEntryUC:    catalogUsecases.NewAddProfileEntryUseCase(r.materialRepo, r.testRepo, r.profileRepo, r.auditRepo, c.txManager, c.log),
		removeProfileEntryUC: catalogUsecases.NewRemoveProfileEntryUseCase(r.materialRepo, r.testRepo, r.profileRepo, r.auditRepo, c.txManager, c.log),
		getProfileUC:         catalogUsecases.NewGetProfileUseCase(r.materialRepo, r.profileRepo, c.log),

		receiveLotUC: inventoryUsecases.NewReceiveLotUseCase(r.lotRepo, r.materialRepo, r.auditRepo, c.txManager, c.log),
		sampleLotUC:  inventoryUsecases.NewSampleLotUseCase(r.lotRepo, r.auditRepo, c.txManager, c.log),
		getLotUC:     inventoryUsecases.NewGetLotUseCase(r.lotRepo, c.log),
		listLotsUC:   inventoryUsecases.NewListLotsUseCase(r.lotRepo, c.log),

		beginAnalysisUC:      labUsecases.NewBeginAnalysisUseCase(r.lotRepo, r.materialRepo, r.profileRepo, c.log),
		submitAnalysisUC:     labUsecases.NewSubmitAnalysisUseCase(r.lotRepo, r.materialRepo, r.profileRepo, r.analysisRepo, r.auditRepo, c.certificateRenderer, c.txManager, c.log),
		getAnalysisUC:        labUsecases.NewGetAnalysisUseCase(r.analysisRepo, c.log),
		listAnalysesUC:       labUsecases.NewListAnalysesUseCase(r.analysisRepo, c.log),
		reprintCertificateUC: labUsecases.NewReprintCertificateUseCase(r.analysisRepo, r.lotRepo, r.materialRepo, r.profileRepo, c.certificateRenderer, c.log),

		correctLotUC:      correctionUsecases.NewCorrectLotUseCase(r.lotRepo, r.auditRepo, c.enforcer, c.txManager, c.log),
		correctAnalysisUC: correctionUsecases.NewCorrectAnalysisUseCase(r.analysisRepo, r.lotRepo, r.auditRepo, c.enforcer, c.txManager, c.log),

		listAuditUC: auditUsecases.NewListAuditUseCase(r.auditRepo, c.log),

		authenticateUC: userUsecases.NewAuthenticateUseCase(r.userRepo, c.hasher, c.jwtSvc, c.loginRateLimiter, c.enforcer, c.log),
		createUserUC:   userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, r.auditRepo, c.enforcer, c.txManager, c.log),
		listUsersUC:    userUsecases.NewListUsersUseCase(r.userRepo, c.enforcer, c.log),
		setUserLockUC:  userUsecases.NewSetUserLockUseCase(r.userRepo, r.auditRepo, c.enforcer, c.txManager, c.log),
		assignRoleUC:   userUsecases.NewAssignRoleUseCase(r.userRepo, r.auditRepo, c.enforcer, c.txManager, c.log),
	}
}
