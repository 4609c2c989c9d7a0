package http

import (
	"lotledger/internal/domain/analysis"
	"lotledger/internal/domain/audit"
	"lotledger/internal/domain/catalog"
	"lotledger/internal/domain/lot"
	"lotledger/internal/domain/user"
	"lotledger/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	materialRepo catalog.MaterialRepository
	testRepo     catalog.StandardTestRepository
	profileRepo  catalog.TestProfileRepository
	lotRepo      lot.Repository
	analysisRepo analysis.Repository
	auditRepo    audit.Repository
	userRepo     user.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		materialRepo: repository.NewMaterialRepository(c.db, c.log),
		testRepo:     repository.NewStandardTestRepository(c.db, c.log),
		profileRepo:  repository.NewTestProfileRepository(c.db, c.log),
		lotRepo:      repository.NewLotRepository(c.db, c.log),
		analysisRepo: repository.NewAnalysisRepository(c.db, c.log),
		auditRepo:    repository.NewAuditRepository(c.db, c.log),
		userRepo:     repository.NewUserRepository(c.db, c.log),
	}
}
