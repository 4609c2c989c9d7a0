package permission

import (
	"fmt"

	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/logger"
)

// InitQualityPolicies seeds the role policies for the quality modules.
//
// Operators receive the warehouse-facing modules, analysts the laboratory
// ones, auditors read everything, and admins hold every permission including
// the correction engine and user management.
func InitQualityPolicies(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin: full access
		{constants.RoleAdmin, constants.ModuleCatalog, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleCatalog, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleInventory, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleInventory, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleSampling, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleSampling, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleLab, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleLab, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleCorrection, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleCorrection, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleAudit, constants.ActionRead},
		{constants.RoleAdmin, constants.ModuleUsers, constants.ActionWrite},
		{constants.RoleAdmin, constants.ModuleUsers, constants.ActionRead},

		// Operator: receiving and sampling
		{constants.RoleOperator, constants.ModuleCatalog, constants.ActionRead},
		{constants.RoleOperator, constants.ModuleInventory, constants.ActionWrite},
		{constants.RoleOperator, constants.ModuleInventory, constants.ActionRead},
		{constants.RoleOperator, constants.ModuleSampling, constants.ActionWrite},
		{constants.RoleOperator, constants.ModuleSampling, constants.ActionRead},

		// Analyst: laboratory plus catalog maintenance
		{constants.RoleAnalyst, constants.ModuleCatalog, constants.ActionWrite},
		{constants.RoleAnalyst, constants.ModuleCatalog, constants.ActionRead},
		{constants.RoleAnalyst, constants.ModuleInventory, constants.ActionRead},
		{constants.RoleAnalyst, constants.ModuleLab, constants.ActionWrite},
		{constants.RoleAnalyst, constants.ModuleLab, constants.ActionRead},

		// Auditor: read-only everywhere, including the trail
		{constants.RoleAuditor, constants.ModuleCatalog, constants.ActionRead},
		{constants.RoleAuditor, constants.ModuleInventory, constants.ActionRead},
		{constants.RoleAuditor, constants.ModuleSampling, constants.ActionRead},
		{constants.RoleAuditor, constants.ModuleLab, constants.ActionRead},
		{constants.RoleAuditor, constants.ModuleCorrection, constants.ActionRead},
		{constants.RoleAuditor, constants.ModuleAudit, constants.ActionRead},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add quality policy",
				"role", policy[0], "module", policy[1], "action", policy[2], "error", err)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("quality module policies initialized")
	return nil
}
