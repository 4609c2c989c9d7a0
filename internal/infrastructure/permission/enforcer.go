package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"lotledger/internal/shared/logger"
)

// Enforcer wraps casbin with the gorm adapter. Policies are (role, module,
// action) triples; every authenticated request is checked against them.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Enforce checks whether the given role may perform action on module.
func (e *Enforcer) Enforce(role string, module string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, module, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "module", module, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, module string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddPolicy(role, module, action)
	if err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) RemovePolicy(role string, module string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemovePolicy(role, module, action)
	if err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// ModulesFor returns the distinct modules the role holds any permission on,
// in policy order. The login response exposes this so clients can build
// their navigation without a second round trip.
func (e *Enforcer) ModulesFor(role string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	policies, err := e.enforcer.GetFilteredPolicy(0, role)
	if err != nil {
		e.logger.Errorw("failed to read policies for role", "role", role, "error", err)
		return nil
	}

	seen := make(map[string]bool)
	var modules []string
	for _, p := range policies {
		if len(p) < 2 || seen[p[1]] {
			continue
		}
		seen[p[1]] = true
		modules = append(modules, p[1])
	}
	return modules
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
