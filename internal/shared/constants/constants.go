package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers              = "users"
	TableMaterials          = "materials"
	TableStandardTests      = "standard_tests"
	TableTestProfileEntries = "test_profile_entries"
	TableLots               = "lots"
	TableAnalysisResults    = "analysis_results"
	TableAuditTrail         = "audit_trail"

	// Module identifiers consulted by the access policy. These are the
	// casbin resources; roles are granted (module, action) pairs.
	ModuleCatalog    = "catalog"
	ModuleInventory  = "inventory"
	ModuleSampling   = "sampling"
	ModuleLab        = "lab"
	ModuleCorrection = "correction"
	ModuleAudit      = "audit"
	ModuleUsers      = "users"

	// Policy actions
	ActionRead  = "read"
	ActionWrite = "write"

	// Built-in role names
	RoleAdmin    = "ADMIN"
	RoleAnalyst  = "ANALYST"
	RoleOperator = "OPERATOR"
	RoleAuditor  = "AUDITOR"

	// MinJustificationLen is the floor for ALCOA correction justifications.
	// Anything shorter is rejected before any write.
	MinJustificationLen = 5

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
