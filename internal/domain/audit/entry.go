package audit

import (
	"fmt"
	"strings"
	"time"

	"lotledger/internal/shared/errors"
)

// Action identifies what kind of event an audit entry records. The set is
// closed: new kinds are added here, never free-typed by callers.
type Action string

const (
	ActionCreateMaterial Action = "CREATE_MATERIAL"
	ActionEditMaterial   Action = "EDIT_MATERIAL"
	ActionProfileChange  Action = "PROFILE_CHANGE"
	ActionReceipt        Action = "RECEIPT"
	ActionSampling       Action = "SAMPLING"
	ActionLabRelease     Action = "LAB_RELEASE"
	ActionCorrection     Action = "CORRECTION"
	ActionCreateUser     Action = "CREATE_USER"
	ActionEditUser       Action = "EDIT_USER"
)

// ValidActions lists every recognized audit action.
var ValidActions = []Action{
	ActionCreateMaterial,
	ActionEditMaterial,
	ActionProfileChange,
	ActionReceipt,
	ActionSampling,
	ActionLabRelease,
	ActionCorrection,
	ActionCreateUser,
	ActionEditUser,
}

// ParseAction validates an action string (used when filtering listings).
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range ValidActions {
		if a == valid {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown audit action: %s", s)
}

func (a Action) String() string { return string(a) }

// Entry is one immutable line of the audit trail. Entries are only ever
// appended; there is no update or delete path anywhere in the system.
type Entry struct {
	id        uint
	actor     string
	action    Action
	detail    string
	createdAt time.Time
}

// NewEntry creates an audit entry stamped with the current time.
func NewEntry(actor string, action Action, detail string) (*Entry, error) {
	if strings.TrimSpace(actor) == "" {
		return nil, errors.NewValidationError("audit actor is required")
	}
	if _, err := ParseAction(string(action)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(detail) == "" {
		return nil, errors.NewValidationError("audit detail is required")
	}

	return &Entry{
		actor:     strings.TrimSpace(actor),
		action:    action,
		detail:    strings.TrimSpace(detail),
		createdAt: time.Now(),
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(id uint, actor string, action Action, detail string, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}
	return &Entry{
		id:        id,
		actor:     actor,
		action:    action,
		detail:    detail,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) Actor() string        { return e.actor }
func (e *Entry) Action() Action       { return e.action }
func (e *Entry) Detail() string       { return e.detail }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// SetID sets the entry ID (only for persistence layer use)
func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit entry ID cannot be zero")
	}
	e.id = id
	return nil
}
