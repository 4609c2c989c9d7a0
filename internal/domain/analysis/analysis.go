package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	vo "lotledger/internal/domain/analysis/value_objects"
	"lotledger/internal/shared/errors"
)

// AnalysisResult is the laboratory record for one lot. The result map is
// keyed by test name and captured against the material's test profile at
// submission time; the profile may change later without touching records
// already written.
type AnalysisResult struct {
	id               uint
	lotID            uint
	analysisNumber   string
	analyst          string
	results          map[string]string
	conclusion       vo.Conclusion
	bibliographicRef string
	reanalysisDate   *time.Time
	observations     string
	analyzedAt       time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewAnalysisResult records a completed analysis. requiredFields is the
// material's test profile at submission time and must be non-empty, but the
// result map is not reconciled against it: partial analyses happen
// operationally, so absent or blank values stay absent or blank and extra
// keys are kept as supplied.
func NewAnalysisResult(
	lotID uint,
	analyst string,
	requiredFields []string,
	results map[string]string,
	conclusion string,
	bibliographicRef string,
	reanalysisDate *time.Time,
	observations string,
	numberGenerator func() (string, error),
) (*AnalysisResult, error) {
	if lotID == 0 {
		return nil, errors.NewValidationError("lot is required")
	}
	if strings.TrimSpace(analyst) == "" {
		return nil, errors.NewValidationError("analyst is required")
	}
	if len(requiredFields) == 0 {
		return nil, errors.NewValidationError("material has no test profile; nothing to analyze")
	}

	parsed, err := vo.ParseConclusion(conclusion)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := numberGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis number: %w", err)
	}

	copied := make(map[string]string, len(results))
	for k, v := range results {
		copied[k] = strings.TrimSpace(v)
	}

	now := time.Now()
	return &AnalysisResult{
		lotID:            lotID,
		analysisNumber:   number,
		analyst:          strings.TrimSpace(analyst),
		results:          copied,
		conclusion:       parsed,
		bibliographicRef: strings.TrimSpace(bibliographicRef),
		reanalysisDate:   reanalysisDate,
		observations:     strings.TrimSpace(observations),
		analyzedAt:       now,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructAnalysisResult rebuilds a record from persistence.
func ReconstructAnalysisResult(
	id, lotID uint,
	analysisNumber, analyst string,
	results map[string]string,
	conclusion vo.Conclusion,
	bibliographicRef string,
	reanalysisDate *time.Time,
	observations string,
	analyzedAt, createdAt, updatedAt time.Time,
) (*AnalysisResult, error) {
	if id == 0 {
		return nil, fmt.Errorf("analysis ID cannot be zero")
	}
	if results == nil {
		results = map[string]string{}
	}
	return &AnalysisResult{
		id:               id,
		lotID:            lotID,
		analysisNumber:   analysisNumber,
		analyst:          analyst,
		results:          results,
		conclusion:       conclusion,
		bibliographicRef: bibliographicRef,
		reanalysisDate:   reanalysisDate,
		observations:     observations,
		analyzedAt:       analyzedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (a *AnalysisResult) ID() uint                   { return a.id }
func (a *AnalysisResult) LotID() uint                { return a.lotID }
func (a *AnalysisResult) AnalysisNumber() string     { return a.analysisNumber }
func (a *AnalysisResult) Analyst() string            { return a.analyst }
func (a *AnalysisResult) Conclusion() vo.Conclusion  { return a.conclusion }
func (a *AnalysisResult) BibliographicRef() string   { return a.bibliographicRef }
func (a *AnalysisResult) ReanalysisDate() *time.Time { return a.reanalysisDate }
func (a *AnalysisResult) Observations() string       { return a.observations }
func (a *AnalysisResult) AnalyzedAt() time.Time      { return a.analyzedAt }
func (a *AnalysisResult) CreatedAt() time.Time       { return a.createdAt }
func (a *AnalysisResult) UpdatedAt() time.Time       { return a.updatedAt }

// Results returns a copy of the result map.
func (a *AnalysisResult) Results() map[string]string {
	copied := make(map[string]string, len(a.results))
	for k, v := range a.results {
		copied[k] = v
	}
	return copied
}

// SetID sets the analysis ID (only for persistence layer use)
func (a *AnalysisResult) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("analysis ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("analysis ID cannot be zero")
	}
	a.id = id
	return nil
}

// Correction carries the fields a supervisor may amend on a finished
// analysis. Nil pointers and absent result keys mean "leave unchanged".
type Correction struct {
	Results          map[string]string
	Conclusion       *string
	BibliographicRef *string
	Observations     *string
	ReanalysisDate   *time.Time
}

// ApplyCorrection amends the record and returns one change descriptor per
// field that actually changed, plus whether the conclusion flipped (the
// caller cascades that onto the lot status). Result keys are diffed
// individually; a correction may also add a key the original submission
// did not carry.
func (a *AnalysisResult) ApplyCorrection(c Correction) ([]string, bool, error) {
	var changes []string

	keys := make([]string, 0, len(c.Results))
	for k := range c.Results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		newVal := strings.TrimSpace(c.Results[k])
		oldVal, existed := a.results[k]
		if existed && oldVal == newVal {
			continue
		}
		if !existed {
			changes = append(changes, fmt.Sprintf("result[%s]: (none) -> %s", k, newVal))
		} else {
			changes = append(changes, fmt.Sprintf("result[%s]: %s -> %s", k, oldVal, newVal))
		}
		a.results[k] = newVal
	}

	conclusionChanged := false
	if c.Conclusion != nil {
		parsed, err := vo.ParseConclusion(*c.Conclusion)
		if err != nil {
			return nil, false, errors.NewValidationError(err.Error())
		}
		if parsed != a.conclusion {
			changes = append(changes, fmt.Sprintf("conclusion: %s -> %s", a.conclusion, parsed))
			a.conclusion = parsed
			conclusionChanged = true
		}
	}

	if c.BibliographicRef != nil {
		newRef := strings.TrimSpace(*c.BibliographicRef)
		if newRef != a.bibliographicRef {
			changes = append(changes, fmt.Sprintf("bibliographic reference: %s -> %s", a.bibliographicRef, newRef))
			a.bibliographicRef = newRef
		}
	}

	if c.Observations != nil {
		newObs := strings.TrimSpace(*c.Observations)
		if newObs != a.observations {
			changes = append(changes, fmt.Sprintf("observations: %s -> %s", a.observations, newObs))
			a.observations = newObs
		}
	}

	if c.ReanalysisDate != nil {
		old := "(none)"
		if a.reanalysisDate != nil {
			old = a.reanalysisDate.Format("2006-01-02")
		}
		updated := c.ReanalysisDate.Format("2006-01-02")
		if old != updated {
			changes = append(changes, fmt.Sprintf("reanalysis date: %s -> %s", old, updated))
			d := *c.ReanalysisDate
			a.reanalysisDate = &d
		}
	}

	if len(changes) > 0 {
		a.updatedAt = time.Now()
	}
	return changes, conclusionChanged, nil
}
