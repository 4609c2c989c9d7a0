package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"lotledger/internal/domain/analysis"
	vo "lotledger/internal/domain/analysis/value_objects"
	"lotledger/internal/infrastructure/persistence/models"
)

// AnalysisMapper handles the conversion between AnalysisResult domain entities and persistence models.
type AnalysisMapper interface {
	ToModel(a *analysis.AnalysisResult) *models.AnalysisResultModel
	ToDomain(model *models.AnalysisResultModel) (*analysis.AnalysisResult, error)
}

type AnalysisMapperImpl struct{}

func NewAnalysisMapper() AnalysisMapper {
	return &AnalysisMapperImpl{}
}

func (mp *AnalysisMapperImpl) ToModel(a *analysis.AnalysisResult) *models.AnalysisResultModel {
	results := datatypes.JSONMap{}
	for name, value := range a.Results() {
		results[name] = value
	}

	model := &models.AnalysisResultModel{
		ID:               a.ID(),
		LotID:            a.LotID(),
		AnalysisNumber:   a.AnalysisNumber(),
		Analyst:          a.Analyst(),
		Results:          results,
		Conclusion:       a.Conclusion().String(),
		BibliographicRef: a.BibliographicRef(),
		Observations:     a.Observations(),
		AnalyzedAt:       timeToMillis(a.AnalyzedAt()),
		CreatedAt:        timeToMillis(a.CreatedAt()),
		UpdatedAt:        timeToMillis(a.UpdatedAt()),
	}

	if a.ReanalysisDate() != nil {
		ms := timeToMillis(*a.ReanalysisDate())
		model.ReanalysisDate = &ms
	}

	return model
}

func (mp *AnalysisMapperImpl) ToDomain(model *models.AnalysisResultModel) (*analysis.AnalysisResult, error) {
	conclusion, err := vo.ParseConclusion(model.Conclusion)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct analysis (id=%d): %w", model.ID, err)
	}

	results := make(map[string]string, len(model.Results))
	for name, value := range model.Results {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("failed to reconstruct analysis (id=%d): result %q is not a string", model.ID, name)
		}
		results[name] = str
	}

	var reanalysisDate *time.Time
	if model.ReanalysisDate != nil {
		t := millisToTime(*model.ReanalysisDate)
		reanalysisDate = &t
	}

	a, err := analysis.ReconstructAnalysisResult(
		model.ID,
		model.LotID,
		model.AnalysisNumber,
		model.Analyst,
		results,
		conclusion,
		model.BibliographicRef,
		reanalysisDate,
		model.Observations,
		millisToTime(model.AnalyzedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct analysis (id=%d): %w", model.ID, err)
	}
	return a, nil
}
