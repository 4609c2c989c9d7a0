package dto

import (
	"time"

	"lotledger/internal/domain/analysis"
)

// RequiredFieldResponse is one line of the result form an analyst must fill
// in, straight from the material's test profile.
type RequiredFieldResponse struct {
	TestName      string `json:"test_name"`
	Specification string `json:"specification"`
}

// BeginAnalysisResponse is the form the laboratory works against for a
// sampled lot.
type BeginAnalysisResponse struct {
	LotID          uint                    `json:"lot_id"`
	InternalLot    string                  `json:"internal_lot"`
	MaterialCode   string                  `json:"material_code"`
	MaterialName   string                  `json:"material_name"`
	RequiredFields []RequiredFieldResponse `json:"required_fields"`
}

// AnalysisResponse is the API shape of a finished analysis.
type AnalysisResponse struct {
	ID               uint              `json:"id"`
	LotID            uint              `json:"lot_id"`
	AnalysisNumber   string            `json:"analysis_number"`
	Analyst          string            `json:"analyst"`
	Results          map[string]string `json:"results"`
	Conclusion       string            `json:"conclusion"`
	BibliographicRef string            `json:"bibliographic_ref,omitempty"`
	ReanalysisDate   *time.Time        `json:"reanalysis_date,omitempty"`
	Observations     string            `json:"observations,omitempty"`
	AnalyzedAt       time.Time         `json:"analyzed_at"`
}

// SubmitAnalysisResponse bundles the stored record with the certificate
// outcome. CertificatePath is empty when rendering failed; the analysis
// itself is already durable by then.
type SubmitAnalysisResponse struct {
	Analysis        *AnalysisResponse `json:"analysis"`
	LotStatus       string            `json:"lot_status"`
	CertificatePath string            `json:"certificate_path,omitempty"`
}

// AnalysisToResponse converts a domain analysis record.
func AnalysisToResponse(a *analysis.AnalysisResult) *AnalysisResponse {
	return &AnalysisResponse{
		ID:               a.ID(),
		LotID:            a.LotID(),
		AnalysisNumber:   a.AnalysisNumber(),
		Analyst:          a.Analyst(),
		Results:          a.Results(),
		Conclusion:       a.Conclusion().String(),
		BibliographicRef: a.BibliographicRef(),
		ReanalysisDate:   a.ReanalysisDate(),
		Observations:     a.Observations(),
		AnalyzedAt:       a.AnalyzedAt(),
	}
}

// AnalysesToResponse converts a slice of domain analysis records.
func AnalysesToResponse(records []*analysis.AnalysisResult) []*AnalysisResponse {
	out := make([]*AnalysisResponse, len(records))
	for i, a := range records {
		out[i] = AnalysisToResponse(a)
	}
	return out
}
