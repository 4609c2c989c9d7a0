package usecases

import (
	"context"
	"time"
)

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context, where repositories pick it up.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CertificateLine is one test row on a certificate of analysis.
type CertificateLine struct {
	TestName      string
	Specification string
	Result        string
}

// CertificateData is everything the renderer needs for one certificate.
type CertificateData struct {
	AnalysisNumber   string
	MaterialCode     string
	MaterialName     string
	InternalLot      string
	VendorLot        string
	Manufacturer     string
	Supplier         string
	ExpiryDate       time.Time
	Analyst          string
	Conclusion       string
	AnalyzedAt       time.Time
	BibliographicRef string
	ReanalysisDate   *time.Time
	Observations     string
	Lines            []CertificateLine
}

// CertificateRenderer writes a certificate of analysis document and returns
// the path it was written to. Rendering happens after the analysis is
// durable; a renderer failure must never roll the record back.
type CertificateRenderer interface {
	Render(ctx context.Context, data *CertificateData) (string, error)
}
