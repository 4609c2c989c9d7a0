package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"lotledger/internal/application/lab/usecases"
	"lotledger/internal/shared/logger"
)

// PDFCertificateRenderer writes certificates of analysis as A4 PDFs into a
// configured directory. The file name is the analysis number, so reprints
// overwrite the previous copy instead of accumulating.
type PDFCertificateRenderer struct {
	dir    string
	logger logger.Interface
}

func NewPDFCertificateRenderer(dir string, logger logger.Interface) *PDFCertificateRenderer {
	return &PDFCertificateRenderer{dir: dir, logger: logger}
}

func (r *PDFCertificateRenderer) Render(ctx context.Context, data *usecases.CertificateData) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create certificate directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Certificate of Analysis %s", data.AnalysisNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "CERTIFICATE OF ANALYSIS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Analysis No. %s", data.AnalysisNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.field(pdf, "Material", fmt.Sprintf("%s (%s)", data.MaterialName, data.MaterialCode))
	r.field(pdf, "Internal lot", data.InternalLot)
	r.field(pdf, "Vendor lot", data.VendorLot)
	r.field(pdf, "Manufacturer", data.Manufacturer)
	if data.Supplier != "" {
		r.field(pdf, "Supplier", data.Supplier)
	}
	r.field(pdf, "Expiry date", data.ExpiryDate.Format("2006-01-02"))
	if data.ReanalysisDate != nil {
		r.field(pdf, "Reanalysis date", data.ReanalysisDate.Format("2006-01-02"))
	}
	if data.BibliographicRef != "" {
		r.field(pdf, "Reference", data.BibliographicRef)
	}
	pdf.Ln(4)

	// Results table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Test", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, "Specification", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Result", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range data.Lines {
		pdf.CellFormat(70, 8, line.TestName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, line.Specification, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, line.Result, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Conclusion: %s", data.Conclusion), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if data.Observations != "" {
		pdf.MultiCell(0, 6, fmt.Sprintf("Observations: %s", data.Observations), "", "L", false)
	}
	pdf.Ln(4)
	r.field(pdf, "Analyst", data.Analyst)
	r.field(pdf, "Analyzed at", data.AnalyzedAt.Format("2006-01-02 15:04"))

	path := filepath.Join(r.dir, fmt.Sprintf("%s.pdf", data.AnalysisNumber))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write certificate: %w", err)
	}

	r.logger.Infow("certificate rendered", "analysis_number", data.AnalysisNumber, "path", path)
	return path, nil
}

func (r *PDFCertificateRenderer) field(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
