package receipt

import (
	"bytes"
	"fmt"

	"tourvia/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	brandName     = "Tourvia Travel & Tours"
	watermarkText = "TOURVIA"
)

// PDFRenderer renders booking confirmations with gofpdf. Every page carries
// the branded header, the diagonal watermark and the page-numbered footer;
// the details table flows across pages as needed.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(b models.Booking, tourName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ArtifactName(b.ConfirmationCode), false)
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(true, 25)

	pdf.SetHeaderFunc(func() {
		drawWatermark(pdf)

		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(0, 10, brandName, "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 6, "Booking Confirmation", "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	if tourName != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(0, 8, tourName, "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "", 10)
	for i, row := range BuildRows(b) {
		fill := i%2 == 0
		pdf.SetFillColor(245, 245, 245)
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(60, 8, row.Label, "1", 0, "L", fill, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(130, 8, row.Value, "1", 1, "L", fill, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, 5, "Please present this confirmation together with a valid ID on the day of your tour. Your booking is pending until payment has been verified.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: failed to render confirmation %s: %w", b.ConfirmationCode, err)
	}
	return buf.Bytes(), nil
}

// drawWatermark lays the semi-transparent diagonal brand marks across the
// current page. Invoked from the header func so it repeats on overflow pages.
func drawWatermark(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 50)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetAlpha(0.08, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 148)
	for y := 40.0; y <= 260; y += 70 {
		pdf.Text(20, y, watermarkText)
	}
	pdf.TransformEnd()
	pdf.SetAlpha(1.0, "Normal")
}
