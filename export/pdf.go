package export

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/positions"
	"github.com/go-pdf/fpdf"
)

// WritePDF writes the synthesis of 'a' dated 'now': totals, estimated margin and cost, and
// the number of positions raised by each review flag.
func WritePDF(w io.Writer, a *positions.Analysis, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetCreationDate(now)
	pdf.SetTitle("Analisi Portafoglio", true)
	// core fonts are cp1252 encoded.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr("Analisi Portafoglio – Sintesi"))
	pdf.Ln(10)

	s := a.Summary
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		"Data: " + now.Format("2006-01-02 15:04"),
		"Totale controvalore: " + s.Total.String(),
		"Margine annuo stimato: " + s.Margin.String(),
		"Costi annui stimati: " + s.Cost.String(),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Bandierine di revisione")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, f := range s.Flags {
		pdf.SetX(22)
		pdf.Cell(0, 5, tr(fmt.Sprintf("- %s: %d strumenti", f.Name, len(f.Positions))))
		pdf.Ln(5)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("cannot write pdf: %w", err)
	}
	return nil
}
