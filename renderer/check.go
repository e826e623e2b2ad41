package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/positions"
	md "github.com/nao1215/markdown"
)

// CheckMarkdown renders the structural report of an analysis of 'file'.
func CheckMarkdown(file string, a *positions.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Check of " + file)
	weights := "weights sum to " + a.Summary.WeightSum.String()
	if !a.Summary.WeightsOK {
		weights = md.Bold(weights)
	}
	doc.BulletList(
		fmt.Sprintf("read in %s mode", a.Mode),
		fmt.Sprintf("%d positions", len(a.Positions)),
		weights,
		fmt.Sprintf("%d reference sources used", len(a.Sources)),
	)

	var rows [][]string
	for _, p := range a.Positions {
		if err := p.ID.Check(); err != nil {
			rows = append(rows, []string{p.ID.String(), escapeCell(p.Name), err.Error()})
		}
	}
	doc.H2("Identifiers")
	if len(rows) == 0 {
		doc.PlainText("All identifiers are valid ISINs.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"ISIN", "Name", "Problem"},
		Rows:   rows,
	})
	return doc.String()
}
