package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/positions"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary of an analysis: totals, allocations and review flags.
func SummaryMarkdown(a *positions.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	s := a.Summary

	doc.H1("Portfolio Analysis")
	doc.PlainText(fmt.Sprintf("%d positions read in %s mode.", s.Count, a.Mode))
	if len(a.Sources) > 0 {
		doc.PlainText("Reference data from:")
		doc.BulletList(a.Sources...)
	} else {
		doc.PlainText("No reference data used.")
	}

	weights := s.WeightSum.String()
	if !s.WeightsOK {
		weights = md.Bold(weights + " (does not sum to 100%)")
	}
	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header:    []string{"", "Value"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Market Value", md.Bold(s.Total.String())},
			{"Weights", weights},
			{"Estimated Annual Margin", s.Margin.String()},
			{"Estimated Annual Cost", s.Cost.String()},
		},
	})

	doc.H2("Allocations")
	for _, b := range []struct {
		title  string
		allocs []positions.Allocation
	}{
		{"By Type", s.ByType},
		{"By Area", s.ByArea},
		{"By Category", s.ByCategory},
		{"By Sector", s.BySector},
	} {
		if len(b.allocs) == 0 {
			continue
		}
		doc.H3(b.title)
		doc.Table(allocationTable(b.allocs))
	}

	doc.H2("Review Flags")
	flags := positions.Flags()
	rows := make([][]string, len(s.Flags))
	for i, f := range s.Flags {
		rows[i] = []string{f.Name, flags[i].Description, fmt.Sprint(len(f.Positions))}
	}
	doc.Table(md.TableSet{
		Header:    []string{"Flag", "Description", "Positions"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Rows:      rows,
	})

	return doc.String()
}

func allocationTable(allocs []positions.Allocation) md.TableSet {
	rows := make([][]string, len(allocs))
	for i, a := range allocs {
		rows[i] = []string{escapeCell(label(a.Label)), a.Value.String(), a.Weight.String()}
	}
	return md.TableSet{
		Header:    []string{"", "Market Value", "Weight"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Rows:      rows,
	}
}
