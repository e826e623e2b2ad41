// Package pipeline chains reading, normalization, reference merge and analysis of a portfolio
// spreadsheet. It is shared by the command line and the HTTP service.
package pipeline

import (
	"fmt"
	"io"

	"github.com/etnz/positions"
	"github.com/etnz/positions/reference"
	"github.com/etnz/positions/sheet"
	"github.com/etnz/positions/bankexport"
	"github.com/rs/zerolog"
)

// Mode selects how the primary spreadsheet is read.
type Mode string

const (
	Auto      Mode = "auto"      // canonical when possible, vendor otherwise
	Canonical Mode = "canonical" // canonical columns on the first row
	Vendor    Mode = "vendor"    // vendor export
)

// ParseMode validates a mode name. The empty name is Auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return Auto, nil
	case Auto, Canonical, Vendor:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q, expected auto, canonical or vendor", s)
	}
}

// Runner runs the pipeline with a fixed configuration. Its zero value reads in Auto mode
// without reference data.
type Runner struct {
	Log          zerolog.Logger
	Mode         Mode
	ReferenceDir string   // reference spreadsheets directory, none when empty
	Sources      []string // reference file names, reference.DefaultSources when nil
}

// Run normalizes and analyzes the positions of 'g'.
func (r *Runner) Run(g sheet.Grid) (*positions.Analysis, error) {
	mode, ps, err := r.read(g)
	if err != nil {
		return nil, err
	}
	r.Log.Debug().Str("mode", string(mode)).Int("positions", len(ps)).Msg("positions read")

	var used []string
	if r.ReferenceDir != "" {
		names := r.Sources
		if names == nil {
			names = reference.DefaultSources
		}
		srcs := reference.Load(r.ReferenceDir, names, r.Log)
		for _, c := range reference.Contributions(ps, srcs) {
			r.Log.Debug().Str("source", c.Source).Int("positions", c.Positions).Int("values", c.Values).Msg("reference merged")
			used = append(used, c.Source)
		}
		ps = reference.Merge(ps, srcs)
	}

	a := positions.NewAnalysis(string(mode), ps, used)
	r.Log.Info().Str("mode", string(mode)).Int("positions", len(ps)).Strs("sources", used).Msg("portfolio analyzed")
	return a, nil
}

// RunReader runs the pipeline on an xlsx stream.
func (r *Runner) RunReader(in io.Reader) (*positions.Analysis, error) {
	g, err := sheet.Read(in)
	if err != nil {
		return nil, err
	}
	return r.Run(g)
}

// RunFile runs the pipeline on the xlsx file at 'path'.
func (r *Runner) RunFile(path string) (*positions.Analysis, error) {
	g, err := sheet.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Run(g)
}

// read returns the positions of 'g' and the mode actually used.
func (r *Runner) read(g sheet.Grid) (Mode, []positions.Position, error) {
	mode := r.Mode
	if mode == "" || mode == Auto {
		mode = Detect(g)
	}
	switch mode {
	case Vendor:
		ps, err := bankexport.Parse(g)
		return mode, ps, err
	default:
		ps, err := positions.ImportCanonical(g)
		return Canonical, ps, err
	}
}

// Detect returns Canonical when the first row holds every canonical column, Vendor when the
// vendor header is found, and Canonical otherwise so that the missing columns get reported.
func Detect(g sheet.Grid) Mode {
	if positions.ValidateSchema(g.Labels(0)) == nil {
		return Canonical
	}
	if _, found := bankexport.FindHeader(g); found {
		return Vendor
	}
	return Canonical
}
