package reference

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
	"github.com/rs/zerolog"
)

// DefaultSources are the reference spreadsheets looked up in the reference directory, most
// trusted first.
var DefaultSources = []string{
	"Fondi.xlsx",
	"Gestioni e Fogli.xlsx",
	"Provvigioni Fondi.xlsx",
	"Provvigioni Gestioni.xlsx",
	"Obbligazioni.xlsx",
}

// Row is the content of a reference row: raw values by canonical column.
type Row struct {
	ID     positions.ID
	Values map[string]string
}

// Source is a usable reference spreadsheet, reduced to its resolved columns.
type Source struct {
	Name string
	Rows []Row
}

// index returns the rows by identifier. Only the first row of an identifier is kept.
func (s Source) index() map[positions.ID]Row {
	idx := make(map[positions.ID]Row, len(s.Rows))
	for _, r := range s.Rows {
		if _, dup := idx[r.ID]; !dup {
			idx[r.ID] = r
		}
	}
	return idx
}

// NewSource reduces a reference grid, whose first row is the header, to its resolved columns.
// It returns false when the grid cannot contribute.
func NewSource(name string, g sheet.Grid) (Source, bool) {
	t := g.Table(0)
	m := Resolve(t.Header, t.Rows)
	if !m.Usable() {
		return Source{}, false
	}
	src := Source{Name: name}
	for i := range t.Rows {
		id := positions.NewID(t.Value(i, m.ID).Text)
		if id == "" {
			continue
		}
		values := make(map[string]string, len(m.Columns))
		for col, j := range m.Columns {
			values[col] = t.Value(i, j).Text
		}
		src.Rows = append(src.Rows, Row{ID: id, Values: values})
	}
	return src, true
}

// Load reads the reference spreadsheets 'names' from 'dir', in order.
//
// Missing, unreadable or unusable files are skipped: a portfolio can always be reviewed,
// with fewer attributes.
func Load(dir string, names []string, log zerolog.Logger) []Source {
	var srcs []Source
	for _, name := range names {
		path := filepath.Join(dir, name)
		g, err := sheet.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("source", name).Msg("reference source not found")
			continue
		case err != nil:
			log.Debug().Err(err).Str("source", name).Msg("reference source unreadable")
			continue
		}
		src, ok := NewSource(name, g)
		if !ok {
			log.Debug().Str("source", name).Msg("reference source has no identifier or attribute column")
			continue
		}
		log.Debug().Str("source", name).Int("rows", len(src.Rows)).Msg("reference source loaded")
		srcs = append(srcs, src)
	}
	return srcs
}
