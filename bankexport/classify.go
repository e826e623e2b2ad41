package bankexport

import (
	"strings"

	"github.com/etnz/positions"
)

// Rule assigns Type to the rows it matches.
type Rule struct {
	Type  positions.InstrumentType
	Name  string
	Match func(SectionedRow) bool
}

// Rules returns the classification rules, by decreasing priority.
func Rules() []Rule {
	return []Rule{
		{positions.Fund, "fund section or fund name", func(r SectionedRow) bool {
			return inSection(r, "FONDI") || nameContains(r, "FUND", "FONDITALIA")
		}},
		{positions.Bond, "bond name or sovereign issuer", func(r SectionedRow) bool {
			issuer := strings.ToUpper(r.Issuer())
			return nameContains(r, "BTP", "BOND", "NOTE", "OBBLIG", "TLX", "XS", "EUROBOND") ||
				issuer == "REPUBLIC OF ITALY" || issuer == "MIN FIN"
		}},
		{positions.Equity, "company name with an ISIN", func(r SectionedRow) bool {
			id := string(r.ID())
			return len(id) == 12 && isUpper(id[0]) && isUpper(id[1]) &&
				nameContains(r, " INC", " CORP", " PLC", " SPA")
		}},
		{positions.Management, "management section or name", func(r SectionedRow) bool {
			return inSection(r, "GESTIONI", "GESTIONE") || nameContains(r, "GP", "GESTIONE")
		}},
	}
}

// Classify returns the type of the first rule matching 'r', or Other.
func Classify(r SectionedRow) positions.InstrumentType {
	for _, rule := range Rules() {
		if rule.Match(r) {
			return rule.Type
		}
	}
	return positions.Other
}

func inSection(r SectionedRow, sections ...string) bool {
	for _, s := range sections {
		if strings.EqualFold(r.Section, s) {
			return true
		}
	}
	return false
}

func nameContains(r SectionedRow, keywords ...string) bool {
	name := strings.ToUpper(r.Name())
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }
