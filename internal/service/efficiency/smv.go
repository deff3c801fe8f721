package efficiency

import (
	"sort"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
)

// StandardMinutes is the resolved SMV and conversion factor for one style prefix.
type StandardMinutes struct {
	SMV              float64
	ConversionFactor float64
	Defaulted        bool
}

// SMVTable maps a style prefix to the standard minutes of its most recent applicable record.
type SMVTable struct {
	byPrefix map[string]StandardMinutes
	fallback StandardMinutes
}

// NewSMVTable resolves one record per style prefix. Records without an applicable date are
// ignored; among the rest the latest applicable date wins, and ties keep input order.
func NewSMVTable(records []production.StandardMinuteRecord, policy Policy) SMVTable {
	dated := make([]production.StandardMinuteRecord, 0, len(records))
	for _, r := range records {
		if r.ApplicableDate != nil {
			dated = append(dated, r)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].ApplicableDate.After(*dated[j].ApplicableDate)
	})

	table := SMVTable{
		byPrefix: make(map[string]StandardMinutes, len(dated)),
		fallback: StandardMinutes{
			SMV:              policy.DefaultSMV,
			ConversionFactor: policy.DefaultConversion,
			Defaulted:        true,
		},
	}

	for _, r := range dated {
		prefix := StylePrefix(r.StyleID)
		if _, seen := table.byPrefix[prefix]; seen {
			continue
		}

		// Zero values in operationinformation mean "not filled in".
		sm := StandardMinutes{SMV: r.TotalSMV, ConversionFactor: r.ConversionFactor}
		if sm.SMV <= 0 {
			sm.SMV = policy.DefaultSMV
		}
		if sm.ConversionFactor <= 0 {
			sm.ConversionFactor = policy.DefaultConversion
		}
		table.byPrefix[prefix] = sm
	}

	return table
}

// Lookup returns the standard minutes for a style prefix, or the policy defaults.
func (t SMVTable) Lookup(prefix string) StandardMinutes {
	if sm, ok := t.byPrefix[prefix]; ok {
		return sm
	}
	return t.fallback
}

func (t SMVTable) Len() int {
	return len(t.byPrefix)
}
