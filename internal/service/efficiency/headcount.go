package efficiency

import (
	"strings"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
)

// GroupKey identifies one efficiency group.
type GroupKey struct {
	Date    string // production.DateLayout
	Line    string
	StyleID string
}

func keyOf(e production.ProductionEvent) GroupKey {
	return GroupKey{Date: e.Date.Format(production.DateLayout), Line: e.Line, StyleID: e.StyleID}
}

// HeadcountResolver counts distinct eligible operators. Eligibility is a textual ID prefix.
type HeadcountResolver struct {
	prefix string
}

func NewHeadcountResolver(prefix string) HeadcountResolver {
	return HeadcountResolver{prefix: prefix}
}

func (h HeadcountResolver) Eligible(operatorID string) bool {
	return operatorID != "" && strings.HasPrefix(operatorID, h.prefix)
}

// ByGroup returns the distinct eligible operators per (date, line, style) across all operations.
func (h HeadcountResolver) ByGroup(events []production.ProductionEvent) map[GroupKey]int {
	seen := make(map[GroupKey]map[string]struct{})
	for _, e := range events {
		if !h.Eligible(e.OperatorID) {
			continue
		}
		k := keyOf(e)
		if seen[k] == nil {
			seen[k] = make(map[string]struct{})
		}
		seen[k][e.OperatorID] = struct{}{}
	}

	counts := make(map[GroupKey]int, len(seen))
	for k, ops := range seen {
		counts[k] = len(ops)
	}
	return counts
}

// Headcount returns the distinct eligible operators of one group; zero when none qualify.
func (h HeadcountResolver) Headcount(events []production.ProductionEvent, key GroupKey) int {
	return h.ByGroup(filterGroup(events, key))[key]
}

// ByLine returns the distinct eligible operators seen per line.
func (h HeadcountResolver) ByLine(events []production.ProductionEvent) map[string]int {
	seen := make(map[string]map[string]struct{})
	for _, e := range events {
		if !h.Eligible(e.OperatorID) {
			continue
		}
		if seen[e.Line] == nil {
			seen[e.Line] = make(map[string]struct{})
		}
		seen[e.Line][e.OperatorID] = struct{}{}
	}

	counts := make(map[string]int, len(seen))
	for line, ops := range seen {
		counts[line] = len(ops)
	}
	return counts
}

func filterGroup(events []production.ProductionEvent, key GroupKey) []production.ProductionEvent {
	var out []production.ProductionEvent
	for _, e := range events {
		if keyOf(e) == key {
			out = append(out, e)
		}
	}
	return out
}
