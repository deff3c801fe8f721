package efficiency

import (
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
)

// LineStyle identifies a style running on a line.
type LineStyle struct {
	Line    string
	StyleID string
}

// WIPCalculator derives work-in-progress from the allow-listed operations only.
type WIPCalculator struct {
	operations map[string]struct{}
}

func NewWIPCalculator(operations []string) WIPCalculator {
	ops := make(map[string]struct{}, len(operations))
	for _, op := range operations {
		ops[op] = struct{}{}
	}
	return WIPCalculator{operations: ops}
}

func (c WIPCalculator) Counts(operation string) bool {
	_, ok := c.operations[operation]
	return ok
}

// ByLineStyle returns loaded minus unloaded per (line, style) over the given events.
// The result can be negative when more was unloaded than loaded in the window.
func (c WIPCalculator) ByLineStyle(events []production.ProductionEvent) map[LineStyle]int64 {
	wip := make(map[LineStyle]int64)
	for _, e := range events {
		if !c.Counts(e.Operation) {
			continue
		}
		wip[LineStyle{Line: e.Line, StyleID: e.StyleID}] += e.LoadedQty - e.UnloadedQty
	}
	return wip
}

// WIP returns the work-in-progress of a single style on a line.
func (c WIPCalculator) WIP(events []production.ProductionEvent, line, styleID string) int64 {
	var total int64
	for _, e := range events {
		if e.Line == line && e.StyleID == styleID && c.Counts(e.Operation) {
			total += e.LoadedQty - e.UnloadedQty
		}
	}
	return total
}
