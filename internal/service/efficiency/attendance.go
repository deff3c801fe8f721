package efficiency

import (
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// Attendance compares rostered operators with the eligible operators who produced something.
type Attendance struct {
	Active  int
	Present int
}

// Pct is present over active, capped at 100.
func (a Attendance) Pct() float64 {
	return numeric.Clamp(numeric.Percent(float64(a.Present), float64(a.Active), 1), 0, 100)
}

func (a Attendance) Add(o Attendance) Attendance {
	return Attendance{Active: a.Active + o.Active, Present: a.Present + o.Present}
}

// AttendanceByLine counts active roster entries on the given shifts (all shifts when empty)
// and distinct eligible operators seen in events, per line.
func AttendanceByLine(events []production.ProductionEvent, roster []production.EmployeeRecord, shifts []production.Shift, hr HeadcountResolver) map[string]Attendance {
	inShift := shiftSet(shifts)
	out := make(map[string]Attendance)

	for _, emp := range roster {
		if !emp.Active || !inShift(emp.Shift) {
			continue
		}
		a := out[emp.Line]
		a.Active++
		out[emp.Line] = a
	}

	for line, present := range hr.ByLine(events) {
		a := out[line]
		a.Present = present
		out[line] = a
	}
	return out
}

func shiftSet(shifts []production.Shift) func(production.Shift) bool {
	if len(shifts) == 0 {
		return func(production.Shift) bool { return true }
	}
	set := make(map[production.Shift]struct{}, len(shifts))
	for _, s := range shifts {
		set[s] = struct{}{}
	}
	return func(s production.Shift) bool {
		_, ok := set[s]
		return ok
	}
}
