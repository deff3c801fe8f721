package efficiency

import (
	"github.com/hangerline/hangerline-backend-go/internal/config"
)

// Policy holds the business constants the engine computes with.
type Policy struct {
	EligibleIDPrefix  string   // operators counted in headcount
	ShiftMinutes      float64  // available minutes per operator per shift
	HeadcountFloor    int      // headcount used when fewer operators were seen
	CapPct            float64  // upper bound for any efficiency percentage
	DefaultSMV        float64  // used when a style has no standard-minute record
	DefaultConversion float64
	WIPOperations     []string // operations whose quantities define WIP
}

func DefaultPolicy() Policy {
	return Policy{
		EligibleIDPrefix:  "10613",
		ShiftMinutes:      480,
		HeadcountFloor:    1,
		CapPct:            200,
		DefaultSMV:        1.5,
		DefaultConversion: 1.0,
		WIPOperations:     []string{"Loading/Panel Segregation", "Garment Insert in Poly Bag & Close"},
	}
}

func PolicyFromConfig(cfg config.EfficiencyConfig) Policy {
	return Policy{
		EligibleIDPrefix:  cfg.EligibleIDPrefix,
		ShiftMinutes:      cfg.ShiftMinutes,
		HeadcountFloor:    cfg.HeadcountFloor,
		CapPct:            cfg.CapPct,
		DefaultSMV:        cfg.DefaultSMV,
		DefaultConversion: cfg.DefaultConversion,
		WIPOperations:     append([]string(nil), cfg.WIPOperations...),
	}
}
