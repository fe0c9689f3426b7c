package scc

// Problem is one fully assembled scheduling problem instance.
//
// A Problem owns its maps and slices outright: the loader builds a fresh
// value per instance and hands it off to the consumer, so instances share no
// mutable state with each other or with the configuration they were built
// from. Consumers treat the contents as read-only.
type Problem struct {
	// Name is the generated instance name (prefix + "_" + zero-padded index).
	Name string `json:"name"`

	// StageSeq is the ordered list of stage ids; order defines routing order.
	StageSeq []string `json:"stage_seq"`

	// StageMachines maps a stage id to the machine ids belonging to it.
	StageMachines map[string][]string `json:"stage_machines"`

	// CastSeq is the ordered list of cast ids.
	CastSeq []string `json:"cast_seq"`

	// CastCharges maps a cast id to the ordered charge ids it contains.
	CastCharges map[string][]string `json:"cast_charges"`

	// DueDates maps a charge id to its integer due date. The time unit is
	// owned by the consuming algorithm; the loader carries it opaquely.
	DueDates map[string]int `json:"due_dates"`

	// ProcessTimes maps charge id -> machine id -> processing time. A charge
	// is compatible only with the machines present in its inner map.
	ProcessTimes map[string]map[string]int `json:"process_times"`

	// ChargeStages maps a charge id to the stages it actually visits, in
	// StageSeq order. Derived via ComposeChargeStages.
	ChargeStages map[string][]string `json:"charge_stages"`
}

// ChargeCount returns the number of charges with process-time records.
func (p *Problem) ChargeCount() int {
	return len(p.ProcessTimes)
}

// MachineCount returns the number of distinct machines across all stages.
func (p *Problem) MachineCount() int {
	seen := make(map[string]struct{})
	for _, machines := range p.StageMachines {
		for _, mc := range machines {
			seen[mc] = struct{}{}
		}
	}
	return len(seen)
}
