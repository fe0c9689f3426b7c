package scc

// ComposeChargeStages derives, for every charge in processTimes, the ordered
// list of stages the charge visits. A charge visits a stage exactly when at
// least one of its compatible machines belongs to that stage; each stage is
// recorded at most once per charge, and the resulting lists follow stageSeq
// order, never machine-insertion order.
//
// Every charge id present in processTimes gets an entry, even when none of
// its machines belong to any configured stage (the list is then empty). A
// stage id in stageSeq with no entry in stageMachines simply contributes no
// machines.
//
// Cost is O(len(stageSeq) x total process-time entries); each stage's
// machine list is converted to a set once, so membership checks are O(1).
func ComposeChargeStages(
	processTimes map[string]map[string]int,
	stageSeq []string,
	stageMachines map[string][]string,
) map[string][]string {
	chargeStages := make(map[string][]string, len(processTimes))
	for chID := range processTimes {
		chargeStages[chID] = []string{}
	}

	for _, stageID := range stageSeq {
		members := make(map[string]struct{}, len(stageMachines[stageID]))
		for _, mcID := range stageMachines[stageID] {
			members[mcID] = struct{}{}
		}

		for chID, machines := range processTimes {
			for mcID := range machines {
				if _, ok := members[mcID]; ok {
					chargeStages[chID] = append(chargeStages[chID], stageID)
					break
				}
			}
		}
	}

	return chargeStages
}
