package loader

import "golang.org/x/text/encoding"

// stageSeqKey is the distinguished key carrying the ordered stage sequence
// in a machine-environment document.
const stageSeqKey = "stage_seq"

// ParseMachineEnv reads a machine-environment document. The object's
// "stage_seq" entry is the ordered stage sequence; every other key is a
// stage id mapped to the list of machine ids belonging to that stage.
//
// An absent or empty stage sequence is rejected: downstream routing is
// meaningless without it, and letting it through would silently produce a
// problem instance with no stages.
func ParseMachineEnv(path string, enc encoding.Encoding) ([]string, map[string][]string, error) {
	return parseGroupDocument(path, enc, stageSeqKey, "stage sequence not defined")
}
