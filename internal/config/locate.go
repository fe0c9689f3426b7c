package config

// InstancePaths holds the four artifact paths of one problem instance.
type InstancePaths struct {
	MachineEnv  string `json:"mc_env"`
	Cast        string `json:"cast"`
	DueDate     string `json:"duedate"`
	ProcessTime string `json:"processtime"`
}

// Locate resolves the four artifact paths for the instance at idx. It is a
// pure function of the settings: every path is
// directory + prefix + zero-padded index + artifact suffix + extension,
// with no filesystem access.
func (s *Settings) Locate(idx int) InstancePaths {
	base := s.InputDirectory + s.InputPrefix + s.padIndex(idx)
	return InstancePaths{
		MachineEnv:  base + s.MachineEnvSuffix + s.MachineEnvExtension,
		Cast:        base + s.CastSuffix + s.CastExtension,
		DueDate:     base + s.DueDateSuffix + s.DueDateExtension,
		ProcessTime: base + s.ProcessTimeSuffix + s.ProcessTimeExtension,
	}
}

// ProblemName generates the instance name for idx: the input prefix and the
// zero-padded index joined by an underscore. File paths do not carry the
// underscore; only the name does.
func (s *Settings) ProblemName(idx int) string {
	return s.InputPrefix + "_" + s.padIndex(idx)
}

// OutputPathPrefix builds "location/filenamePrefix<padded idx>" for
// downstream writers that emit per-instance artifacts next to the inputs.
func (s *Settings) OutputPathPrefix(location string, idx int, filenamePrefix string) string {
	return location + "/" + filenamePrefix + s.padIndex(idx)
}
