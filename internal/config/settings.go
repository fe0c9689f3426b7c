package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the loader configuration, read once at startup. YAML keys keep
// the names used by the settings documents that instance generators emit.
//
// The size-limit bounds and the algorithm limits are opaque to the loader:
// it carries them for the scheduling algorithm and only checks presence.
type Settings struct {
	InputDirectory string `yaml:"input_directory"`
	InputPrefix    string `yaml:"input_prefix"`
	SuffixDigits   *int   `yaml:"suffix_digits"`
	InputIndexList []int  `yaml:"input_index_list"`

	MachineEnvSuffix     string   `yaml:"mc_env_suffix"`
	MachineEnvExtension  string   `yaml:"mc_env_extension"`
	CastSuffix           string   `yaml:"cast_suffix"`
	CastExtension        string   `yaml:"cast_extension"`
	DueDateSuffix        string   `yaml:"duedate_suffix"`
	DueDateExtension     string   `yaml:"duedate_extension"`
	ProcessTimeSuffix    string   `yaml:"processtime_suffix"`
	ProcessTimeExtension string   `yaml:"processtime_extension"`
	ProcessTimeHeader    []string `yaml:"processtime_header"`
	Encoding             string   `yaml:"i_encoding"`

	// Problem-size parameters for generated instance sets.
	CastLengthMin  *int `yaml:"cast_lth_min"`
	CastLengthMax  *int `yaml:"cast_lth_max"`
	LimitByCasts   bool `yaml:"limit_by_casts"`
	CastCountMin   *int `yaml:"cast_count_min"`
	CastCountMax   *int `yaml:"cast_count_max"`
	LimitByCharges bool `yaml:"limit_by_charges"`
	ChargeCountMin *int `yaml:"charge_count_min"`
	ChargeCountMax *int `yaml:"charge_count_max"`

	// Algorithm time limits, passed through to the consumer.
	ShortTTL                  *int     `yaml:"short_ttl"`
	LongTTL                   *int     `yaml:"long_ttl"`
	IHCastTimeLimit           *int     `yaml:"ih_cast_timelimit"`
	IHTerminationGapIncrement *float64 `yaml:"ih_termination_gap_increment"`
	DCARepeat                 *int     `yaml:"dca_repeat"`
	DCATimeLimit              *int     `yaml:"dca_timelimit"`
	DCAContinueDiff           *float64 `yaml:"dca_continue_diff"`
	DCHWindowMinutes          *int     `yaml:"dch_window_minutes"`
	DCHStepMinutes            *int     `yaml:"dch_step_minutes"`
	DCHTimeLimit              *int     `yaml:"dch_timelimit"`
	TotalTimeLimit            *int     `yaml:"total_timelimit"`

	// idxFormat is the zero-padding verb ("%03d" for suffix_digits: 3),
	// derived once at load time.
	idxFormat string
}

// Load reads and strict-decodes the settings document at path. Unknown keys,
// unreadable files, and malformed YAML all fail with ConfigError; an absent
// or non-positive suffix_digits fails immediately because the index format
// cannot be derived without it.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "cannot read settings file", Err: err}
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, &ConfigError{Path: path, Message: "cannot parse settings file", Err: err}
	}

	if err := s.deriveIndexFormat(); err != nil {
		return nil, err
	}
	return &s, nil
}

// deriveIndexFormat computes the zero-padding verb from suffix_digits.
func (s *Settings) deriveIndexFormat() error {
	if s.SuffixDigits == nil {
		return NewMissingFieldError("suffix_digits")
	}
	if *s.SuffixDigits < 1 {
		return &ConfigError{Message: fmt.Sprintf("suffix_digits must be positive, got %d", *s.SuffixDigits)}
	}
	s.idxFormat = fmt.Sprintf("%%0%dd", *s.SuffixDigits)
	return nil
}

// padIndex renders idx at the configured zero-padded width.
func (s *Settings) padIndex(idx int) string {
	return fmt.Sprintf(s.idxFormat, idx)
}

// IndexList returns a copy of the configured instance index list. A document
// that never declared input_index_list fails with MissingFieldError; an
// explicitly empty list is valid and means no instances.
func (s *Settings) IndexList() ([]int, error) {
	if s.InputIndexList == nil {
		return nil, NewMissingFieldError("input_index_list")
	}
	out := make([]int, len(s.InputIndexList))
	copy(out, s.InputIndexList)
	return out, nil
}

// EncodingName returns the configured character encoding for instance-file
// reads, failing with MissingFieldError when none was supplied.
func (s *Settings) EncodingName() (string, error) {
	if s.Encoding == "" {
		return "", NewMissingFieldError("i_encoding")
	}
	return s.Encoding, nil
}

// IntLimit returns the named integer algorithm limit. The name is the
// settings-file key (for example "short_ttl"). Limits the document never
// supplied fail with MissingFieldError naming the key.
func (s *Settings) IntLimit(name string) (int, error) {
	var v *int
	switch name {
	case "short_ttl":
		v = s.ShortTTL
	case "long_ttl":
		v = s.LongTTL
	case "ih_cast_timelimit":
		v = s.IHCastTimeLimit
	case "dca_repeat":
		v = s.DCARepeat
	case "dca_timelimit":
		v = s.DCATimeLimit
	case "dch_window_minutes":
		v = s.DCHWindowMinutes
	case "dch_step_minutes":
		v = s.DCHStepMinutes
	case "dch_timelimit":
		v = s.DCHTimeLimit
	case "total_timelimit":
		v = s.TotalTimeLimit
	case "cast_lth_min":
		v = s.CastLengthMin
	case "cast_lth_max":
		v = s.CastLengthMax
	default:
		return 0, &ConfigError{Message: fmt.Sprintf("unknown integer limit %q", name)}
	}
	if v == nil {
		return 0, NewMissingFieldError(name)
	}
	return *v, nil
}

// FloatLimit returns the named float algorithm limit, with the same absence
// semantics as IntLimit.
func (s *Settings) FloatLimit(name string) (float64, error) {
	var v *float64
	switch name {
	case "ih_termination_gap_increment":
		v = s.IHTerminationGapIncrement
	case "dca_continue_diff":
		v = s.DCAContinueDiff
	default:
		return 0, &ConfigError{Message: fmt.Sprintf("unknown float limit %q", name)}
	}
	if v == nil {
		return 0, NewMissingFieldError(name)
	}
	return *v, nil
}
