package config

// CheckProblemSize verifies that the problem-size parameters select exactly
// one limiting policy and that the selected policy's bounds are defined.
//
// Zero or two selected policies fail with ConfigError; a selected policy
// with undefined bounds fails with MissingFieldError naming every absent
// bound, min before max.
func (s *Settings) CheckProblemSize() error {
	if s.LimitByCasts == s.LimitByCharges {
		return &ConfigError{Message: "choose exactly one limiting policy: casts or charges"}
	}

	var missing []string
	if s.LimitByCasts {
		if s.CastCountMin == nil {
			missing = append(missing, "cast_count_min")
		}
		if s.CastCountMax == nil {
			missing = append(missing, "cast_count_max")
		}
	} else {
		if s.ChargeCountMin == nil {
			missing = append(missing, "charge_count_min")
		}
		if s.ChargeCountMax == nil {
			missing = append(missing, "charge_count_max")
		}
	}

	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}
