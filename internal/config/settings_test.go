package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSettings drops a settings document into a temp dir and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input_metadata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSettings = `
input_directory: "./instances/"
input_prefix: "scc"
suffix_digits: 3
input_index_list: [1, 2]

mc_env_suffix: "_mc_env"
mc_env_extension: ".json"
cast_suffix: "_cast"
cast_extension: ".json"
duedate_suffix: "_dd"
duedate_extension: ".json"
processtime_suffix: "_pt"
processtime_extension: ".csv"
processtime_header: ["ch_id", "mc_id", "pt"]
i_encoding: "utf-8"

cast_lth_min: 2
cast_lth_max: 6
limit_by_casts: true
cast_count_min: 3
cast_count_max: 10

short_ttl: 10
long_ttl: 60
ih_cast_timelimit: 30
ih_termination_gap_increment: 0.05
dca_repeat: 4
dca_timelimit: 120
dca_continue_diff: 0.01
dch_window_minutes: 90
dch_step_minutes: 15
dch_timelimit: 60
total_timelimit: 3600
`

func TestLoad_ValidDocument(t *testing.T) {
	path := writeSettings(t, validSettings)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./instances/", s.InputDirectory)
	assert.Equal(t, "scc", s.InputPrefix)
	require.NotNil(t, s.SuffixDigits)
	assert.Equal(t, 3, *s.SuffixDigits)
	assert.Equal(t, []int{1, 2}, s.InputIndexList)
	assert.Equal(t, "_mc_env", s.MachineEnvSuffix)
	assert.Equal(t, ".json", s.MachineEnvExtension)
	assert.Equal(t, "_pt", s.ProcessTimeSuffix)
	assert.Equal(t, ".csv", s.ProcessTimeExtension)
	assert.Equal(t, []string{"ch_id", "mc_id", "pt"}, s.ProcessTimeHeader)
	assert.Equal(t, "utf-8", s.Encoding)
	assert.True(t, s.LimitByCasts)
	assert.False(t, s.LimitByCharges)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "cannot read settings file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeSettings(t, "input_prefix: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "cannot parse settings file")
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeSettings(t, `
suffix_digits: 3
input_prefiks: "typo"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestLoad_MissingSuffixDigits(t *testing.T) {
	path := writeSettings(t, `input_prefix: "scc"`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "suffix_digits")
}

func TestLoad_NonPositiveSuffixDigits(t *testing.T) {
	path := writeSettings(t, `suffix_digits: 0`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "suffix_digits must be positive")
}

func TestIndexList_NeverDeclared(t *testing.T) {
	path := writeSettings(t, `suffix_digits: 3`)
	s, err := Load(path)
	require.NoError(t, err)

	_, err = s.IndexList()
	require.Error(t, err)
	assert.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "input_index_list")
}

func TestIndexList_ExplicitlyEmpty(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\ninput_index_list: []\n")
	s, err := Load(path)
	require.NoError(t, err)

	list, err := s.IndexList()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestIndexList_ReturnsCopy(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\ninput_index_list: [4, 5]\n")
	s, err := Load(path)
	require.NoError(t, err)

	list, err := s.IndexList()
	require.NoError(t, err)
	list[0] = 99

	again, err := s.IndexList()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, again)
}

func TestEncodingName(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\ni_encoding: \"latin1\"\n")
	s, err := Load(path)
	require.NoError(t, err)

	name, err := s.EncodingName()
	require.NoError(t, err)
	assert.Equal(t, "latin1", name)
}

func TestEncodingName_Missing(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\n")
	s, err := Load(path)
	require.NoError(t, err)

	_, err = s.EncodingName()
	require.Error(t, err)
	assert.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "i_encoding")
}

func TestIntLimit(t *testing.T) {
	path := writeSettings(t, validSettings)
	s, err := Load(path)
	require.NoError(t, err)

	v, err := s.IntLimit("total_timelimit")
	require.NoError(t, err)
	assert.Equal(t, 3600, v)

	v, err = s.IntLimit("dch_window_minutes")
	require.NoError(t, err)
	assert.Equal(t, 90, v)
}

func TestIntLimit_Missing(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\n")
	s, err := Load(path)
	require.NoError(t, err)

	_, err = s.IntLimit("short_ttl")
	require.Error(t, err)
	assert.True(t, IsMissingField(err))
	assert.Contains(t, err.Error(), "short_ttl")
}

func TestIntLimit_UnknownName(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\n")
	s, err := Load(path)
	require.NoError(t, err)

	_, err = s.IntLimit("no_such_limit")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestFloatLimit(t *testing.T) {
	path := writeSettings(t, validSettings)
	s, err := Load(path)
	require.NoError(t, err)

	v, err := s.FloatLimit("ih_termination_gap_increment")
	require.NoError(t, err)
	assert.InDelta(t, 0.05, v, 1e-9)

	_, err = s.FloatLimit("dca_continue_diff")
	require.NoError(t, err)
}

func TestFloatLimit_Missing(t *testing.T) {
	path := writeSettings(t, "suffix_digits: 3\n")
	s, err := Load(path)
	require.NoError(t, err)

	_, err = s.FloatLimit("dca_continue_diff")
	require.Error(t, err)
	assert.True(t, IsMissingField(err))
}
