package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args, returning captured stdout and the
// command's error.
func execute(args ...string) (string, error) {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// settingsDoc renders a settings document pointing at dir with the given
// index list (YAML flow form, e.g. "[1, 2]") and size-policy snippet.
func settingsDoc(dir, indices, policy string) string {
	return fmt.Sprintf(`
input_directory: "%s/"
input_prefix: "scc"
suffix_digits: 3
input_index_list: %s
mc_env_suffix: "_mc_env"
mc_env_extension: ".json"
cast_suffix: "_cast"
cast_extension: ".json"
duedate_suffix: "_dd"
duedate_extension: ".json"
processtime_suffix: "_pt"
processtime_extension: ".csv"
i_encoding: "utf-8"
%s
`, dir, indices, policy)
}

// validPolicy selects the cast-count policy with bounds defined.
const validPolicy = "limit_by_casts: true\ncast_count_min: 1\ncast_count_max: 10"

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, content)
	return path
}

// writeInstanceFiles lays down a complete file set for index idx: two
// stages, one cast, two charges.
func writeInstanceFiles(t *testing.T, dir string, idx int) {
	t.Helper()
	stem := fmt.Sprintf("scc%03d", idx)
	writeFile(t, filepath.Join(dir, stem+"_mc_env.json"),
		`{"stage_seq": ["S1", "S2"], "S1": ["M1"], "S2": ["M2"]}`)
	writeFile(t, filepath.Join(dir, stem+"_cast.json"),
		`{"cast_seq": ["C1"], "C1": ["CH1", "CH2"]}`)
	writeFile(t, filepath.Join(dir, stem+"_dd.json"),
		`{"CH1": 10, "CH2": 20}`)
	writeFile(t, filepath.Join(dir, stem+"_pt.csv"),
		"ch_id,mc_id,pt\nCH1,M1,5\nCH1,M2,7\nCH2,M2,9\n")
}
