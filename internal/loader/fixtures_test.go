package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/castsched/castsched/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// loadSettingsDoc writes a settings document to a temp file and loads it.
func loadSettingsDoc(t *testing.T, doc string) *config.Settings {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, doc)
	s, err := config.Load(path)
	require.NoError(t, err)
	return s
}

// testSettings returns settings pointing at dir with the canonical test
// naming convention (prefix "scc", width 3) and the given index list.
func testSettings(t *testing.T, dir string, indices ...int) *config.Settings {
	t.Helper()
	elems := make([]string, len(indices))
	for i, idx := range indices {
		elems[i] = strconv.Itoa(idx)
	}
	doc := fmt.Sprintf(`
input_directory: "%s/"
input_prefix: "scc"
suffix_digits: 3
input_index_list: [%s]
mc_env_suffix: "_mc_env"
mc_env_extension: ".json"
cast_suffix: "_cast"
cast_extension: ".json"
duedate_suffix: "_dd"
duedate_extension: ".json"
processtime_suffix: "_pt"
processtime_extension: ".csv"
i_encoding: "utf-8"
`, dir, strings.Join(elems, ", "))
	return loadSettingsDoc(t, doc)
}

// writeInstance lays down a complete, internally consistent file set for
// index idx under dir: two stages with one machine each, one cast with two
// charges, and process times placing CH1 on both stages and CH2 on the
// second only.
func writeInstance(t *testing.T, dir string, idx int) {
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
