package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/httpfixture/pkg/fixture"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t, rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default, since the command tree and
// its flag variables are package globals shared by all tests.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				require.NoError(t, sv.Replace(nil))
			} else {
				require.NoError(t, f.Value.Set(f.DefValue))
			}
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

type statusBatch struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Seed   uint64 `json:"seed"`
	Values []int  `json:"values"`
}

func TestStatus_ExcludeJSON(t *testing.T) {
	stdout, stderr, err := execute(t, "status", "--exclude", "404,500", "--seed", "42", "-n", "200", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var batch statusBatch
	require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
	assert.Equal(t, "status", batch.Kind)
	assert.Equal(t, fixture.FixtureSeed(42, 0), batch.Seed)
	require.Len(t, batch.Values, 200)

	classes := make(map[httpgen.StatusClass]bool)
	for _, code := range batch.Values {
		assert.NotEqual(t, 404, code)
		assert.NotEqual(t, 500, code)
		c, ok := httpgen.ClassOf(code)
		require.True(t, ok, "unknown code %d", code)
		classes[c] = true
	}
	assert.Len(t, classes, 5)
}

func TestStatus_SeedIsReproducible(t *testing.T) {
	decode := func() []int {
		stdout, _, err := execute(t, "status", "--seed", "99", "-n", "25", "--json")
		require.NoError(t, err)
		var batch statusBatch
		require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
		return batch.Values
	}
	assert.Equal(t, decode(), decode())
}

func TestStatus_ClassText(t *testing.T) {
	stdout, _, err := execute(t, "status", "--class", "5xx", "-n", "30")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 30)
	for _, line := range lines {
		code, err := strconv.Atoi(line)
		require.NoError(t, err, line)
		assert.Contains(t, httpgen.StatusCodeValues(httpgen.ServerError), code)
	}
}

func TestStatus_InvalidClass(t *testing.T) {
	_, _, err := execute(t, "status", "--class", "teapot")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFlags))
	assert.Contains(t, err.Error(), "status.class")
}

func TestStatus_List(t *testing.T) {
	stdout, _, err := execute(t, "status", "--list", "--class", "success", "-o", "json")
	require.NoError(t, err)

	var tables []StatusTable
	require.NoError(t, json.Unmarshal([]byte(stdout), &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, httpgen.Success.String(), tables[0].Class)
	assert.Equal(t, httpgen.StatusCodeValues(httpgen.Success), tables[0].Codes)
}

func TestMime_CategoryYAML(t *testing.T) {
	stdout, _, err := execute(t, "mime", "--category", "image", "-n", "5", "-o", "yaml")
	require.NoError(t, err)

	var batch struct {
		Kind   string   `yaml:"kind"`
		Values []string `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &batch))
	assert.Equal(t, "mime", batch.Kind)
	require.Len(t, batch.Values, 5)
	for _, v := range batch.Values {
		assert.Contains(t, httpgen.MimeTypeValues(httpgen.Image), v)
	}
}

func TestMime_ListText(t *testing.T) {
	stdout, _, err := execute(t, "mime", "--list")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "CATEGORY"))
	assert.Contains(t, stdout, "image/gif")
	assert.Equal(t, len(httpgen.AllMimeTypeValues())+1, strings.Count(stdout, "\n"))
}

func TestMime_UnknownCategory(t *testing.T) {
	_, _, err := execute(t, "mime", "--category", "fonts")
	assert.ErrorIs(t, err, ErrInvalidFlags)
}

func TestPaths_DepthAndExclude(t *testing.T) {
	stdout, _, err := execute(t, "paths",
		"--min-depth", "2", "--max-depth", "2", "--trailing",
		"--exclude", "/a*/**", "-n", "40")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 40)
	for _, p := range lines {
		assert.Equal(t, 3, strings.Count(p, "/"), p)
		assert.True(t, strings.HasSuffix(p, "/"), p)
		assert.False(t, strings.HasPrefix(p, "/a"), "excluded path %q", p)
	}
}

func TestPaths_InvertedDepth(t *testing.T) {
	_, _, err := execute(t, "paths", "--min-depth", "4", "--max-depth", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFlags)
	assert.Contains(t, err.Error(), "greater than")
}

func TestHeaders_Where(t *testing.T) {
	stdout, _, err := execute(t, "headers", "--where", `header.name == "Content-Type"`, "-n", "5", "-o", "json")
	require.NoError(t, err)

	var batch struct {
		Values []httpgen.Header `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &batch))
	require.Len(t, batch.Values, 5)
	for _, h := range batch.Values {
		assert.Equal(t, "Content-Type", h.Name)
		assert.Contains(t, h.Value, "/")
	}
}

func TestHeaders_Text(t *testing.T) {
	stdout, _, err := execute(t, "headers", "-n", "3", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ": ")
		assert.True(t, ok, line)
		assert.Contains(t, httpgen.HeaderNames(), name)
		assert.NotEmpty(t, value)
	}
}

const testPlan = `
version: "1"
seed: 3
fixtures:
  - name: errors
    kind: status
    count: 4
    status:
      class: client-error
  - name: routes
    kind: path
`

func writePlan(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_JSON(t *testing.T) {
	path := writePlan(t, "plan.yaml", testPlan)

	stdout, _, err := execute(t, "run", "-f", path, "--seed", "7", "-o", "json")
	require.NoError(t, err)

	var batches []struct {
		Name   string `json:"name"`
		Seed   uint64 `json:"seed"`
		Values []any  `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &batches))
	require.Len(t, batches, 2)
	assert.Equal(t, "errors", batches[0].Name)
	assert.Equal(t, fixture.FixtureSeed(7, 0), batches[0].Seed)
	assert.Len(t, batches[0].Values, 4)
	assert.Len(t, batches[1].Values, fixture.DefaultCount)
}

func TestRun_CountOverride(t *testing.T) {
	path := writePlan(t, "plan.yaml", testPlan)

	stdout, _, err := execute(t, "run", "-f", path, "-n", "2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# errors (status, seed ")
	assert.Contains(t, stdout, "# routes (path, seed ")
	// two headings, a blank separator and two values per fixture
	assert.Equal(t, 7, strings.Count(stdout, "\n"))
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.ErrorContains(t, err, `"file"`)

	_, _, err = execute(t, "run", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fixture.ErrFileNotFound)
}

func TestRun_DebugLogging(t *testing.T) {
	path := writePlan(t, "plan.yaml", testPlan)

	stdout, stderr, err := execute(t, "run", "-f", path, "--log-level", "debug", "--log-format", "json", "-o", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, "run", entry["command"])
	}
	assert.Contains(t, stderr, "generated fixture batch")
}

func TestValidate_Valid(t *testing.T) {
	path := writePlan(t, "plan.yaml", testPlan)

	stdout, _, err := execute(t, "validate", "-f", path, "--show-resolved")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Plan is valid: 2 fixture(s)")
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "Resolved plan:")
	assert.Contains(t, stdout, "class: client-error")
}

func TestValidate_InvalidJSON(t *testing.T) {
	path := writePlan(t, "plan.yaml", `
version: "1"
fixtures:
  - name: a
    kind: status
    status:
      class: nope
  - name: a
    kind: path
`)

	stdout, _, err := execute(t, "validate", "-f", path, "-o", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlanInvalid)

	var out ValidateOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.Valid)
	assert.Empty(t, out.Fixtures)
	assert.Len(t, out.Errors, 2)
}

func TestValidate_SyntaxError(t *testing.T) {
	path := writePlan(t, "plan.json", `{"version": "1",`)

	stdout, _, err := execute(t, "validate", "-f", path)
	assert.ErrorIs(t, err, fixture.ErrInvalidJSON)
	assert.Empty(t, stdout)
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var out VersionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, runtime.Version(), out.Go)
	assert.Equal(t, runtime.GOOS, out.OS)
	assert.NotEmpty(t, out.Version)
}

func TestRoot_InvalidPersistentFlags(t *testing.T) {
	_, _, err := execute(t, "status", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, _, err = execute(t, "status", "-n", "0")
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestStatus_HelpDescribesUniformSampling(t *testing.T) {
	stdout, _, err := execute(t, "status", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Codes are drawn uniformly")
	assert.NotContains(t, stdout, "shows up")
}
