package fixture

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/httpfixture/pkg/gen"
	"github.com/getmockd/httpfixture/pkg/httpgen"
)

func TestRunner_SamplePlan(t *testing.T) {
	plan, err := Parse([]byte(samplePlanYAML), FormatYAML)
	require.NoError(t, err)

	batches, err := NewRunner(nil).Run(plan)
	require.NoError(t, err)
	require.Len(t, batches, 4)

	for i, b := range batches {
		_, err := uuid.Parse(b.ID)
		assert.NoError(t, err)
		assert.Equal(t, plan.Fixtures[i].Name, b.Name)
		assert.Equal(t, FixtureSeed(42, i), b.Seed)
		assert.Len(t, b.Values, plan.Fixtures[i].Count)
	}

	for _, v := range batches[0].Values {
		code := v.(int)
		assert.GreaterOrEqual(t, code, 400)
		assert.Less(t, code, 500)
		assert.NotEqual(t, 404, code)
		assert.NotEqual(t, 418, code)
	}

	for _, v := range batches[1].Values {
		p := v.(string)
		assert.True(t, strings.HasSuffix(p, "/"), p)
		assert.False(t, strings.HasPrefix(p, "/a"), "excluded path %q", p)
		n := strings.Count(p, "/") - 1
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
	}

	for _, v := range batches[2].Values {
		assert.Contains(t, httpgen.MimeTypeValues(httpgen.Image), v)
	}

	for _, v := range batches[3].Values {
		h := v.(httpgen.Header)
		assert.NotEmpty(t, h.Name)
		assert.NotEmpty(t, h.Value)
	}
}

func TestRunner_Reproducible(t *testing.T) {
	plan, err := Parse([]byte(samplePlanYAML), FormatYAML)
	require.NoError(t, err)

	first, err := NewRunner(nil).Run(plan)
	require.NoError(t, err)
	second, err := NewRunner(nil).Run(plan)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Values, second[i].Values, first[i].Name)
		assert.NotEqual(t, first[i].ID, second[i].ID)
	}
}

func TestRunner_RandomSeedIsReported(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	plan := &Plan{Version: "1", Fixtures: []Fixture{{Name: "codes", Kind: KindStatus, Count: 3}}}
	batches, err := NewRunner(logger).Run(plan)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.NotZero(t, batches[0].Seed)
	assert.Len(t, batches[0].Values, 3)

	assert.Contains(t, logs.String(), "using a random one")
	assert.Contains(t, logs.String(), "generated fixture batch")
	assert.Contains(t, logs.String(), "fixture=codes")
}

func TestRunner_DefaultCount(t *testing.T) {
	plan := &Plan{Version: "1", Seed: 7, Fixtures: []Fixture{{Name: "m", Kind: KindMime}}}
	batches, err := NewRunner(nil).Run(plan)
	require.NoError(t, err)
	assert.Len(t, batches[0].Values, DefaultCount)

	pattern := regexp.MustCompile(`^[a-z]*/[a-z\-.]*$`)
	for _, v := range batches[0].Values {
		assert.Regexp(t, pattern, v)
	}
}

func TestRunner_InvalidPlan(t *testing.T) {
	_, err := NewRunner(nil).Run(&Plan{Version: "1"})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestRunner_ExhaustedFixture(t *testing.T) {
	plan := &Plan{Version: "1", Seed: 1, Fixtures: []Fixture{{
		Name:        "nothing",
		Kind:        KindStatus,
		MaxAttempts: 20,
		Status:      &StatusSettings{Class: "informational", Exclude: []int{100, 101, 102}},
	}}}

	_, err := NewRunner(nil).Run(plan)
	assert.ErrorIs(t, err, gen.ErrExhausted)
	assert.Contains(t, err.Error(), `fixture "nothing"`)
}

func TestBuild_HeaderWhere(t *testing.T) {
	f := &Fixture{Name: "h", Kind: KindHeader, Where: `header.name startsWith "Accept"`}
	g, err := Build(f, 3)
	require.NoError(t, err)

	values, err := gen.Take(g, 20)
	require.NoError(t, err)
	for _, v := range values {
		assert.True(t, strings.HasPrefix(v.(httpgen.Header).Name, "Accept"))
	}
}

func TestBuild_HeaderWhereOutlastsCoverageWindow(t *testing.T) {
	f := &Fixture{Name: "h", Kind: KindHeader, Where: `header.name == "Content-Type"`}
	g, err := Build(f, 11)
	require.NoError(t, err)

	values, err := gen.Take(g, 200)
	require.NoError(t, err)
	for _, v := range values {
		h := v.(httpgen.Header)
		assert.Equal(t, "Content-Type", h.Name)
		assert.Contains(t, h.Value, "/")
	}
}

func TestBuild_WhereRuntimeError(t *testing.T) {
	f := &Fixture{Name: "h", Kind: KindHeader, Where: `header.name.missing == 1`}
	g, err := Build(f, 3)
	require.NoError(t, err)

	_, err = g.Next()
	assert.Error(t, err)
}

func TestFixtureSeed(t *testing.T) {
	assert.NotEqual(t, FixtureSeed(1, 0), FixtureSeed(1, 1))
	assert.Equal(t, FixtureSeed(9, 4), FixtureSeed(9, 4))
	assert.NotZero(t, FixtureSeed(0x9e3779b97f4a7c15, 0))
}

func TestMatchesAny(t *testing.T) {
	patterns := []string{"/admin/**", "/*/secret"}
	assert.True(t, matchesAny(patterns, "/admin/users"))
	assert.True(t, matchesAny(patterns, "/admin/users/"))
	assert.True(t, matchesAny(patterns, "/api/secret"))
	assert.False(t, matchesAny(patterns, "/api/public"))
}

func TestRunner_ExamplePlan(t *testing.T) {
	plan, err := LoadFile(filepath.Join("..", "..", "examples", "with-plan-file", "fixtures.yaml"))
	require.NoError(t, err)

	batches, err := NewRunner(nil).Run(plan)
	require.NoError(t, err)
	require.Len(t, batches, 5)

	for _, v := range batches[0].Values {
		code := v.(int)
		assert.GreaterOrEqual(t, code, 500)
		assert.NotContains(t, []int{501, 505}, code)
	}
	for _, v := range batches[1].Values {
		assert.NotContains(t, []int{401, 407}, v.(int))
	}
	for _, v := range batches[2].Values {
		assert.False(t, strings.HasPrefix(v.(string), "/internal/"))
	}
	for _, v := range batches[3].Values {
		assert.Contains(t, httpgen.MimeTypeValues(httpgen.Multipart), v)
	}
	for _, v := range batches[4].Values {
		assert.Contains(t, []string{"Accept", "Content-Type"}, v.(httpgen.Header).Name)
	}
}
