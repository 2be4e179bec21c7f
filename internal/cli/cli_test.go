package cli

import (
	"bytes"
	"testing"
	_ "time/tzdata" // keep zone lookups hermetic

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGoldenOutputs(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"add_months_text", []string{"add", "2025-01-31T00:00:00Z", "1", "month", "--in", "UTC"}},
		{"add_months_json", []string{"add", "2025-01-31T00:00:00Z", "1", "month", "--in", "UTC", "-o", "json"}},
		{"startof_month_text", []string{"startof", "2024-06-15T10:30:45.123Z", "month", "--in", "UTC"}},
		{"compare_desc_yaml", []string{"compare", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", "--order", "desc", "-o", "yaml"}},
		{"tz_est_winter_text", []string{"tz", "EST", "--at", "2025-01-01T00:00:00Z", "--in", "UTC"}},
		{"between_text", []string{"between", "2024-01-15", "2024-01-10", "2024-01-20", "--in", "UTC"}},
		{"bounds_json", []string{"bounds", "-o", "json"}},
	}

	g := goldie.New(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := execute(t, c.args...)
			require.NoError(t, err)
			g.Assert(t, c.name, []byte(out))
		})
	}
}

func TestAddAndSubAreMirrors(t *testing.T) {
	added, err := execute(t, "add", "2025-01-31T00:00:00Z", "1", "month", "--in", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28T00:00:00.000Z\n", added)

	subbed, err := execute(t, "sub", "2025-02-28T00:00:00Z", "1", "month", "--in", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-28T00:00:00.000Z\n", subbed)
}

func TestCompareText(t *testing.T) {
	out, err := execute(t, "compare", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	out, err = execute(t, "compare", "2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestMillisecondTimestampArgument(t *testing.T) {
	out, err := execute(t, "startof", "1718447445123", "second", "--in", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15T10:30:45.000Z\n", out)
}

func TestBetweenExclusiveBound(t *testing.T) {
	out, err := execute(t, "between", "2024-01-10", "2024-01-10", "2024-01-20", "--in", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "between", "2024-01-10", "2024-01-10", "2024-01-20", "--in", "UTC", "--exclude-start")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestTZSummerOffset(t *testing.T) {
	out, err := execute(t, "tz", "America/New_York", "--at", "2025-07-01T00:00:00Z", "--in", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York -240\n", out)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unparsable date", []string{"add", "garbage", "1", "day"}, "is not a date"},
		{"unknown unit", []string{"add", "2024-01-01", "1", "fortnight"}, "invalid unit"},
		{"non-finite amount", []string{"add", "2024-01-01T00:00:00Z", "NaN", "day"}, "not a representable date"},
		{"unknown zone", []string{"tz", "Atlantis/Central"}, "unknown timezone"},
		{"unknown output format", []string{"bounds", "-o", "xml"}, "unknown output format"},
		{"unknown location", []string{"startof", "2024-01-01", "day", "--in", "Nowhere/Special"}, "--in"},
		{"timestamp out of range", []string{"startof", "9640000000000000", "day"}, "out of range"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := execute(t, c.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantMsg)
		})
	}
}
