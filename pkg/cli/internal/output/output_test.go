package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncoders(t *testing.T) {
	v := map[string]any{"codes": []int{200, 404}}

	var js bytes.Buffer
	require.NoError(t, JSON(&js, v))
	assert.JSONEq(t, `{"codes":[200,404]}`, js.String())

	var ym bytes.Buffer
	require.NoError(t, YAML(&ym, v))
	assert.YAMLEq(t, "codes: [200, 404]\n", ym.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	_, _ = tw.Write([]byte("NAME\tKIND\nerrors\tstatus\n"))
	require.NoError(t, tw.Flush())
	assert.Equal(t, "NAME    KIND\nerrors  status\n", buf.String())
}
