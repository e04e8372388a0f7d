package diagnostic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConfigInvalid, KindOf(ConfigInvalid("bad setting")))
	assert.Equal(t, KindUnsupported, KindOf(Unsupported("NUMERIC(40, 2)", "too wide")))
	assert.Equal(t, KindRescaleLoss, KindOf(RescaleLoss("2.51", "digits lost")))

	// Classification survives wrapping.
	wrapped := fmt.Errorf("resolving column: %w", Unsupported("", "nope"))
	assert.Equal(t, KindUnsupported, KindOf(wrapped))

	assert.Equal(t, KindNone, KindOf(fmt.Errorf("plain error")))
	assert.Equal(t, KindNone, KindOf(nil))
}

func TestErrorRendering(t *testing.T) {
	err := Unsupported("NUMERIC(40, 2)", "type exceeds limits")
	assert.Equal(t, "type exceeds limits: NUMERIC(40, 2)", err.Error())

	// No type description, no trailing separator.
	err = ConfigInvalid("%q conflicts with %q", "a", "b")
	assert.Equal(t, `"a" conflicts with "b"`, err.Error())
}

func TestDiagnosticsError(t *testing.T) {
	var diags Diagnostics

	require.True(t, diags.IsValid())
	require.NoError(t, diags.Error())

	diags.AddWarning("c1", "VARCHAR(10)", "column skipped by policy")
	require.True(t, diags.IsValid(), "warnings must not invalidate")

	diags.AddError(KindUnsupported, "c2", "NUMERIC(40, 2)", "type exceeds limits")
	require.True(t, diags.HasErrors())

	err := diags.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c2")
	assert.Contains(t, err.Error(), "unsupported conversion")
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "full",
			d:    Diagnostic{Kind: KindUnsupported, Column: "c", TypeDesc: "NUMERIC(40, 2)", Message: "too wide"},
			want: "[c] NUMERIC(40, 2): [unsupported conversion] too wide",
		},
		{
			name: "message only",
			d:    Diagnostic{Message: "no supported columns"},
			want: "no supported columns",
		},
		{
			name: "column without type",
			d:    Diagnostic{Column: "c", Message: "skipped"},
			want: "[c]: skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("c1", "", "w")
	b.AddError(KindConfigInvalid, "", "", "e")
	b.AddInfo("c2", "", "i")

	a.Merge(b)

	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Infos, 1)
	assert.True(t, a.HasErrors())
}
