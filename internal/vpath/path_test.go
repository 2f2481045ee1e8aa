package vpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string // expected FlatName, "" when an error is expected
		wantErr  bool
		segments []string
	}{
		{
			name:     "single segment",
			input:    "base.yaml",
			want:     "base.yaml",
			segments: []string{"base.yaml"},
		},
		{
			name:     "nested path",
			input:    "includes/defaults.yaml",
			want:     "includes--defaults.yaml",
			segments: []string{"includes", "defaults.yaml"},
		},
		{
			name:     "leading slash is stripped",
			input:    "/includes/defaults.yaml",
			want:     "includes--defaults.yaml",
			segments: []string{"includes", "defaults.yaml"},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare slash",
			input:   "/",
			wantErr: true,
		},
		{
			name:    "empty segment",
			input:   "a//b",
			wantErr: true,
		},
		{
			name:    "segment containing separator token",
			input:   "a--b/c",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.FlatName())
			assert.Equal(t, tt.segments, p.Segments())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// decode(encode(p)) == p as long as no segment contains the separator.
	inputs := []string{
		"base.yaml",
		"includes/defaults.yaml",
		"env/prod/region/eu-west-1.yaml",
	}
	for _, input := range inputs {
		p, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, p, DecodeFlat(p.FlatName()), "round trip for %q", input)
	}
}

func TestFlatNameIsPure(t *testing.T) {
	p, err := Parse("includes/defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, p.FlatName(), p.FlatName())
}

func TestString(t *testing.T) {
	p, err := Parse("includes/defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/includes/defaults.yaml", p.String())

	assert.Equal(t, "/a/b/c", DecodeFlat("a--b--c").String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Path{}.IsZero())

	p, err := Parse("x")
	require.NoError(t, err)
	assert.False(t, p.IsZero())
}
