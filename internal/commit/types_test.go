package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesMenuOrder(t *testing.T) {
	want := []Type{Feature, Fix, Docs, Style, Refactor, Perf, Test, Chore, CI, Release}
	assert.Equal(t, want, Types())
}

func TestTypeDetails(t *testing.T) {
	for _, ty := range Types() {
		d := ty.Details()
		require.NotEmpty(t, d.Token, "type %d has no token", ty)
		require.NotEmpty(t, d.Description, "type %q has no description", d.Token)
		require.NotEmpty(t, d.Emoji, "type %q has no emoji", d.Token)
		assert.Equal(t, d.Token, ty.String())
	}
}

func TestTypeTokens(t *testing.T) {
	tests := []struct {
		ty    Type
		token string
		emoji string
	}{
		{Feature, "feat", "🎸"},
		{Fix, "fix", "🐛"},
		{Chore, "chore", "🤖"},
		{Release, "release", "🏹"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.token, tt.ty.String())
			assert.Equal(t, tt.emoji, tt.ty.Details().Emoji)
		})
	}
}
