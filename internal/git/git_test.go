package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitArgs(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		extraArgs []string
		want      []string
	}{
		{
			name:    "no extra arguments",
			message: "feat: 🎸 add retry",
			want:    []string{"commit", "-m", "feat: 🎸 add retry"},
		},
		{
			name:      "flags forwarded verbatim after the message",
			message:   "fix: 🐛 handle nil",
			extraArgs: []string{"-a", "--no-verify"},
			want:      []string{"commit", "-m", "fix: 🐛 handle nil", "-a", "--no-verify"},
		},
		{
			name:      "multiline message stays a single argv entry",
			message:   "chore: 🤖 bump deps\n\nupdate everything",
			extraArgs: []string{"--signoff"},
			want:      []string{"commit", "-m", "chore: 🤖 bump deps\n\nupdate everything", "--signoff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commitArgs(tt.message, tt.extraArgs))
		})
	}
}
