package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-go/git-convy/commit"
)

func TestAssembleMessage(t *testing.T) {
	tests := []struct {
		name                             string
		typ, scope, desc, body, breaking string
		want                             string
	}{
		{
			name: "plain",
			typ:  "feat", desc: "add  thing",
			want: "feat: add thing",
		},
		{
			name: "scope and body",
			typ:  "fix", scope: "ui", desc: "fix button", body: "It was broken.",
			want: "fix(ui): fix button\n\nIt was broken.",
		},
		{
			name: "breaking",
			typ:  "feat", scope: "core", desc: "drop API", breaking: "removed foo",
			want: "feat(core)!: drop API\n\nBREAKING CHANGE: removed foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := assembleMessage(tt.typ, tt.scope, tt.desc, tt.body, tt.breaking)
			assert.Equal(t, tt.want, raw)

			msg, err := commit.ValidateMessage(raw, commit.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.breaking != "", msg.Breaking)
		})
	}
}

func TestWriteScopesFile(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	scopes := Scopes{
		"old": now.Add(-time.Hour),
		"new": now,
	}

	for _, name := range []string{".scope-history.yaml", ".scope-history.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, writeScopesFile(path, scopes))

			content, err := readFile(path)
			require.NoError(t, err)

			got := make(Scopes)
			require.NoError(t, decode(path, content, &got))
			require.Len(t, got, 2)
			assert.True(t, got["new"].Equal(now))
			assert.True(t, got["old"].Equal(now.Add(-time.Hour)))
		})
	}
}
