package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	in := "feat: x\n\nbody\n# Please enter the commit message\n#\n  # indented stays\n"
	assert.Equal(t, "feat: x\n\nbody\n  # indented stays\n", stripComments(in))
	assert.Equal(t, "", stripComments("# only\n"))
}

func TestStripCommentsScissors(t *testing.T) {
	in := "feat!: x\n\nBREAKING CHANGE: y\n" +
		"# Please enter the commit message\n" +
		"# ------------------------ >8 ------------------------\n" +
		"# Do not modify or remove the line above.\n" +
		"diff --git a/main.go b/main.go\n" +
		"+added line\n"
	assert.Equal(t, "feat!: x\n\nBREAKING CHANGE: y\n", stripComments(in))

	crlf := "fix: x\r\n# ------------------------ >8 ------------------------\r\ndiff\r\n"
	assert.Equal(t, "fix: x\r\n", stripComments(crlf))
}

func TestCheckVerboseCommitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	content := "feat(core)!: drop API\n\nBREAKING CHANGE: removed foo\n" +
		"# ------------------------ >8 ------------------------\n" +
		"diff --git a/foo.go b/foo.go\n" +
		"-func Foo() {}\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	raw, err := checkCmd{File: file}.message(nil, nil)
	require.NoError(t, err)

	cfg := defaultConfig()
	var stdout, stderr bytes.Buffer
	msg, err := validate(&stdout, &stderr, raw, &cfg)
	require.NoError(t, err)
	assert.True(t, msg.Breaking)
	assert.Len(t, msg.Footers, 1)
}

func TestCheckMessageSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(file, []byte("fix: from file\n# comment\n"), 0o644))

	msg, err := checkCmd{File: file}.message([]string{"ignored"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "fix: from file\n", msg)

	msg, err = checkCmd{}.message([]string{"fix:", "from args"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "fix: from args", msg)

	msg, err = checkCmd{}.message(nil, strings.NewReader("fix: from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "fix: from stdin\n", msg)

	_, err = checkCmd{File: filepath.Join(dir, "missing")}.message(nil, nil)
	assert.Error(t, err)
}

func TestValidateReport(t *testing.T) {
	cfg := defaultConfig()

	t.Run("valid", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		msg, err := validate(&stdout, &stderr, "feat(core): add x", &cfg)
		require.NoError(t, err)
		assert.Equal(t, "core", msg.Scope)
		assert.Contains(t, stdout.String(), "Commit message is valid!")
		assert.Empty(t, stderr.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		msg, err := validate(&stdout, &stderr, "fix:bug", &cfg)
		assert.Nil(t, msg)
		assert.ErrorIs(t, err, errInvalidMessage)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Error:")
		assert.Contains(t, stderr.String(), `MissingColonSpace at 3: expected ": " after the type`)
		assert.Contains(t, stderr.String(), "fix:bug\n   ^")
	})

	t.Run("additional types", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		_, err := validate(&stdout, &stderr, "wip: stuff", &cfg)
		assert.ErrorIs(t, err, errInvalidMessage)
		assert.Contains(t, stderr.String(), "UnknownType at 0")

		withWip := defaultConfig()
		withWip.AdditionalTypes = []string{"wip"}
		_, err = validate(&stdout, &stderr, "wip: stuff", &withWip)
		assert.NoError(t, err)
	})
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "fix:bug\n   ^", excerpt("fix:bug", 3))
	assert.Equal(t, "second\n  ^", excerpt("first\nsecond\nthird", 8))
	assert.Equal(t, "feat!: x\n        ^", excerpt("feat!: x", 8))
	assert.Equal(t, "", excerpt("feat!: x\n", 9))
	assert.Equal(t, "", excerpt("", 0))
}
