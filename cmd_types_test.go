package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shu-go/git-convy/commit"
)

func TestTypeCatalogue(t *testing.T) {
	cfg := defaultConfig()
	cfg.AdditionalTypes = []string{"wip", "feat", ""}
	cfg.TypeDescriptions.Set("wip", CommitType{Desc: "Work in progress"})
	cfg.TypeDescriptions.Set("unused", CommitType{Desc: "not allowed"})

	cat := typeCatalogue(&cfg)
	assert.Equal(t, append(append([]string{}, commit.BaseTypes...), "wip"), cat.Keys())

	wip, found := cat.Get("wip")
	assert.True(t, found)
	assert.Equal(t, "Work in progress", wip.Desc)

	feat, _ := cat.Get("feat")
	assert.Equal(t, "A new feature", feat.Desc)

	_, found = cat.Get("unused")
	assert.False(t, found)
}

func TestPrintTypes(t *testing.T) {
	cfg := defaultConfig()
	cfg.AdditionalTypes = []string{"wip"}

	var buf bytes.Buffer
	printTypes(&buf, &cfg)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(commit.BaseTypes)+1)
	assert.True(t, strings.HasPrefix(lines[0], "feat"))
	assert.Contains(t, lines[0], "A new feature")
	assert.Equal(t, "wip", strings.TrimSpace(lines[len(lines)-1]))
}
