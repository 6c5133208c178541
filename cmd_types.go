package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyokomi/emoji/v2"
	"github.com/shu-go/orderedmap"

	"github.com/shu-go/git-convy/commit"
)

var typeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))

type typesCmd struct {
}

func (c typesCmd) Run(g globalCmd, args []string) error {
	g.setupLogger()

	// outside a repository the current directory is searched
	repos, _ := openRepository(".")
	cfg, _, err := readConfigFile(repos)
	if err != nil {
		return err
	}

	printTypes(os.Stdout, cfg)
	return nil
}

// typeCatalogue lists every allowed type, built-in ones first, with descriptions
// from the config overriding the defaults.
func typeCatalogue(cfg *Config) *orderedmap.OrderedMap[string, CommitType] {
	defaults := defaultCommitTypes()

	cat := orderedmap.New[string, CommitType]()
	for _, t := range commit.BaseTypes {
		ct, _ := defaults.Get(t)
		cat.Set(t, ct)
	}
	for _, t := range cfg.AdditionalTypes {
		if t == "" {
			continue
		}
		if _, found := cat.Get(t); !found {
			cat.Set(t, CommitType{})
		}
	}

	if cfg.TypeDescriptions != nil {
		for _, t := range cfg.TypeDescriptions.Keys() {
			if _, found := cat.Get(t); !found {
				continue
			}
			ct, _ := cfg.TypeDescriptions.Get(t)
			cat.Set(t, ct)
		}
	}

	return cat
}

func printTypes(w io.Writer, cfg *Config) {
	cat := typeCatalogue(cfg)

	width := 0
	for _, t := range cat.Keys() {
		width = max(width, len(t))
	}

	for _, t := range cat.Keys() {
		ct, _ := cat.Get(t)
		line := typeStyle.Render(t+strings.Repeat(" ", width-len(t))) + "  "
		if e := strings.TrimSpace(emoji.Emojize(ct.Emoji)); e != "" {
			line += e + " "
		}
		line += ct.Desc
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
