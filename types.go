package main

import (
	"time"

	"github.com/shu-go/orderedmap"

	"github.com/shu-go/git-convy/commit"
)

type CommitType struct {
	Desc  string `json:"description,omitempty" yaml:"description,omitempty"`
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// Config is the content of a .convy.yaml / .convy.json file.
type Config struct {
	AdditionalTypes []string `json:"additional_types,omitempty" yaml:"additional_types,omitempty"`

	// nil means true
	RequireBreakingChangeFooter *bool `json:"require_breaking_change_footer,omitempty" yaml:"require_breaking_change_footer,omitempty"`

	TypeDescriptions *orderedmap.OrderedMap[string, CommitType] `json:"type_descriptions,omitempty" yaml:"type_descriptions,omitempty"`
}

func (c Config) commitConfig() commit.Config {
	cfg := commit.DefaultConfig()
	cfg.AdditionalTypes = append([]string(nil), c.AdditionalTypes...)
	if c.RequireBreakingChangeFooter != nil {
		cfg.RequireBreakingChangeFooter = *c.RequireBreakingChangeFooter
	}
	return cfg
}

type Scopes map[string]time.Time
