// Package commit validates commit messages against the Conventional Commits grammar.
//
// The pipeline is Tokenize -> Match -> Validate; ValidateMessage runs all three.
// Every stage is a pure function of its input and Config.
package commit

import "sort"

// BaseTypes is the built-in commit type vocabulary.
var BaseTypes = []string{
	"feat",
	"fix",
	"build",
	"chore",
	"ci",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
}

type Config struct {
	// AdditionalTypes are project-specific types allowed on top of BaseTypes.
	AdditionalTypes []string

	// RequireBreakingChangeFooter makes a "!" header demand a BREAKING CHANGE footer.
	RequireBreakingChangeFooter bool
}

func DefaultConfig() Config {
	return Config{
		RequireBreakingChangeFooter: true,
	}
}

// Vocabulary returns BaseTypes and AdditionalTypes as one set.
func (c Config) Vocabulary() map[string]struct{} {
	vocab := make(map[string]struct{}, len(BaseTypes)+len(c.AdditionalTypes))
	for _, t := range BaseTypes {
		vocab[t] = struct{}{}
	}
	for _, t := range c.AdditionalTypes {
		if t == "" {
			continue
		}
		vocab[t] = struct{}{}
	}
	return vocab
}

// Allows reports whether typ is an exact, case-sensitive member of the vocabulary.
func (c Config) Allows(typ string) bool {
	_, found := c.Vocabulary()[typ]
	return found
}

// Types lists the vocabulary sorted, duplicates removed.
func (c Config) Types() []string {
	vocab := c.Vocabulary()
	types := make([]string, 0, len(vocab))
	for t := range vocab {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
