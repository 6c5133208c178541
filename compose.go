package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	prompt "github.com/elk-language/go-prompt"
	pstrings "github.com/elk-language/go-prompt/strings"
	git "github.com/go-git/go-git/v5"
	"github.com/kyokomi/emoji/v2"
	"github.com/shu-go/orderedmap"

	"github.com/shu-go/git-convy/commit"
)

// composer asks for the parts of a commit message.
type composer struct {
	cfg   *Config
	types *orderedmap.OrderedMap[string, CommitType]

	scopesFileName string
	scopes         Scopes
}

func newComposer(repos *git.Repository, cfg *Config) *composer {
	c := &composer{
		cfg:   cfg,
		types: typeCatalogue(cfg),
	}

	c.scopes, c.scopesFileName = readScopesFile(repos)
	if c.scopes == nil {
		c.scopes = make(Scopes)
	}

	return c
}

func (c *composer) buildupCommitMessage() string {
	typ := c.promptType()
	scope := c.promptScope()
	desc := c.promptDesc()
	body := c.promptBody()
	breakingChange := c.promptBreakingChange()

	if scope != "" && c.scopesFileName != "" {
		c.scopes[scope] = time.Now()
		if err := writeScopesFile(c.scopesFileName, c.scopes); err != nil {
			logger.Warn("write scopes", "path", c.scopesFileName, "err", err)
		}
	}

	return assembleMessage(typ, scope, desc, body, breakingChange)
}

// assembleMessage lays out a message the grammar accepts; a non-empty breakingChange
// sets "!" and adds the footer.
func assembleMessage(typ, scope, desc, body, breakingChange string) string {
	header := &commit.Message{
		Type:        typ,
		Scope:       scope,
		Breaking:    breakingChange != "",
		Description: strings.Fields(desc),
	}
	msg := header.Header()

	if body != "" {
		msg += "\n\n" + body
	}
	if breakingChange != "" {
		msg += "\n\nBREAKING CHANGE: " + breakingChange
	}

	return msg
}

// writeScopesFile stores the history newest first.
func writeScopesFile(filename string, scopes Scopes) error {
	type tmpscope struct {
		scope string
		ts    time.Time
	}
	sclist := []tmpscope{}
	for k, v := range scopes {
		sclist = append(sclist, tmpscope{
			scope: k,
			ts:    v,
		})
	}
	sort.Slice(sclist, func(i, j int) bool {
		return sclist[i].ts.After(sclist[j].ts)
	})

	outscope := orderedmap.New[string, time.Time]()
	for _, s := range sclist {
		outscope.Set(s.scope, s.ts)
	}

	content, err := encode(filename, outscope)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, content, 0o644)
}

func completer(items []prompt.Suggest) func(prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
	return func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		return prompt.FilterHasPrefix(items, w, true), startIndex, endIndex
	}
}

func (c *composer) promptType() string {
	cfg := c.cfg.commitConfig()

	items := make([]prompt.Suggest, 0, len(c.types.Keys()))
	for _, k := range c.types.Keys() {
		ct, _ := c.types.Get(k)
		items = append(items, prompt.Suggest{
			Text:        k,
			Description: strings.TrimSpace(c.emojiOf(k) + " " + ct.Desc),
		})
	}

	var typ string
	for typ == "" {
		typ = prompt.Input(prompt.WithPrefix("Type: "), prompt.WithCompleter(completer(items)), prompt.WithShowCompletionAtStart())
		typ = strings.TrimSpace(typ)
		if typ == "" {
			fmt.Fprintln(os.Stderr, "type is required")
			continue
		}
		if !cfg.Allows(typ) {
			fmt.Fprintf(os.Stderr, "unknown type %q, allowed: %s\n", typ, strings.Join(cfg.Types(), ", "))
			typ = ""
		}
	}

	return typ
}

func (c *composer) promptScope() string {
	items := make([]prompt.Suggest, 0, len(c.scopes))
	for s, t := range c.scopes {
		items = append(items, prompt.Suggest{
			Text:        s,
			Description: t.Local().Format(time.RFC3339),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Description > items[j].Description
	})
	// timestamps are not shown
	for i := range items {
		items[i].Description = ""
	}

	for {
		scope := prompt.Input(
			prompt.WithPrefix("Scope: "),
			prompt.WithCompleter(completer(items)),
			prompt.WithShowCompletionAtStart(),
		)
		scope = strings.TrimSpace(scope)
		if !strings.ContainsAny(scope, " \t()!:") {
			return scope
		}
		fmt.Fprintln(os.Stderr, "scope must be a single word")
	}
}

func (c *composer) promptDesc() string {
	for {
		desc := prompt.Input(prompt.WithPrefix("Description: "), prompt.WithCompleter(completer(nil)))
		desc = strings.TrimSpace(desc)
		if desc != "" {
			return desc
		}
		fmt.Fprintln(os.Stderr, "description required")
	}
}

func (c *composer) promptBody() string {
	var body string

	fmt.Println("Body: (Enter 2 empty lines to finish)")

	prevEmpty := false
	buf := bufio.NewReader(os.Stdin)
	for {
		linebyte, _, err := buf.ReadLine()
		if err != nil {
			break
		}

		line := strings.TrimSpace(string(linebyte))

		if line == "" {
			if prevEmpty {
				break
			}
			prevEmpty = true
		} else {
			prevEmpty = false
		}

		if body != "" {
			body += "\n"
		}
		body += line
	}

	return strings.TrimSpace(body)
}

func (c *composer) promptBreakingChange() string {
	bc := prompt.Input(prompt.WithPrefix("BREAKING CHANGE (empty if none): "), prompt.WithCompleter(completer(nil)))
	return strings.TrimSpace(bc)
}

func (c *composer) emojiOf(typ string) string {
	if ct, found := c.types.Get(typ); found {
		return strings.TrimSpace(emoji.Emojize(ct.Emoji))
	}
	return ""
}
