package commit

import (
	"fmt"
	"strings"
)

type matcher struct {
	input  string
	tokens []Token
	pos    int
	cfg    Config
}

func (m *matcher) peek() Token {
	return m.tokens[m.pos]
}

func (m *matcher) next() Token {
	t := m.tokens[m.pos]
	if t.Kind != End {
		m.pos++
	}
	return t
}

// Match walks tokens of input against the header grammar
//
//	type ["(" scope ")"] ["!"] ": " description [newline body/footers]
//
// Productions commit left to right and never backtrack; the first violation is returned as a *ParseError.
// tokens must come from Tokenize(input).
func Match(input string, tokens []Token, cfg Config) (*Message, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != End {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: End, Offset: len(input)})
	}

	m := &matcher{
		input:  input,
		tokens: tokens,
		cfg:    cfg,
	}

	msg := &Message{Raw: input}

	var err *ParseError
	if msg.Type, err = m.matchType(); err != nil {
		return nil, err
	}
	if msg.Scope, err = m.matchScope(); err != nil {
		return nil, err
	}
	msg.Breaking = m.matchBang()
	if err = m.matchSeparator(); err != nil {
		return nil, err
	}
	if msg.Description, err = m.matchDescription(); err != nil {
		return nil, err
	}
	msg.Body, msg.Footers = m.matchRemainder()

	return msg, nil
}

func (m *matcher) matchType() (string, *ParseError) {
	t := m.peek()
	if t.Kind != Word && t.Kind != Digit {
		return "", newParseError(MissingType, 0, "a commit type, one of "+m.typeList())
	}

	m.next()
	if !m.cfg.Allows(t.Text) {
		return "", newParseError(UnknownType, t.Offset, "one of "+m.typeList()+fmt.Sprintf(", got %q", t.Text))
	}
	return t.Text, nil
}

func (m *matcher) matchScope() (string, *ParseError) {
	lparen := m.peek()
	if lparen.Kind != LParen {
		return "", nil
	}
	m.next()

	malformed := newParseError(MalformedScope, lparen.Offset, `a single-word scope such as "(core)"`)

	word := m.next()
	if word.Kind != Word && word.Kind != Digit {
		return "", malformed
	}
	if m.next().Kind != RParen {
		return "", malformed
	}
	return word.Text, nil
}

func (m *matcher) matchBang() bool {
	if m.peek().Kind != Bang {
		return false
	}
	m.next()
	return true
}

func (m *matcher) matchSeparator() *ParseError {
	at := m.peek().Offset
	missing := newParseError(MissingColonSpace, at, `": " after the type`)

	if m.next().Kind != Colon {
		return missing
	}
	if sp := m.next(); sp.Kind != Space || sp.Text != " " {
		return missing
	}
	return nil
}

func (m *matcher) matchDescription() ([]string, *ParseError) {
	first := m.peek()
	empty := newParseError(EmptyDescription, first.Offset, `a description after ": "`)
	if first.Kind == Newline || first.Kind == End {
		return nil, empty
	}
	if first.Kind == Digit || (first.Kind == Word && isDigit(first.Text[0])) {
		return nil, newParseError(DescriptionStartsWithDigit, first.Offset, "a description starting with a word, not a number")
	}

	var words []string
	var word strings.Builder
	hasWord := false
	for {
		t := m.peek()
		if t.Kind == Newline || t.Kind == End {
			break
		}
		m.next()
		hasWord = hasWord || t.Kind == Word || t.Kind == Digit

		if t.Kind == Space {
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
			continue
		}
		word.WriteString(t.Text)
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}

	// punctuation alone is no description
	if !hasWord {
		return nil, empty
	}
	return words, nil
}

// matchRemainder hands everything after the subject line to splitBody.
func (m *matcher) matchRemainder() (*string, []Footer) {
	nl := m.next()
	if nl.Kind != Newline {
		return nil, nil
	}
	return splitBody(m.input[nl.Offset+1:])
}

func (m *matcher) typeList() string {
	return strings.Join(m.cfg.Types(), ", ")
}
