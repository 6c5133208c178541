package commit

import "strings"

type Kind int

const (
	Word Kind = iota
	Digit
	Colon
	LParen
	RParen
	Bang
	Space
	Newline
	End
)

var kindNames = [...]string{
	Word:    "Word",
	Digit:   "Digit",
	Colon:   "Colon",
	LParen:  "LParen",
	RParen:  "RParen",
	Bang:    "Bang",
	Space:   "Space",
	Newline: "Newline",
	End:     "End",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Token is a lexeme of a commit message.
// Offset is the byte offset of Text in the tokenized input.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// Tokenize splits input into tokens, always terminated by an End token.
//
// Runs of blanks other than newline become a single Space token that keeps its raw text.
// Every other run of bytes that is not one of ":()!" or whitespace is a Word, or a Digit
// when it is all ASCII digits. Tokenize never fails.
func Tokenize(input string) []Token {
	tokens := make([]Token, 0, len(input)/3+1)

	i := 0
	for i < len(input) {
		start := i
		c := input[i]

		switch {
		case c == '\n':
			tokens = append(tokens, Token{Kind: Newline, Text: "\n", Offset: start})
			i++
		case isBlank(c):
			for i < len(input) && isBlank(input[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: Space, Text: input[start:i], Offset: start})
		case strings.IndexByte(":()!", c) >= 0:
			tokens = append(tokens, Token{Kind: punctKind(c), Text: input[start : i+1], Offset: start})
			i++
		default:
			for i < len(input) && isWordByte(input[i]) {
				i++
			}
			text := input[start:i]
			kind := Word
			if isDigits(text) {
				kind = Digit
			}
			tokens = append(tokens, Token{Kind: kind, Text: text, Offset: start})
		}
	}

	return append(tokens, Token{Kind: End, Offset: len(input)})
}

func punctKind(c byte) Kind {
	switch c {
	case ':':
		return Colon
	case '(':
		return LParen
	case ')':
		return RParen
	default:
		return Bang
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isWordByte(c byte) bool {
	return c != '\n' && !isBlank(c) && strings.IndexByte(":()!", c) < 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
