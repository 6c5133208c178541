package commit

import "fmt"

// Rule names the production a message violated.
type Rule int

const (
	MissingType Rule = iota + 1
	UnknownType
	MalformedScope
	MissingColonSpace
	EmptyDescription
	DescriptionStartsWithDigit
	MissingBreakingChangeFooter
)

var ruleNames = map[Rule]string{
	MissingType:                 "MissingType",
	UnknownType:                 "UnknownType",
	MalformedScope:              "MalformedScope",
	MissingColonSpace:           "MissingColonSpace",
	EmptyDescription:            "EmptyDescription",
	DescriptionStartsWithDigit:  "DescriptionStartsWithDigit",
	MissingBreakingChangeFooter: "MissingBreakingChangeFooter",
}

func (r Rule) String() string {
	if name, found := ruleNames[r]; found {
		return name
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseError is the only error type returned by Match, Validate and ValidateMessage.
type ParseError struct {
	Rule Rule

	// Position is a byte offset into the validated message.
	Position int

	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %d: expected %s", e.Rule, e.Position, e.Expected)
}

// Is matches any *ParseError carrying the same Rule, so errors.Is(err, &ParseError{Rule: UnknownType}) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Rule == e.Rule
}

func newParseError(rule Rule, pos int, expected string) *ParseError {
	return &ParseError{
		Rule:     rule,
		Position: pos,
		Expected: expected,
	}
}
