package commit

// Validate applies the checks that follow a successful Match.
// The draft is returned unchanged when it passes.
func Validate(draft *Message, cfg Config) (*Message, error) {
	if !draft.Breaking || !cfg.RequireBreakingChangeFooter {
		return draft, nil
	}

	if _, found := draft.BreakingChange(); !found {
		return nil, newParseError(MissingBreakingChangeFooter, len(draft.Raw),
			`a "BREAKING CHANGE: <description>" footer for a commit marked with "!"`)
	}
	return draft, nil
}

// ValidateMessage tokenizes, matches and validates raw.
// A non-nil error is always a *ParseError.
func ValidateMessage(raw string, cfg Config) (*Message, error) {
	draft, err := Match(raw, Tokenize(raw), cfg)
	if err != nil {
		return nil, err
	}
	return Validate(draft, cfg)
}
