package commit

import "strings"

type Footer struct {
	Key   string
	Value string
}

// Breaking reports whether the footer declares a breaking change.
func (f Footer) Breaking() bool {
	return IsBreakingChangeKey(f.Key)
}

// Message is a successfully parsed commit message.
type Message struct {
	Type     string
	Scope    string // empty when absent
	Breaking bool

	// Description holds the subject words, never empty.
	Description []string

	Body    *string // nil when absent
	Footers []Footer

	// Raw is the validated input.
	Raw string
}

func (m *Message) HasScope() bool {
	return m.Scope != ""
}

func (m *Message) Subject() string {
	return strings.Join(m.Description, " ")
}

// Header rebuilds the first line as "type(scope)!: description".
func (m *Message) Header() string {
	var b strings.Builder
	b.WriteString(m.Type)
	if m.HasScope() {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Subject())
	return b.String()
}

// BreakingChange returns the first footer declaring a breaking change.
func (m *Message) BreakingChange() (Footer, bool) {
	for _, f := range m.Footers {
		if f.Breaking() {
			return f, true
		}
	}
	return Footer{}, false
}
