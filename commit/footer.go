package commit

import "strings"

const breakingChangeKey = "BREAKING CHANGE"

// IsBreakingChangeKey reports whether a footer key is BREAKING CHANGE or BREAKING-CHANGE,
// ignoring case and how the two words are separated.
func IsBreakingChangeKey(key string) bool {
	return normalizeFooterKey(key) == breakingChangeKey
}

func normalizeFooterKey(key string) string {
	key = strings.ToUpper(strings.ReplaceAll(key, "-", " "))
	return strings.Join(strings.Fields(key), " ")
}

// parseFooterLine splits "Key: value" or "Key #value".
// Key is a single token of letters, digits, '-' and '_', except for the breaking change key which may contain a space.
func parseFooterLine(line string) (Footer, bool) {
	idx, sepLen := -1, 0
	if i := strings.Index(line, ": "); i >= 0 {
		idx, sepLen = i, 2
	}
	if i := strings.Index(line, " #"); i >= 0 && (idx < 0 || i < idx) {
		idx, sepLen = i, 2
	}
	if idx <= 0 {
		return Footer{}, false
	}

	key := line[:idx]
	if !isFooterToken(key) && !IsBreakingChangeKey(key) {
		return Footer{}, false
	}

	return Footer{
		Key:   key,
		Value: strings.TrimSpace(line[idx+sepLen:]),
	}, true
}

func isFooterToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', isDigit(c), c == '-', c == '_':
		default:
			return false
		}
	}
	return s != ""
}

type paragraph struct {
	lines      []string
	start, end int // byte range within the remainder
}

// splitBody separates the text after the subject line into a body and trailing footer paragraphs.
// A paragraph belongs to the footers when its first line is a footer; its other lines
// either start new footers or continue the previous value.
func splitBody(rest string) (*string, []Footer) {
	paras := paragraphs(rest)
	if len(paras) == 0 {
		return nil, nil
	}

	first := len(paras)
	for first > 0 {
		if _, ok := parseFooterLine(paras[first-1].lines[0]); !ok {
			break
		}
		first--
	}

	var footers []Footer
	for _, p := range paras[first:] {
		for _, line := range p.lines {
			if f, ok := parseFooterLine(line); ok {
				footers = append(footers, f)
				continue
			}
			last := &footers[len(footers)-1]
			last.Value += "\n" + strings.TrimSpace(line)
		}
	}

	var body *string
	if first > 0 {
		text := rest[paras[0].start:paras[first-1].end]
		body = &text
	}

	return body, footers
}

func paragraphs(text string) []paragraph {
	var paras []paragraph
	var cur *paragraph

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		start := offset
		offset += len(line)
		content := strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(content) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			paras = append(paras, paragraph{start: start})
			cur = &paras[len(paras)-1]
		}
		cur.lines = append(cur.lines, content)
		cur.end = start + len(content)
	}

	return paras
}
