package cdpdoc

import "strings"

// FormatAnswer renders an answer for display: the answer text followed by
// one "For more details, visit:" line per source URL.
func FormatAnswer(a *Answer) string {
	if a == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(a.Text, "\n"))
	for _, src := range a.Sources {
		b.WriteString("\n\nFor more details, visit: ")
		b.WriteString(src)
	}

	return b.String()
}

// FormatPassages formats retrieved passages for LLM context.
// Uses the passage title if available, falls back to its URL.
// Passages are separated by blank lines.
func FormatPassages(passages []ScoredPassage) string {
	if len(passages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(passages))
	for _, sp := range passages {
		header := sp.Passage.Title
		if header == "" {
			header = sp.Passage.URL
		}
		parts = append(parts, "## Passage: "+header+"\n"+sp.Passage.Text)
	}

	return strings.Join(parts, "\n\n")
}
