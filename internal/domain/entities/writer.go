package entities

import "strings"

// RewriteManifest regenerates the manifest text from the parsed entries and
// the full decision set. The output has exactly one line per input line, in
// original order: entries whose decision carries a new version are
// re-rendered as an exact pin, every other line is copied byte-for-byte.
// The trailing-newline behavior of the original text is preserved.
func RewriteManifest(text string, entries []ManifestEntry, decisions []UpdateDecision) string {
	byLine := make(map[int]UpdateDecision, len(decisions))
	for _, decision := range decisions {
		if decision.IsChange() {
			byLine[decision.LineNumber] = decision
		}
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		decision, changed := byLine[entry.LineNumber]
		if changed && entry.IsRequirement() {
			rendered := entry.Requirement.Render(decision.NewVersion)
			// CRLF files split on "\n" keep the "\r" in Raw; carry it over
			// so a rewrite never mixes line endings.
			if strings.HasSuffix(entry.Raw, "\r") {
				rendered += "\r"
			}
			lines = append(lines, rendered)
			continue
		}
		lines = append(lines, entry.Raw)
	}

	out := strings.Join(lines, "\n")
	if strings.HasSuffix(text, "\n") {
		out += "\n"
	}
	return out
}
