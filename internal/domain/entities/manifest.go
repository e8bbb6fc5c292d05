package entities

import (
	"regexp"
	"strings"
)

// Recognized specifier operators, longest first so that the two-character
// forms win over their one-character prefixes.
var clausePattern = regexp.MustCompile(`^(===|==|~=|<=|>=|!=|<|>)\s*(\S+)$`)

// namePattern matches a PEP 508 package name with optional extras, anchored
// at the start of a requirement line.
var namePattern = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(\[[^\]]*\])?`)

// OperatorEq is the only operator that counts as an exact pin.
const OperatorEq = "=="

// SpecifierClause is a single (operator, version) pair of a requirement
// specifier, e.g. (==, "1.0.0").
type SpecifierClause struct {
	Operator string
	Version  string
}

// ParsedRequirement is a manifest line that matched requirement syntax.
type ParsedRequirement struct {
	Name      string // Bare package name, the identity used for registry lookups
	Extras    string // Bracketed extras including brackets, e.g. "[security]", empty if absent
	Specifier []SpecifierClause
	Marker    string // Environment marker after ";", empty if absent
}

// ManifestEntry is one line of the manifest. Exactly one of Requirement or
// raw text is meaningful: when Requirement is nil the entry is a raw line
// (comment, blank, VCS/URL install, or unparseable content) that passes
// through the pipeline untouched.
type ManifestEntry struct {
	LineNumber  int // 1-based, stable identity used for rewriting
	Raw         string
	Requirement *ParsedRequirement
}

// IsRequirement returns true when the entry carries a parsed requirement.
func (e ManifestEntry) IsRequirement() bool {
	return e.Requirement != nil
}

// PinnedVersion returns the exact version when the specifier is a single
// "==" clause, or an empty string for unpinned and range requirements.
func (r *ParsedRequirement) PinnedVersion() string {
	if len(r.Specifier) == 1 && r.Specifier[0].Operator == OperatorEq {
		return r.Specifier[0].Version
	}
	return ""
}

// Render produces the requirement line text for the given exact pin,
// keeping the environment marker when present.
func (r *ParsedRequirement) Render(version string) string {
	line := r.Name + r.Extras + OperatorEq + version
	if r.Marker != "" {
		line += "; " + r.Marker
	}
	return line
}

// ParseManifest turns raw manifest text into an ordered, line-addressable
// sequence of entries. Parsing is purely syntactic: lines that do not match
// requirement syntax become raw entries holding the original text verbatim,
// so the file's line count is always preserved. A trailing newline does not
// produce a phantom last entry.
func ParseManifest(text string) []ManifestEntry {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}

	entries := make([]ManifestEntry, 0, len(lines))
	for i, line := range lines {
		entries = append(entries, ManifestEntry{
			LineNumber:  i + 1,
			Raw:         line,
			Requirement: parseRequirementLine(line),
		})
	}
	return entries
}

// parseRequirementLine parses a single manifest line, returning nil when the
// line is not a plain requirement (comments, blank lines, pip options,
// editable/VCS/URL installs, or malformed specifiers).
func parseRequirementLine(line string) *ParsedRequirement {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	// Pip options (-r, -e, --index-url, ...) and direct URL installs are
	// passed through verbatim.
	if strings.HasPrefix(trimmed, "-") || strings.Contains(trimmed, "://") {
		return nil
	}

	spec := trimmed
	marker := ""
	if idx := strings.Index(trimmed, ";"); idx >= 0 {
		spec = strings.TrimSpace(trimmed[:idx])
		marker = strings.TrimSpace(trimmed[idx+1:])
		if marker == "" {
			return nil
		}
	}

	nameMatch := namePattern.FindStringSubmatch(spec)
	if nameMatch == nil {
		return nil
	}
	rest := strings.TrimSpace(spec[len(nameMatch[0]):])

	clauses, ok := parseSpecifier(rest)
	if !ok {
		return nil
	}

	return &ParsedRequirement{
		Name:      nameMatch[1],
		Extras:    nameMatch[2],
		Specifier: clauses,
		Marker:    marker,
	}
}

// parseSpecifier parses a comma-separated list of operator/version clauses.
// An empty string yields an empty (unconstrained) specifier.
func parseSpecifier(spec string) ([]SpecifierClause, bool) {
	if spec == "" {
		return nil, true
	}

	parts := strings.Split(spec, ",")
	clauses := make([]SpecifierClause, 0, len(parts))
	for _, part := range parts {
		match := clausePattern.FindStringSubmatch(strings.TrimSpace(part))
		if match == nil {
			return nil, false
		}
		clauses = append(clauses, SpecifierClause{
			Operator: match[1],
			Version:  match[2],
		})
	}
	return clauses, true
}
