package entities

// CheckEligibility decides whether a parsed requirement may be auto-updated.
// The first matching rule wins:
//
//  1. name in the skip set            -> explicitly-skipped
//  2. registry reports hidden         -> hidden-on-registry
//  3. specifier is a version range    -> pinned-to-range
//  4. otherwise (unpinned or "==")    -> eligible
//
// A version range is more than one clause, or exactly one clause whose
// operator is not "==". Ranges are never auto-narrowed to a single pin.
// The info argument may be nil when the requirement was skipped before any
// registry fetch.
func CheckEligibility(req *ParsedRequirement, skipSet map[string]bool, info *RegistryInfo) (bool, SkipReason) {
	if skipSet[req.Name] {
		return false, SkipExplicit
	}
	if info != nil && info.Hidden {
		return false, SkipHidden
	}
	if isVersionRange(req.Specifier) {
		return false, SkipRange
	}
	return true, ""
}

func isVersionRange(specifier []SpecifierClause) bool {
	if len(specifier) > 1 {
		return true
	}
	return len(specifier) == 1 && specifier[0].Operator != OperatorEq
}
