package constants

import (
	"strings"
)

// IssueCode classifies a finding against a single inspection point.
type IssueCode string

// Stable values (store these exact strings).
const (
	IssueNone  IssueCode = ""
	IssueMinor IssueCode = "M" // monitor
	IssueMajor IssueCode = "R" // repair required
)

var allIssueCodes = []IssueCode{
	IssueNone,
	IssueMinor,
	IssueMajor,
}

// CanonicalizeIssue maps free-form input onto a known issue code.
// Unknown input falls back to IssueNone.
func CanonicalizeIssue(input string) (IssueCode, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return IssueNone, true
	}

	synonyms := map[string]IssueCode{
		"MINOR":   IssueMinor,
		"MONITOR": IssueMinor,
		"MAJOR":   IssueMajor,
		"REPAIR":  IssueMajor,
	}
	if code, ok := synonyms[normalized]; ok {
		return code, true
	}

	for _, code := range allIssueCodes {
		if normalized == string(code) {
			return code, true
		}
	}
	return IssueNone, false
}

// PrintLabel is the mark rendered on the printed checklist for this code.
func (c IssueCode) PrintLabel() string {
	if c == IssueNone {
		return "-"
	}
	return strings.ToUpper(string(c))
}
