package constants

import "strings"

// StateCode is an Australian registration jurisdiction.
type StateCode string

const (
	StateACT StateCode = "ACT"
	StateNSW StateCode = "NSW"
	StateNT  StateCode = "NT"
	StateQLD StateCode = "QLD"
	StateSA  StateCode = "SA"
	StateTAS StateCode = "TAS"
	StateVIC StateCode = "VIC"
	StateWA  StateCode = "WA"
)

var allStates = []StateCode{
	StateACT, StateNSW, StateNT, StateQLD, StateSA, StateTAS, StateVIC, StateWA,
}

// States returns the jurisdiction codes in display order.
func States() []string {
	result := make([]string, len(allStates))
	for i, s := range allStates {
		result[i] = string(s)
	}
	return result
}

// IsState reports whether input names a known jurisdiction (case-insensitive).
func IsState(input string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, s := range allStates {
		if normalized == string(s) {
			return true
		}
	}
	return false
}
