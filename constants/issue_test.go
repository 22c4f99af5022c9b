package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeIssue(t *testing.T) {
	tests := []struct {
		in   string
		want IssueCode
		ok   bool
	}{
		{"", IssueNone, true},
		{"   ", IssueNone, true},
		{"m", IssueMinor, true},
		{"R", IssueMajor, true},
		{"minor", IssueMinor, true},
		{"MONITOR", IssueMinor, true},
		{"repair", IssueMajor, true},
		{"bogus", IssueNone, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeIssue(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestPrintLabel(t *testing.T) {
	assert.Equal(t, "-", IssueNone.PrintLabel())
	assert.Equal(t, "M", IssueMinor.PrintLabel())
	assert.Equal(t, "R", IssueMajor.PrintLabel())
}

func TestIsState(t *testing.T) {
	assert.True(t, IsState("VIC"))
	assert.True(t, IsState(" nsw "))
	assert.False(t, IsState("ZZ"))
	assert.False(t, IsState(""))
	assert.Len(t, States(), 8)
}
