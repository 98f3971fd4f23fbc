package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	// Short IDs should be returned as-is (dimmed)
	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "hello", Truncate("hello", 0))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "x", OrDash("x"))
	assert.Equal(t, "--", stripANSI(OrDash("  ")))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "LONG HEADER"}, [][]string{{"wide cell", "x"}, {"y"}}))
	assert.Contains(t, got, "A          LONG HEADER")
	assert.Contains(t, got, "wide cell  x")
	assert.Contains(t, got, "─────────")

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTableRight_AlignsMoneyColumn(t *testing.T) {
	got := stripANSI(RenderTableRight(
		[]string{"ACCOUNT", "BALANCE"},
		[][]string{{"Cash", Currency(25000)}, {"with Father", Currency(1200)}},
		1,
	))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ACCOUNT        BALANCE", lines[0])
	assert.Equal(t, "Cash         Rs 25,000", lines[2])
	assert.Equal(t, "with Father   Rs 1,200", lines[3])
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("due soon"))
	assert.Equal(t, "DUE SOON\n────────", got)
}
