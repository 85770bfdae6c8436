package regexp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/regexp"
)

func TestMatchLiteralConcatenation(t *testing.T) {
	n := regexp.Compile("abc")

	require.True(t, n.Match("abc"))
	require.False(t, n.Match("ab"))
	require.False(t, n.Match("abcd"))
}

func TestMatchAlternation(t *testing.T) {
	n := regexp.Compile("(A|B)")

	require.True(t, n.Match("A"))
	require.True(t, n.Match("B"))
	require.False(t, n.Match("C"))
}

func TestMatchAlternationThreeWay(t *testing.T) {
	n := regexp.Compile("(A|B|C)")

	require.True(t, n.Match("A"))
	require.True(t, n.Match("B"))
	require.True(t, n.Match("C"))
	require.False(t, n.Match("D"))
}

func TestMatchStarClosureGroup(t *testing.T) {
	n := regexp.Compile("(A|B)*C")

	for _, s := range []string{"AABC", "C", "BBBBC"} {
		require.True(t, n.Match(s), "expected match: %q", s)
	}
	for _, s := range []string{"ABBA", ""} {
		require.False(t, n.Match(s), "expected no match: %q", s)
	}
}

func TestMatchPlusClosure(t *testing.T) {
	n := regexp.Compile("AB+C")

	require.True(t, n.Match("ABC"))
	require.True(t, n.Match("ABBBBC"))
	require.False(t, n.Match("AC"))
}

func TestMatchOptional(t *testing.T) {
	n := regexp.Compile("AB?C")

	require.True(t, n.Match("ABC"))
	require.True(t, n.Match("AC"))
	require.False(t, n.Match("ABBC"))
}

func TestMatchWildcard(t *testing.T) {
	n := regexp.Compile("A.C")

	require.True(t, n.Match("ABC"))
	require.True(t, n.Match("AXC"))
	require.False(t, n.Match("AC"))
}

func TestMatchRejectsMetacharacterInText(t *testing.T) {
	n := regexp.Compile("A.C")

	require.False(t, n.Match("A.C"))
}

func TestMatchConvenienceFunction(t *testing.T) {
	require.True(t, regexp.Match("(A|B)*C", "AABC"))
	require.False(t, regexp.Match("(A|B)*C", "ABBA"))
}
