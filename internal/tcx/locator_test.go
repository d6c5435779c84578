package tcx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func locatorFixture() *Node {
	return &Node{
		Name: "Lap",
		Children: []*Node{
			{Name: "TotalTimeSeconds", Text: "600"},
			{Name: "Track", Children: []*Node{
				{Name: "Trackpoint", Children: []*Node{
					{Name: "Time", Text: "a"},
				}},
				{Name: "Trackpoint", Children: []*Node{
					{Name: "Time", Text: "b"},
				}},
			}},
			{Name: "Track", Children: []*Node{
				{Name: "Trackpoint", Children: []*Node{
					{Name: "Time", Text: "c"},
				}},
			}},
		},
	}
}

func TestFindAllStrictMatchesSuffixOnly(t *testing.T) {
	root := locatorFixture()

	tracks := collect(FindAll(root, "Track", true))
	require.Len(t, tracks, 2, "strict match must not pick up Trackpoint")

	points := collect(FindAll(root, "Trackpoint", true))
	require.Len(t, points, 3)
}

func TestFindAllLooseMatchesSubstring(t *testing.T) {
	root := locatorFixture()

	// Loose mode matches "Track" anywhere in the tag, Trackpoints included.
	matches := collect(FindAll(root, "Track", false))
	require.Len(t, matches, 5)
}

func TestFindAllIncludesRootAndKeepsDocumentOrder(t *testing.T) {
	root := locatorFixture()

	laps := collect(FindAll(root, "Lap", true))
	require.Len(t, laps, 1)
	require.Same(t, root, laps[0])

	var order []string
	for n := range FindAll(root, "Time", true) {
		order = append(order, n.Text)
	}
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFindAllIsLazy(t *testing.T) {
	root := locatorFixture()

	seen := 0
	for range FindAll(root, "Trackpoint", true) {
		seen++
		break
	}
	require.Equal(t, 1, seen)

	// Re-invoking restarts the traversal from the root.
	require.Len(t, collect(FindAll(root, "Trackpoint", true)), 3)
}

func TestFindFirstAbsentIsNil(t *testing.T) {
	root := locatorFixture()

	require.Nil(t, FindFirst(root, "HeartRateBpm", true))

	first := FindFirst(root, "Time", true)
	require.NotNil(t, first)
	require.Equal(t, "a", first.Text)
}
