package mimetypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFromSource(t *testing.T, source string) *Table {
	t.Helper()
	raw, err := ParseTable(strings.NewReader(source))
	require.NoError(t, err)
	return BuildTable(raw)
}

func TestBuildTable(t *testing.T) {
	table := buildFromSource(t, strings.Join([]string{
		"image/jpeg jpg jpeg jpe",
		"video/ogg ogv ogg",
		"audio/ogg oga ogg",
	}, "\n"))

	types, ok := table.TypesForSuffix("ogg")
	require.True(t, ok)
	require.Equal(t, []string{"video/ogg", "audio/ogg"}, types)

	require.Equal(t, []string{"jpg", "jpeg", "jpe"}, table.SuffixesForType("image/jpeg"))
	require.Equal(t, []string{"image/jpeg", "video/ogg", "audio/ogg"}, table.AllTypes())
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(NewRawTable())

	_, ok := table.TypesForSuffix("png")
	require.False(t, ok)
	require.Empty(t, table.SuffixesForType("image/png"))
	require.Empty(t, table.AllTypes())
	require.Equal(t, 0, table.Len())
}

func TestTableBidirectionalConsistency(t *testing.T) {
	table := buildFromSource(t, strings.Join([]string{
		"image/jpeg jpg jpeg jpe",
		"video/ogg ogv ogg",
		"audio/ogg oga ogg spx",
		"text/plain txt text log",
		"video/mp4 mp4",
	}, "\n"))

	// Every (type, suffix) edge must be present in both directions.
	for _, typ := range table.AllTypes() {
		suffixes := table.SuffixesForType(typ)
		require.NotEmpty(t, suffixes)
		for _, suffix := range suffixes {
			types, ok := table.TypesForSuffix(suffix)
			require.True(t, ok)
			require.Contains(t, types, typ)
		}
	}
	for _, suffix := range []string{"jpg", "jpeg", "jpe", "ogv", "ogg", "oga", "spx", "txt", "text", "log", "mp4"} {
		types, ok := table.TypesForSuffix(suffix)
		require.True(t, ok)
		require.NotEmpty(t, types)
		for _, typ := range types {
			require.Contains(t, table.SuffixesForType(typ), suffix)
			require.Contains(t, table.AllTypes(), typ)
		}
	}
}

func TestTableCaseInsensitive(t *testing.T) {
	table := buildFromSource(t, "Image/PNG PNG\n")

	types, ok := table.TypesForSuffix("png")
	require.True(t, ok)
	require.Equal(t, []string{"Image/PNG"}, types)

	upper, ok := table.TypesForSuffix("PNG")
	require.True(t, ok)
	require.Equal(t, types, upper)

	require.Equal(t, []string{"png"}, table.SuffixesForType("image/png"))
	require.Equal(t, []string{"png"}, table.SuffixesForType("IMAGE/PNG"))
}

func TestTableReturnsCopies(t *testing.T) {
	table := buildFromSource(t, "video/mp4 mp4 mp4v\n")

	suffixes := table.SuffixesForType("video/mp4")
	suffixes[0] = "mutated"
	require.Equal(t, []string{"mp4", "mp4v"}, table.SuffixesForType("video/mp4"))

	types, _ := table.TypesForSuffix("mp4")
	types[0] = "mutated"
	fresh, _ := table.TypesForSuffix("mp4")
	require.Equal(t, []string{"video/mp4"}, fresh)

	all := table.AllTypes()
	all[0] = "mutated"
	require.Equal(t, []string{"video/mp4"}, table.AllTypes())
}
