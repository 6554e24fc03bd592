package mimetypes

import (
	"bytes"
	"compress/gzip"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	mimetaberrors "github.com/mimetab/mimetab/pkg/errors"
)

func TestParseTable(t *testing.T) {
	source := strings.Join([]string{
		"image/jpeg jpg jpeg jpe",
		"text/plain txt;text,log",
		"video/mp4\tmp4",
	}, "\n")

	table, err := ParseTable(strings.NewReader(source))
	require.NoError(t, err)

	require.Equal(t, []string{"jpg", "jpeg", "jpe", "txt", "text", "log", "mp4"}, table.Suffixes())
	require.Equal(t, []string{"image/jpeg"}, table.TypesFor("jpg"))
	require.Equal(t, []string{"text/plain"}, table.TypesFor("log"))
	require.Equal(t, []string{"image/jpeg", "text/plain", "video/mp4"}, table.Types())
}

func TestParseTableComments(t *testing.T) {
	source := strings.Join([]string{
		"# header comment",
		"image/png png   # trailing comment",
		"video/jpg          # skipped: no suffix token",
		"   ",
		"",
		"#application/json json",
	}, "\n")

	table, err := ParseTable(strings.NewReader(source))
	require.NoError(t, err)

	require.Equal(t, []string{"png"}, table.Suffixes())
	require.Equal(t, []string{"image/png"}, table.Types())
}

func TestParseTableSkipsLinesWithoutSuffixes(t *testing.T) {
	table, err := ParseTable(strings.NewReader("application/pdf\nimage/gif gif\n"))
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	require.Nil(t, table.TypesFor("pdf"))
	require.NotContains(t, table.Types(), "application/pdf")
}

func TestParseTableMergesDuplicates(t *testing.T) {
	source := strings.Join([]string{
		"video/ogg ogg ogg",
		"audio/ogg ogg",
		"video/ogg ogg ogv",
		"VIDEO/OGG OGG",
	}, "\n")

	table, err := ParseTable(strings.NewReader(source))
	require.NoError(t, err)

	require.Equal(t, []string{"video/ogg", "audio/ogg"}, table.TypesFor("ogg"))
	require.Equal(t, []string{"video/ogg"}, table.TypesFor("ogv"))
	require.Equal(t, []string{"video/ogg", "audio/ogg"}, table.Types())
}

func TestParseTableDelimiters(t *testing.T) {
	table, err := ParseTable(strings.NewReader("text/plain txt;text,log\tconf  def"))
	require.NoError(t, err)

	require.Equal(t, []string{"txt", "text", "log", "conf", "def"}, table.Suffixes())
}

func TestParseTableGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("image/webp webp\nvideo/webm webm\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	table, err := ParseTable(&buf)
	require.NoError(t, err)

	require.Equal(t, []string{"image/webp"}, table.TypesFor("webp"))
	require.Equal(t, []string{"video/webm"}, table.TypesFor("webm"))
}

func TestParseTableRawFallback(t *testing.T) {
	// Not a gzip stream at all; bytes must be interpreted as-is.
	table, err := ParseTable(strings.NewReader("application/json json\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"application/json"}, table.TypesFor("json"))

	// Valid gzip header but truncated body; the source is replayed as raw
	// text, which just yields no associations.
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte("image/png png\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	truncated := buf.Bytes()[:buf.Len()-4]

	table, err = ParseTable(bytes.NewReader(truncated))
	require.NoError(t, err)
	require.Nil(t, table.TypesFor("png"))
}

func TestParseTableLongLine(t *testing.T) {
	// Lines are only bounded by input size, not by the scanner's default
	// token limit.
	line := "application/x-big " + strings.Repeat("a", 80*1024) + " big\n"

	table, err := ParseTable(strings.NewReader(line))
	require.NoError(t, err)
	require.Equal(t, []string{"application/x-big"}, table.TypesFor("big"))
}

func TestParseTableReadError(t *testing.T) {
	_, err := ParseTable(&failingReader{})
	require.Error(t, err)
	require.True(t, mimetaberrors.IsSourceUnreadable(err))
}

type failingReader struct{}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("boom")
}
