package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpParseRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []Snippet{
		{Priority: 3, Cmd: "echo hi", Description: "greet"},
		{Cmd: "for f in *.go; do\n  gofmt -l \"$f\"\ndone", Description: "list\nunformatted files"},
		{Cmd: "\nleading newline", Description: ""},
		{Cmd: "echo '''quoted'''", Description: "ends with a quote '"},
		{Cmd: "printf 'a\\tb'", Description: "tab\tinside"},
	}

	for _, want := range cases {
		got, err := Parse(want.Dump())
		require.NoError(t, err, "dump:\n%s", want.Dump())
		assert.Equal(t, want, got)
	}
}

func TestDumpOfEmptySnippetParsesToEmptyFields(t *testing.T) {
	t.Parallel()

	dump := Snippet{}.Dump()
	assert.Equal(t, "priority = 0\ncmd = '''\n'''\ndescription = '''\n'''", dump)

	got, err := Parse(dump)
	require.NoError(t, err)
	assert.Equal(t, Snippet{}, got)
}

func TestParseAcceptsHandWrittenRecord(t *testing.T) {
	t.Parallel()

	got, err := Parse("cmd = \"ls -la\"\ndescription = \"list files\"")
	require.NoError(t, err)
	assert.Equal(t, Snippet{Cmd: "ls -la", Description: "list files"}, got)
}

func TestParseRejectsMalformedText(t *testing.T) {
	t.Parallel()

	_, err := Parse("cmd = '''unterminated")
	require.Error(t, err)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrMissingField)

	_, err = Parse("cmd = \"ls\"")
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "description")

	_, err = Parse("cmd = \"ls\"\ndescription = \"\"\ntags = [\"x\"]")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "tags")

	_, err = Parse("priority = \"high\"\ncmd = \"ls\"\ndescription = \"\"")
	require.Error(t, err)
}

func TestTitleSkipsBlankLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "make build", Snippet{Cmd: "\n  \n  make build\nmake test"}.Title())
	assert.Equal(t, "", Snippet{}.Title())
}

func TestSameContentIgnoresPriority(t *testing.T) {
	t.Parallel()

	a := Snippet{Priority: 10, Cmd: "ls", Description: "list"}
	b := Snippet{Priority: 0, Cmd: "ls", Description: "list"}
	assert.True(t, a.SameContent(b))
	assert.False(t, a.SameContent(Snippet{Cmd: "ls"}))
}

func TestCloneAllocatesNewBackingArray(t *testing.T) {
	t.Parallel()

	list := []Snippet{{Cmd: "a"}, {Cmd: "b"}}
	dup := Clone(list)
	dup[0].Cmd = "changed"
	assert.Equal(t, "a", list[0].Cmd)
}
