package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulk(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Entry
	}{
		{
			name:     "simple",
			text:     "A=1\nB=2\n",
			expected: []Entry{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}},
		},
		{
			name:     "keeps input order",
			text:     "ZED=1\nALPHA=2\nMID=3\n",
			expected: []Entry{{Key: "ZED", Value: "1"}, {Key: "ALPHA", Value: "2"}, {Key: "MID", Value: "3"}},
		},
		{
			name:     "comments quotes and export",
			text:     "# comment\nexport TOKEN=\"a b\"\nURL='http://x?y=1' # trailing\n\n",
			expected: []Entry{{Key: "TOKEN", Value: "a b"}, {Key: "URL", Value: "http://x?y=1"}},
		},
		{
			name:     "multi-line value",
			text:     "CERT=\"line1\nline2\"\nNEXT=1\n",
			expected: []Entry{{Key: "CERT", Value: "line1\nline2"}, {Key: "NEXT", Value: "1"}},
		},
		{
			name:     "dollar signs are kept literally",
			text:     "TOKEN=abc$HOME\nPASS=\"p$XYZ9w\"\nBRACED=${SECRET}x\nRAW=pa$$word\nSINGLE='$KEEP'\n",
			expected: []Entry{
				{Key: "TOKEN", Value: "abc$HOME"},
				{Key: "PASS", Value: "p$XYZ9w"},
				{Key: "BRACED", Value: "${SECRET}x"},
				{Key: "RAW", Value: "pa$$word"},
				{Key: "SINGLE", Value: "$KEEP"},
			},
		},
		{
			name:     "assignment text inside a multi-line value",
			text:     "A=\"line1\nB=inside\"\nC=3\nB=2\n",
			expected: []Entry{{Key: "A", Value: "line1\nB=inside"}, {Key: "C", Value: "3"}, {Key: "B", Value: "2"}},
		},
		{
			name:     "multi-line single-quoted value with comment text",
			text:     "KEY='-----BEGIN-----\n# not a comment\nX=1\n-----END-----'\nNEXT=$1\n",
			expected: []Entry{{Key: "KEY", Value: "-----BEGIN-----\n# not a comment\nX=1\n-----END-----"}, {Key: "NEXT", Value: "$1"}},
		},
		{
			name:     "export prefixes",
			text:     "export A=1\nexport B=\"two $2\"\nC=3\n",
			expected: []Entry{{Key: "A", Value: "1"}, {Key: "B", Value: "two $2"}, {Key: "C", Value: "3"}},
		},
		{
			name:     "repeated key keeps first position and last value",
			text:     "A=1\nB=2\nA=3\n",
			expected: []Entry{{Key: "A", Value: "3"}, {Key: "B", Value: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseBulk(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestParseBulkErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{name: "empty", text: "", kind: KindEmptyInput},
		{name: "whitespace", text: " \n\t\n", kind: KindEmptyInput},
		{name: "only comments", text: "# nothing here\n", kind: KindEmptyInput},
		{name: "invalid key", text: "foo-bar=1\n", kind: KindValidation},
		{name: "empty value", text: "A=\n", kind: KindValidation},
		{name: "not an assignment", text: "A=1\njust words\n", kind: KindValidation},
		{name: "unterminated quote", text: "A=\"open\nB=2\n", kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBulk(tt.text)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), err.Error())
		})
	}
}
