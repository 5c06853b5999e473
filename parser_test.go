package gitattributes

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/gitattributes/attr"
)

type want struct {
	pattern string
	attrs   map[string]attr.Value
}

func checkRules(t *testing.T, rules []Rule, expected ...want) {
	t.Helper()
	require.Len(t, rules, len(expected))
	for i, w := range expected {
		assert.Equal(t, w.pattern, rules[i].Pattern, "pattern of rule #%d", i)
		assert.Equal(t, w.attrs, rules[i].Attributes.Map(), "attributes of rule #%d", i)
	}
}

func TestParseEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, input := range []string{"", "# comment\n\n", "\n  \n\t\r\n", "#*.txt text"} {
		rules, err := Parse(input)
		require.NoError(t, err)
		assert.Empty(t, rules, "input %q", input)
	}
}

func TestParseLines(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		input string
		rule  want
	}{
		{"*.sln       merge=binary", want{"*.sln", map[string]attr.Value{
			"merge": attr.Text("binary")}}},
		{"*.png binary", want{"*.png", map[string]attr.Value{
			"binary": attr.Bool(true), "diff": attr.Bool(false)}}},
		{"*.png binary diff", want{"*.png", map[string]attr.Value{
			"binary": attr.Bool(true), "diff": attr.Bool(true)}}},
		{"*.txt crlf=input", want{"*.txt", map[string]attr.Value{
			"crlf": attr.Text("input"), "eol": attr.Text("lf")}}},
		{"*.txt -text", want{"*.txt", map[string]attr.Value{
			"text": attr.Bool(false)}}},
		{`"a b.txt" text`, want{"a b.txt", map[string]attr.Value{
			"text": attr.Bool(true)}}},
		{`"tab\there.txt" -diff`, want{"tab\there.txt", map[string]attr.Value{
			"diff": attr.Bool(false)}}},
		{`"\u00e4\"\\.txt"`, want{"ä\"\\.txt", map[string]attr.Value{}}},
		{"*.txt", want{"*.txt", map[string]attr.Value{}}},
		{"*.txt   \t", want{"*.txt", map[string]attr.Value{}}},
		{"*.txt text\r", want{"*.txt", map[string]attr.Value{
			"text": attr.Bool(true)}}},
		{" *.txt text", want{"", map[string]attr.Value{
			"*.txt": attr.Bool(true), "text": attr.Bool(true)}}},
	}
	for _, test := range tests {
		rules, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		checkRules(t, rules, test.rule)
	}
}

func TestParseKeepsOrderAndDuplicates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "*.txt text\n# comment\n\n*.bin binary\n*.txt -text\n\"unterminated text\n*.md\n"
	rules, err := Parse(input)
	require.NoError(t, err)
	checkRules(t, rules,
		want{"*.txt", map[string]attr.Value{"text": attr.Bool(true)}},
		want{"*.bin", map[string]attr.Value{"binary": attr.Bool(true), "diff": attr.Bool(false)}},
		want{"*.txt", map[string]attr.Value{"text": attr.Bool(false)}},
		want{"*.md", map[string]attr.Value{}},
	)
}

func TestParseDecodeError(t *testing.T) {
	coreTracer := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer func() {
		teardown()
		gtrace.CoreTracer = coreTracer
	}()
	//
	tests := []struct {
		input string
		line  int
	}{
		{`"a\x.txt" text`, 1},
		{"*.txt text\n\"\\u12zz\" -diff", 2},
		{"# comment\n\n\"tab\there\"", 3},
	}
	for _, test := range tests {
		rules, err := Parse(test.input)
		assert.Nil(t, rules)
		var decodeErr *PatternDecodeError
		require.True(t, errors.As(err, &decodeErr), "expected decode error for %q, got %v", test.input, err)
		assert.Equal(t, test.line, decodeErr.Line)
		assert.NotNil(t, errors.Unwrap(err))
	}
	_, err := Parse("\"tab\there\"")
	assert.True(t, errors.Is(err, ErrControlCharacter))
}

func TestParseBOM(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "\xef\xbb\xbf*.txt text\n"
	rules, err := Parse(input)
	require.NoError(t, err)
	checkRules(t, rules, want{"", map[string]attr.Value{ // U+FEFF is a blank
		"*.txt": attr.Bool(true), "text": attr.Bool(true)}})
	//
	rules, err = Parse("\ufeff# c")
	require.NoError(t, err)
	checkRules(t, rules, want{"", map[string]attr.Value{
		"#": attr.Bool(true), "c": attr.Bool(true)}})
	//
	bomAware := NewParser().WithBOMDetection(true)
	rules, err = bomAware.Parse(input)
	require.NoError(t, err)
	checkRules(t, rules, want{"*.txt", map[string]attr.Value{"text": attr.Bool(true)}})
	//
	rules, err = bomAware.Parse("\ufeff# c")
	require.NoError(t, err)
	assert.Empty(t, rules)
	//
	utf16 := "\xff\xfe*\x00.\x00c\x00 \x00t\x00e\x00x\x00t\x00"
	rules, err = bomAware.Parse(utf16)
	require.NoError(t, err)
	checkRules(t, rules, want{"*.c", map[string]attr.Value{"text": attr.Bool(true)}})
}

func TestParseGoldenFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	content, err := os.ReadFile("testdata/sample.gitattributes")
	require.NoError(t, err)
	rules, err := NewParser().WithTracer(gtrace.CoreTracer).Parse(string(content))
	require.NoError(t, err)
	require.Len(t, rules, 12)
	assert.Equal(t, "*", rules[0].Pattern)
	v, ok := rules[0].Attributes.Get("text")
	require.True(t, ok)
	assert.Equal(t, attr.Text("auto"), v)
	assert.Equal(t, "My Documents/*.doc", rules[10].Pattern)
	assert.Equal(t, "[attr]custom", rules[11].Pattern)
	for _, rule := range rules {
		t.Logf("%s", rule)
	}
}

func TestParseConcurrently(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	p := NewParser()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rules, err := p.Parse("*.png binary\n*.txt crlf=input\n")
			if assert.NoError(t, err) && assert.Len(t, rules, 2) {
				assert.Equal(t, 2, rules[1].Attributes.Len())
			}
		}()
	}
	wg.Wait()
}
