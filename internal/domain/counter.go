package domain

import (
	"bytes"
	"regexp"
	"strings"

	m "github.com/pine-marten/cppstat/internal/model"
)

// Macro families recognized across GoogleTest, Catch2, doctest and
// Boost.Test. Both patterns require an opening parenthesis so that a bare
// mention of a macro name does not count.
var (
	testMacroRE = regexp.MustCompile(`\b(?:TEST|TEST_F|TEST_P|TYPED_TEST|TYPED_TEST_P|TEST_CASE|SCENARIO|BOOST_AUTO_TEST_CASE)\s*\(`)

	assertMacroRE = regexp.MustCompile(`\b(?:ASSERT_[A-Z0-9_]+|EXPECT_[A-Z0-9_]+|CHECK_[A-Z0-9_]+|REQUIRE(?:_[A-Z0-9_]+)?|BOOST_CHECK_[A-Z0-9_]+|BOOST_REQUIRE_[A-Z0-9_]+|DOCTEST_CHECK[A-Z0-9_]*|CHECK_THROWS(?:_A|_AS|_.*)?)\s*\(`)
)

// AnalyzeSource scrubs one test file's content and returns its counters:
// test declarations, assertion invocations, and lines with remaining code.
func AnalyzeSource(src string) m.TestStats {
	scrubbed := Scrub(src)

	return m.TestStats{
		Tests:      len(testMacroRE.FindAllStringIndex(scrubbed, -1)),
		Assertions: len(assertMacroRE.FindAllStringIndex(scrubbed, -1)),
		LOC:        CountLOC(scrubbed),
	}
}

// CountLOC returns the number of lines in text that carry any
// non-whitespace content. Run it on scrubbed text so comment-only lines
// and lines holding nothing but literal bodies do not count.
func CountLOC(text string) int {
	count := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return count
}

// CountLines returns the number of physical lines in data. A trailing
// fragment without a final newline counts as a line; an empty file has
// zero lines.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}

	return n
}
