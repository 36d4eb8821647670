package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/pine-marten/cppstat/internal/model"
)

func TestAnalyzeSource(t *testing.T) {
	for _, test := range []struct {
		label, src string
		want       m.TestStats
	}{
		{"empty file", "", m.TestStats{}},
		{"single test with assertion", "TEST(A, B) { ASSERT_EQ(1, 1); }", m.TestStats{Tests: 1, Assertions: 1, LOC: 1}},
		{"macro text in string literal", `const char* s = "TEST(Foo, Bar)";`, m.TestStats{LOC: 1}},
		{"macro text in raw string", `auto s = R"(TEST(Foo, Bar))";`, m.TestStats{LOC: 1}},
		{"macro text in comment", "// TEST(Gone, Away)\nint x;\n", m.TestStats{LOC: 1}},
		{"space before parenthesis", "TEST (Suite, Name) {}\n", m.TestStats{Tests: 1, LOC: 1}},
		{"word boundary guards", "MYTEST(No, Count); RETEST(x);", m.TestStats{LOC: 1}},
		{"fixture and typed variants", "TEST_F(F, A) {}\nTEST_P(P, B) {}\nTYPED_TEST(T, C) {}\nTYPED_TEST_P(T, D) {}\n", m.TestStats{Tests: 4, LOC: 4}},
		{"catch2 and boost declarations", "TEST_CASE(\"x\") {}\nSCENARIO(\"y\") {}\nBOOST_AUTO_TEST_CASE(z) {}\n", m.TestStats{Tests: 3, LOC: 3}},
		{"assertion families", "EXPECT_TRUE(a);\nCHECK_GE(a, b);\nREQUIRE(ok);\nREQUIRE_THROWS_AS(f(), E);\nBOOST_CHECK_EQUAL(a, b);\nBOOST_REQUIRE_CLOSE(a, b, c);\nDOCTEST_CHECK(d);\nCHECK_THROWS_AS(g(), E);\nASSERT_NE(p, q);\n", m.TestStats{Assertions: 9, LOC: 9}},
		{"comment between name and parenthesis", "TEST/*c*/(A, B) {}", m.TestStats{Tests: 1, LOC: 1}},
		{"comment only file", "// a\n/* b\nc */\n", m.TestStats{}},
		{"blank and whitespace lines", "int a;\n\n   \nint b;\n", m.TestStats{LOC: 2}},
		{"declaration split across lines", "TEST(\n  Big, Case) {\n  EXPECT_EQ(1, 2);\n}\n", m.TestStats{Tests: 1, Assertions: 1, LOC: 4}},
		{"assertion name without call", "int ASSERT_EQ;\n", m.TestStats{LOC: 1}},
	} {
		t.Run(test.label, func(t *testing.T) {
			assert.Equal(t, test.want, AnalyzeSource(test.src))
		})
	}
}

func TestCountLOC(t *testing.T) {
	for _, test := range []struct {
		label, text string
		want        int
	}{
		{"empty", "", 0},
		{"single line no newline", "int x;", 1},
		{"single line terminated", "int x;\n", 1},
		{"whitespace only lines", " \n\t\n", 0},
		{"mixed", "a\n\nb\n   \nc", 3},
	} {
		t.Run(test.label, func(t *testing.T) {
			assert.Equal(t, test.want, CountLOC(test.text))
		})
	}
}

func TestCountLines(t *testing.T) {
	for _, test := range []struct {
		label string
		data  []byte
		want  int
	}{
		{"empty", nil, 0},
		{"fragment without newline", []byte("a"), 1},
		{"terminated line", []byte("a\n"), 1},
		{"unterminated last line", []byte("a\nb"), 2},
		{"terminated lines", []byte("a\nb\n"), 2},
		{"blank lines count", []byte("\n\n"), 2},
	} {
		t.Run(test.label, func(t *testing.T) {
			assert.Equal(t, test.want, CountLines(test.data))
		})
	}
}
