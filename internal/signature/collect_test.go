package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect_SingleLine(t *testing.T) {
	lines := []string{"void DoThing();", "int unrelated;"}

	next, raw, ok := Collect(lines, 0)

	assert.True(t, ok)
	assert.Equal(t, 1, next)
	assert.Equal(t, "void DoThing()", raw)
}

func TestCollect_BlankLineMeansNoSignature(t *testing.T) {
	lines := []string{"", "void DoThing();"}

	next, raw, ok := Collect(lines, 0)

	assert.False(t, ok)
	assert.Equal(t, 0, next)
	assert.Empty(t, raw)
}

func TestCollect_PastEndOfFile(t *testing.T) {
	lines := []string{"//! trailing docstring"}

	_, _, ok := Collect(lines, 1)

	assert.False(t, ok)
}

func TestCollect_Terminators(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"statement terminator", "void DoThing();", "void DoThing()"},
		{"block opener", "class Foo {", "class Foo "},
		{"initializer list colon", "Foo::Foo(int x) : x_(x) {", "Foo::Foo(int x) "},
		{"scope operator is not a terminator", "void Bar::Baz();", "void Bar::Baz()"},
		{"terminator inside string literal", `void Emit(const char* s = ";{");`, `void Emit(const char* s = ";{")`},
		{"terminator inside char literal", "void Split(char sep = ';');", "void Split(char sep = ';')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{tt.line}
			_, raw, ok := Collect(lines, 0)
			assert.True(t, ok)
			assert.Equal(t, tt.want, raw)
		})
	}
}

func TestCollect_MultiLine(t *testing.T) {
	lines := []string{
		"void Configure(int a,",
		"               int b,",
		"               int c);",
	}

	next, raw, ok := Collect(lines, 0)

	assert.True(t, ok)
	assert.Equal(t, 3, next)
	assert.Equal(t, "void Configure(int a,\n               int b,\n               int c)", raw)
}

func TestCollect_StripsCommonIndentation(t *testing.T) {
	lines := []string{
		"    void Member(int a,",
		"                int b);",
	}

	_, raw, ok := Collect(lines, 0)

	assert.True(t, ok)
	assert.Equal(t, "void Member(int a,\n            int b)", raw)
}

func TestCollect_NoTerminatorKeepsCollected(t *testing.T) {
	lines := []string{"void Unterminated(int a,", "                  int b"}

	next, raw, ok := Collect(lines, 0)

	assert.True(t, ok)
	assert.Equal(t, 2, next)
	assert.Equal(t, "void Unterminated(int a,\n                  int b", raw)
}
