package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"collapses line breaks",
			"void Configure(int a,\n               int b)",
			"void Configure(int a, int b)",
		},
		{
			"removes simple default",
			"void Baz(int x = 5)",
			"void Baz(int x)",
		},
		{
			"removes defaults with nested call",
			"void Bar::Baz(int x = 5, int y = compute(1,2));",
			"void Bar::Baz(int x, int y);",
		},
		{
			"default in string literal survives",
			`void Log(const char* sep = ", ", int level = 0)`,
			"void Log(const char* sep, int level)",
		},
		{
			"alias assignment at depth zero is kept",
			"using Callback = std::function<void(int)>",
			"using Callback = std::function<void(int)>",
		},
		{
			"default containing comparison removed whole",
			"bool Valid(bool strict = x == y)",
			"bool Valid(bool strict)",
		},
		{
			"no defaults is a no-op",
			"void Mix(const Sample& s)",
			"void Mix(const Sample& s)",
		},
		{
			"braced default",
			"void Fill(std::vector<int> v = {1, 2, 3})",
			"void Fill(std::vector<int> v)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minimize(tt.raw))
		})
	}
}

func TestMinimize_Idempotent(t *testing.T) {
	signatures := []string{
		"void Bar::Baz(int x = 5, int y = compute(1,2));",
		"void Configure(int a,\n               int b)",
		`void Log(const char* sep = ", ")`,
		"using Callback = std::function<void(int)>",
		"class Mixer",
		"",
	}

	for _, s := range signatures {
		once := Minimize(s)
		assert.Equal(t, once, Minimize(once), "not idempotent for %q", s)
	}
}

func TestNormalizeDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"class keyword stripped", "class Mixer ", "Mixer"},
		{"namespace keyword stripped", "namespace audio ", "audio"},
		{"enum class loses both words", "enum class Channel ", "Channel"},
		{"struct keyword stripped", "struct Sample ", "Sample"},
		{"template preamble removed", "template<typename T> class Buffer ", "Buffer"},
		{"function untouched", "void Bar::Baz(int x)", "void Bar::Baz(int x)"},
		{"trailing newline trimmed", "class Mixer\n", "Mixer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDisplay(tt.raw))
		})
	}
}
