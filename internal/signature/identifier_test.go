package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"class", "class Mixer ", "Mixer"},
		{"namespace", "namespace audio ", "audio"},
		{"scoped class", "class audio::Mixer ", "audio::Mixer"},
		{"free function", "void Mix(const Sample& s)", "Mix"},
		{"member function", "void Bar::Baz(int x)", "Bar::Baz"},
		{"constructor", "Mixer(int channels)", "Mixer"},
		{"qualified constructor", "Mixer::Mixer(int channels)", "Mixer::Mixer"},
		{"destructor", "~Mixer()", "~Mixer"},
		{"qualified destructor", "Mixer::~Mixer()", "Mixer::~Mixer"},
		{"virtual destructor", "virtual ~Mixer()", "~Mixer"},
		{"operator overload", "bool operator==(const Mixer& other)", "operator=="},
		{"member operator overload", "bool Mixer::operator==(const Mixer& other)", "Mixer::operator=="},
		{"conversion operator", "Mixer::operator bool()", "Mixer::operator"},
		{"template function", "template<typename T> T Clamp(T v, T lo, T hi)", "Clamp"},
		{"template class", "template<typename T> class Buffer ", "Buffer"},
		{"template return type", "std::vector<float> Mixer::Samples() const", "Mixer::Samples"},
		{"template with inner comma", "std::map<std::string, int> Lookup()", "Lookup"},
		{"enum class", "enum class Channel ", "Channel"},
		{"enum struct", "enum struct Channel ", "Channel"},
		{"plain enum", "enum Flags ", "Flags"},
		{"pointer sigil attached", "void *Allocate(size_t n)", "Allocate"},
		{"reference sigil attached", "Sample &Front()", "Front"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIdentifier(tt.raw))
		})
	}
}
