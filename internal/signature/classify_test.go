package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/cppdoc-mcp/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.EntityKind
	}{
		{"namespace", "namespace audio ", types.KindNamespace},
		{"class", "class Mixer ", types.KindClass},
		{"struct", "struct Sample ", types.KindRecord},
		{"union", "union Payload ", types.KindRecord},
		{"enum", "enum Flags ", types.KindEnum},
		{"enum class", "enum class Channel ", types.KindEnumClass},
		{"enum struct", "enum struct Channel ", types.KindEnumClass},
		{"typedef", "typedef unsigned long usize", types.KindTypedef},
		{"using alias", "using Samples = std::vector<float>", types.KindUsing},
		{"free function", "void Mix(const Sample& s)", types.KindFunction},
		{"member function", "float Mixer::Gain() const", types.KindFunction},
		{"constructor", "Mixer::Mixer(int channels)", types.KindFunction},
		{"template class", "template<typename T> class Buffer ", types.KindClass},
		{"template struct", "template<typename K, typename V> struct Pair ", types.KindRecord},
		{"template function", "template<typename T> T Clamp(T v, T lo, T hi)", types.KindFunction},
		{"nested template preamble", "template<typename T, template<typename> class C> class Adapter ", types.KindClass},
		{"keyword prefix of identifier", "classify_t classify(int v)", types.KindFunction},
		{"enum as return type prefix", "enumerate_t walk()", types.KindFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	raw := "class Mixer "
	first := Classify(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(raw))
	}
}
