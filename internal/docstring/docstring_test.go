package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStart(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"line form", "//! Does a thing.", true},
		{"block form", "/*! Does a thing. */", true},
		{"indented line form", "    //! Indented.", true},
		{"tab indented block form", "\t/*! Indented.", true},
		{"plain line comment", "// not documentation", false},
		{"plain block comment", "/* not documentation */", false},
		{"code line", "int x = 0; //! trailing does not start", false},
		{"empty line", "", false},
		{"whitespace only", "   \t ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStart(tt.line))
		})
	}
}

func TestCollect_LineForm(t *testing.T) {
	lines := []string{
		"//! Does a thing.",
		"//! More detail here.",
		"// plain continuation also counts",
		"void DoThing();",
	}

	next, raw, command := Collect(lines, 0)

	assert.Equal(t, 3, next)
	assert.Equal(t, "//! Does a thing.\n//! More detail here.\n// plain continuation also counts", raw)
	assert.Empty(t, command)
}

func TestCollect_BlockForm(t *testing.T) {
	lines := []string{
		"/*! Does a thing.",
		" *  More detail here.",
		" */",
		"void DoThing();",
	}

	next, raw, command := Collect(lines, 0)

	assert.Equal(t, 3, next)
	assert.Equal(t, "/*! Does a thing.\n *  More detail here.\n */", raw)
	assert.Empty(t, command)
}

func TestCollect_BlockFormSingleLine(t *testing.T) {
	lines := []string{
		"/*! One-liner. */",
		"void DoThing();",
	}

	next, raw, _ := Collect(lines, 0)

	assert.Equal(t, 1, next)
	assert.Equal(t, "/*! One-liner. */", raw)
}

func TestCollect_CommandExtraction(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantCommand string
		wantRaw     string
	}{
		{"group only", "//! [audio.Mixer] Attach here.", "[audio.Mixer]", "//! Attach here."},
		{"flags only", "//! > Own children follow.", ">", "//! Own children follow."},
		{"group and flags", "//! [Bar]>^ text", "[Bar]>^", "//! text"},
		{"include as is", "//! ~ verbatim", "~", "//! verbatim"},
		{"unmatched bracket is literal", "//! range [0..n", "", "//! range [0..n"},
		{"no command", "//! Plain prose.", "", "//! Plain prose."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{tt.line}
			_, raw, command := Collect(lines, 0)
			assert.Equal(t, tt.wantCommand, command)
			assert.Equal(t, tt.wantRaw, raw)
		})
	}
}

func TestCollect_StripsBangInPlace(t *testing.T) {
	lines := []string{
		"//! Does a thing.",
		"void DoThing();",
	}

	Collect(lines, 0)

	assert.Equal(t, "// Does a thing.", lines[0])
	assert.False(t, IsStart(lines[0]))
}

func TestCollect_StripsBlockBangInPlace(t *testing.T) {
	lines := []string{
		"  /*! Does a thing. */",
	}

	Collect(lines, 0)

	assert.Equal(t, "  /* Does a thing. */", lines[0])
	assert.False(t, IsStart(lines[0]))
}

func TestCollect_StopsAtNonComment(t *testing.T) {
	lines := []string{
		"//! First block.",
		"void DoThing();",
		"//! Second block.",
	}

	next, raw, _ := Collect(lines, 0)

	assert.Equal(t, 1, next)
	assert.Equal(t, "//! First block.", raw)
}

func TestNormalize_LineForm(t *testing.T) {
	raw := "//! Does a thing.\n//! More detail here."

	text, summary := Normalize(raw)

	assert.Equal(t, "Does a thing.\nMore detail here.", text)
	assert.Equal(t, "Does a thing.", summary)
}

func TestNormalize_BlockForm(t *testing.T) {
	raw := "/*! Does a thing.\n *  More detail here.\n */"

	text, summary := Normalize(raw)

	assert.Equal(t, "Does a thing.\n More detail here.", text)
	assert.Equal(t, "Does a thing.", summary)
}

func TestNormalize_SingleLineBlock(t *testing.T) {
	text, summary := Normalize("/*! One-liner. */")

	assert.Equal(t, "One-liner.", text)
	assert.Equal(t, "One-liner.", summary)
}

func TestNormalize_TrimsBlankLines(t *testing.T) {
	raw := "//!\n//! Body starts here.\n//! And continues.\n//!"

	text, summary := Normalize(raw)

	assert.Equal(t, "Body starts here.\nAnd continues.", text)
	assert.Equal(t, "Body starts here.", summary)
}

func TestNormalize_PreservesInnerBlankLines(t *testing.T) {
	raw := "//! First paragraph.\n//!\n//! Second paragraph."

	text, _ := Normalize(raw)

	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", text)
}

func TestNormalize_Empty(t *testing.T) {
	text, summary := Normalize("//!")

	assert.Empty(t, text)
	assert.Empty(t, summary)
}
