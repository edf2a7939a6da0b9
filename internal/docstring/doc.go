// Package docstring detects, collects, and normalizes documentation
// comment blocks in C/C++ source lines.
//
// A documentation block opens with a bang comment marker, either line form
// or block form:
//
//	//! Mixes input channels into one stream.
//	/*! Mixes input channels into one stream. */
//
// Line-form blocks extend across consecutive comment lines; block-form
// blocks extend to the close marker. The first line may embed a placement
// command, e.g. "[audio]>", which Collect extracts for the command
// interpreter and removes from the prose.
package docstring
