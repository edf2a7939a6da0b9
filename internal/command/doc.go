// Package command interprets the placement mini-language embedded in the
// first line of a docstring, e.g. "[audio.Mixer]>" to attach an entity
// under audio.Mixer and make it the cursor for whatever follows.
package command
