// Package sequencer turns one scroll progress value into everything the
// showcase draws: a target frame for the flipbook canvas, local progress for
// each gated window, and the interpolated properties of every timeline item.
//
// Everything here is a pure function of progress and static configuration,
// except Cursor and ScrollSource which carry numeric state between ticks.
package sequencer
