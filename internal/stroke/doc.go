// Package stroke converts stroked paths into filled outlines.
//
// Each subpath is offset to both sides by half the stroke width. The outline
// is the forward offset, the end cap, the reversed backward offset, and the
// start cap. Closed subpaths produce two closed contours instead of caps.
// The output is meant for nonzero-winding fill.
//
// Quadratic and cubic segments are flattened before offsetting. Round joins
// and round caps are emitted as cubic arcs.
//
// The construction follows kurbo's src/stroke.rs and tiny-skia's stroker.
package stroke
