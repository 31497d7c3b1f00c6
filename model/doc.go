// Package model provides the shared value types for paragraph
// reconstruction.
//
// This package defines the geometry primitives and the resolved text style
// descriptor that the rest of the module builds on. It has no behavior of
// its own beyond geometric calculations.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box with union, intersection, and edge accessors
//   - [Point] - 2D point with distance calculation
//
// Coordinates follow the page-description convention: a bottom-up Cartesian
// space where Y increases upward. Downstream renderers that use a top-down
// canvas are responsible for flipping.
//
// # Style
//
// [Style] is a plain value type carrying the resolved style of a text run
// (family, size, weight, slant, color). Style equality is value equality on
// every field except the font size, which the layout engine compares with a
// numeric tolerance. Callers must resolve styles before handing runs to this
// module; a Style never references external state.
package model
