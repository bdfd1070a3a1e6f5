// Package engine orchestrates file processing for nej. It expands input
// paths, weeds out binary files, runs the emoji transform, and performs
// atomic in-place replacement. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
