// Package format holds the closed pixel-format catalog and the per-format
// facts the render graph needs: element size, plane count and aspect mask.
// All tables are statically initialized and read-only.
package format
