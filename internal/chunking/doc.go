// Package chunking splits document content into overlapping,
// semantically-bounded chunks sized near a configured target.
//
// Splitting is type-aware: markdown breaks at headers and blank lines,
// code breaks at blank lines between top-level blocks, and everything
// else breaks at paragraph boundaries. Sections are accumulated into
// chunks with a trailing-overlap seed between consecutive chunks.
package chunking
