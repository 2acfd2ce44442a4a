// Package memory provides an in-memory inverted index implementing
// the driven.SearchIndex port.
//
// It maps tokens to posting sets of chunk IDs and scores queries by
// token overlap. This stands where a real search engine or vector
// database would sit in production; the port boundary makes the swap
// a wiring change.
package memory
