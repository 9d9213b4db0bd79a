// Package buffer implements the byte-indexed UTF-8 text storage for sable.
//
// All offsets are byte offsets into the document. Mutation offsets must be
// grapheme cluster boundaries; IsBoundary answers boundary queries with
// UAX #29 semantics.
package buffer
