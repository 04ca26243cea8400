/*
Package events defines the markup event model consumed by the gradebook
decoders.

An event sequence is the tokenized form of a markup document: element
start and end events, text and whitespace. A Cursor is a mutable,
single-pass handle over one sequence; every decoder in a decode call
shares the same Cursor, advancing a single position through the
document. Tokenize adapts an io.Reader into an event sequence using
encoding/xml.
*/
package events
