// Package descriptor parses JNI method descriptors such as
// `(Ljava.lang.String;F)Ljava.lang.String;` into an ordered sequence of
// parameter type tokens plus one return type token. Every token remembers
// its byte offset into the original descriptor so callers can attribute
// failures to an exact position in the source text.
package descriptor
