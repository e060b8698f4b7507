// Package nativetype provides the registry mapping the closed set of native
// binding type names (jint, jstring, jobjectArray, ...) to the descriptor
// fragments each may legally represent.
//
// Patterns test a token's literal text, not its semantic kind, so several
// native types may accept the same fragment: both jobject and jstring match
// "Ljava.lang.String;". Callers must therefore always start from the
// declared native type and ask whether a fragment satisfies it, never try to
// infer the native type from a fragment.
package nativetype
