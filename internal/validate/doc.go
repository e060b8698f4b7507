// Package validate is the engine that checks a native binding function
// against the JNI method descriptor it claims to implement. A single call
// runs four stages in a fixed order and returns the first violation as a
// tagged, positionally attributed error: the Java_<Class>_<method> naming
// convention, the two fixed context parameters, the per-position parameter
// types against the parsed descriptor, and the return type.
//
// Validation is a pure function of the request and the read-only type
// registry: it performs no I/O, shares no mutable state, and independent
// calls may run concurrently without coordination.
package validate
