// Package checker fans binding validation out over a fixed-size worker
// pool and converts engine failures into HCL diagnostics anchored to the
// manifest source. Bindings are mutually independent and the type registry
// is read-only, so workers need no coordination beyond the work channel.
// One failing binding never stops the others from being checked.
package checker
