// Package signature derives the comparable part of a native binding
// function's declaration: the parameter types that remain after the two
// fixed JNI context parameters are stripped, plus the return type.
package signature

import (
	"fmt"

	"github.com/vk/jnivet/internal/nativetype"
)

// Fixed context parameter types. Every JNI binding function receives the
// execution environment handle first and the class or instance handle
// second; neither appears in the method descriptor.
const (
	EnvType   = "JNIEnv"
	ClassType = "JClass"
)

// FunctionDecl describes a native binding function as declared: its
// identifier, its ordered parameter type names, and its return type name
// ("" when the function returns nothing).
type FunctionDecl struct {
	Name   string
	Params []string
	Return string
}

// Comparison is the part of a declaration that is matched against a
// descriptor: the parameter type names after the two context parameters,
// and the resolved return type name.
type Comparison struct {
	Params []string
	Return string
}

// ContextError reports a missing or wrong fixed context parameter. Got is
// empty when the parameter is absent entirely.
type ContextError struct {
	Position int // declared parameter index, 0 or 1
	Want     string
	Got      string
}

func (e *ContextError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("function must have a %s parameter at position %d, but the parameter is missing", e.Want, e.Position)
	}
	return fmt.Sprintf("function must have a %s parameter at position %d, instead has %s", e.Want, e.Position, e.Got)
}

// Extract checks the two fixed context parameters and returns the remainder
// of the declaration for descriptor comparison. An absent return type maps
// to the void native type.
func Extract(decl FunctionDecl) (*Comparison, error) {
	for i, want := range []string{EnvType, ClassType} {
		if i >= len(decl.Params) {
			return nil, &ContextError{Position: i, Want: want}
		}
		if decl.Params[i] != want {
			return nil, &ContextError{Position: i, Want: want, Got: decl.Params[i]}
		}
	}

	ret := decl.Return
	if ret == "" {
		ret = nativetype.Void
	}
	return &Comparison{Params: decl.Params[2:], Return: ret}, nil
}
