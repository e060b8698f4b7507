package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/jnivet/internal/descriptor"
	"github.com/vk/jnivet/internal/nativetype"
	"github.com/vk/jnivet/internal/signature"
)

// Request carries everything needed to check one binding: the logical Java
// method name, the raw method descriptor, and the native function's
// declaration.
type Request struct {
	MethodName string
	Descriptor string
	Function   signature.FunctionDecl
}

// Validate checks that the declared function is binary-compatible with the
// descriptor and follows the JNI naming convention. It returns nil on
// success or a *Error tagged with the first violated invariant. The call is
// deterministic: identical requests always produce identical outcomes.
func Validate(reg *nativetype.Registry, req Request) error {
	sig, err := descriptor.Parse(req.Descriptor)
	if err != nil {
		var perr *descriptor.ParseError
		if errors.As(err, &perr) {
			return newError(KindMalformedDescriptor, perr.Offset, -1, "%s", perr.Error())
		}
		return newError(KindMalformedDescriptor, -1, -1, "%s", err.Error())
	}

	if err := checkName(req.Function.Name, req.MethodName); err != nil {
		return err
	}

	cmp, err := signature.Extract(req.Function)
	if err != nil {
		var cerr *signature.ContextError
		if errors.As(err, &cerr) {
			return newError(KindMissingOrWrongContextParameter, -1, cerr.Position, "%s", cerr.Error())
		}
		return newError(KindMissingOrWrongContextParameter, -1, -1, "%s", err.Error())
	}

	if err := checkParams(reg, sig, cmp); err != nil {
		return err
	}
	return checkReturn(reg, sig, cmp)
}

// checkName enforces the Java_<Suffix>_<method> linker naming convention.
// The method name is compared literally, as an exact suffix, so names
// containing underscores or regexp metacharacters can never over- or
// under-match.
func checkName(function, method string) *Error {
	suffix := "_" + method
	if strings.HasPrefix(function, "Java_") &&
		strings.HasSuffix(function, suffix) &&
		len(function) > len("Java_")+len(suffix) {
		return nil
	}
	return newError(KindNamingConventionMismatch, -1, -1,
		"function name %s doesn't match the java method, expected Java_<ClassName>_%s", function, method)
}

// checkParams pairs the descriptor's parameter tokens with the declared
// native types positionally. All failing pairs are reported in one error;
// ParamIndex and Offset point at the first.
func checkParams(reg *nativetype.Registry, sig *descriptor.Signature, cmp *signature.Comparison) *Error {
	if len(sig.Params) != len(cmp.Params) {
		return newError(KindParameterCountMismatch, -1, -1,
			"descriptor declares %d parameter(s) but the function declares %d (excluding %s and %s)",
			len(sig.Params), len(cmp.Params), signature.EnvType, signature.ClassType)
	}

	var failures []string
	first := -1
	for i, name := range cmp.Params {
		pattern, ok := reg.Lookup(name)
		if !ok {
			return newError(KindUnknownNativeType, sig.Params[i].Offset, i,
				"parameter %d has no descriptor mapping for native type %s", i, name)
		}
		if !pattern.Matches(sig.Params[i].Raw) {
			if first < 0 {
				first = i
			}
			failures = append(failures, fmt.Sprintf("parameter %d: %s does not accept %q", i, name, sig.Params[i].Raw))
		}
	}
	if len(failures) > 0 {
		return newError(KindParameterTypeMismatch, sig.Params[first].Offset, first,
			"parameters don't match the descriptor: %s", strings.Join(failures, "; "))
	}
	return nil
}

// checkReturn tests the declared return type against the descriptor's
// return token.
func checkReturn(reg *nativetype.Registry, sig *descriptor.Signature, cmp *signature.Comparison) error {
	pattern, ok := reg.Lookup(cmp.Return)
	if !ok {
		return newError(KindUnknownNativeType, sig.Return.Offset, -1,
			"return type has no descriptor mapping for native type %s", cmp.Return)
	}
	if !pattern.Matches(sig.Return.Raw) {
		return newError(KindReturnTypeMismatch, sig.Return.Offset, -1,
			"return type %s doesn't match descriptor fragment %q", cmp.Return, sig.Return.Raw)
	}
	return nil
}
