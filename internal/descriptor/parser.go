package descriptor

import (
	"fmt"
	"regexp"
	"strings"
)

// fragmentRegex matches the longest valid leading type fragment: an optional
// run of array markers followed by either a single primitive code or an
// object reference terminated by ';'. The character class excludes ';', so a
// reference is matched up to its own terminator and never greedily across
// neighbouring fragments. Object paths may use '.' or '/' as separators.
var fragmentRegex = regexp.MustCompile(`^(\[*)(?:[BCDFIJSZ]|L[\w$]+(?:[./][\w$]+)*;)`)

// ParseError reports a malformed descriptor along with the byte offset of
// the first character that could not be consumed.
type ParseError struct {
	Descriptor string
	Offset     int
	Reason     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed descriptor %q at offset %d: %s", e.Descriptor, e.Offset, e.Reason)
}

// Parse splits a raw method descriptor of the form `(params)return` into its
// ordered parameter tokens and return token. An empty parameter section
// yields an empty parameter list. The return section must be exactly one
// type fragment, or "V" for methods returning no value.
func Parse(raw string) (*Signature, error) {
	if len(raw) == 0 || raw[0] != '(' {
		return nil, &ParseError{raw, 0, "expected '(' opening the parameter section"}
	}
	end := strings.IndexByte(raw, ')')
	if end < 0 {
		return nil, &ParseError{raw, len(raw), "parameter section is never closed"}
	}
	params := raw[1:end]
	ret := raw[end+1:]
	if ret == "" {
		return nil, &ParseError{raw, len(raw), "missing return type after ')'"}
	}

	sig := &Signature{}
	for pos := 0; pos < len(params); {
		frag := fragmentRegex.FindString(params[pos:])
		if frag == "" {
			return nil, &ParseError{raw, 1 + pos, fmt.Sprintf("unrecognized type fragment starting at %q", params[pos:])}
		}
		sig.Params = append(sig.Params, Token{Raw: frag, Offset: 1 + pos})
		pos += len(frag)
	}

	retOffset := end + 1
	if ret != "V" {
		frag := fragmentRegex.FindString(ret)
		if frag == "" {
			return nil, &ParseError{raw, retOffset, fmt.Sprintf("unrecognized return type fragment %q", ret)}
		}
		if frag != ret {
			return nil, &ParseError{raw, retOffset + len(frag), fmt.Sprintf("trailing characters %q after return type", ret[len(frag):])}
		}
	}
	sig.Return = Token{Raw: ret, Offset: retOffset}
	return sig, nil
}
