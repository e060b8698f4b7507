package descriptor

import "strings"

// Token is one parsed descriptor fragment denoting a single type, e.g. "I",
// "Ljava.lang.String;" or "[[D". Nested arrays are a single token carrying
// all leading array markers.
type Token struct {
	Raw    string
	Offset int // byte offset of the fragment within the descriptor
}

// Signature is the structured form of a method descriptor: the ordered
// parameter fragments and the single return fragment. It is immutable once
// parsed.
type Signature struct {
	Params []Token
	Return Token
}

// String re-serializes the signature into descriptor syntax. For any
// well-formed descriptor, Parse followed by String reproduces the input.
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range s.Params {
		b.WriteString(p.Raw)
	}
	b.WriteByte(')')
	b.WriteString(s.Return.Raw)
	return b.String()
}
