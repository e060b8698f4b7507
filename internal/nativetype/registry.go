package nativetype

import "regexp"

// Void is the native type name for "no value". A binding function declared
// without a return type resolves to it.
const Void = "void"

// Pattern is a predicate over a descriptor fragment's literal text.
type Pattern struct {
	expr *regexp.Regexp
}

// Matches reports whether the fragment satisfies the pattern.
func (p Pattern) Matches(fragment string) bool {
	return p.expr.MatchString(fragment)
}

// String returns the pattern's source expression, for error messages.
func (p Pattern) String() string {
	return p.expr.String()
}

// Registry maps native binding type names to fragment patterns. It is
// read-only after construction and safe for unsynchronized concurrent reads.
type Registry struct {
	patterns map[string]Pattern
}

// Fragment building blocks. Object reference paths accept both '.' and '/'
// as package separators; descriptors in the wild use either spelling.
const (
	primitiveCodes = `[BCDFIJSZ]`
	objectRef      = `L[\w$]+(?:[./][\w$]+)*;`
)

func wellKnownRef(path ...string) string {
	ref := "^L"
	for i, seg := range path {
		if i > 0 {
			ref += `[./]`
		}
		ref += seg
	}
	return ref + ";$"
}

// NewRegistry constructs the registry from the fixed enumeration of native
// types. The set is closed: a name without an entry is an unknown native
// type, which callers treat as a hard error.
func NewRegistry() *Registry {
	entries := map[string]string{
		Void: `^V$`,

		// Primitives.
		"jint":     `^I$`,
		"jlong":    `^J$`,
		"jbyte":    `^B$`,
		"jboolean": `^Z$`,
		"jchar":    `^C$`,
		"jshort":   `^S$`,
		"jfloat":   `^F$`,
		"jdouble":  `^D$`,

		// Object references. jobject accepts any reference; the named types
		// accept only their own class path.
		"jobject":    `^` + objectRef + `$`,
		"jclass":     wellKnownRef("java", "lang", "Class"),
		"jthrowable": wellKnownRef("java", "lang", "Throwable"),
		"jstring":    wellKnownRef("java", "lang", "String"),

		// Arrays. jarray is the umbrella accepting any array fragment;
		// JPrimitiveArray accepts any one-dimensional primitive array.
		"jarray":          `^\[.+$`,
		"jbooleanArray":   `^\[Z$`,
		"jbyteArray":      `^\[B$`,
		"jcharArray":      `^\[C$`,
		"jshortArray":     `^\[S$`,
		"jintArray":       `^\[I$`,
		"jlongArray":      `^\[J$`,
		"jfloatArray":     `^\[F$`,
		"jdoubleArray":    `^\[D$`,
		"jobjectArray":    `^\[` + objectRef + `$`,
		"JPrimitiveArray": `^\[` + primitiveCodes + `$`,

		// Wrapper aliases used by managed-reference binding layers.
		"JObject":      `^` + objectRef + `$`,
		"JClass":       wellKnownRef("java", "lang", "Class"),
		"JThrowable":   wellKnownRef("java", "lang", "Throwable"),
		"JString":      wellKnownRef("java", "lang", "String"),
		"JObjectArray": `^\[Ljava[./]lang[./]Object;$`,
		"JByteBuffer":  wellKnownRef("java", "nio", "ByteBuffer"),
		"JList":        wellKnownRef("java", "util", "List"),
		"JMap":         wellKnownRef("java", "util", "Map"),
	}

	patterns := make(map[string]Pattern, len(entries))
	for name, expr := range entries {
		patterns[name] = Pattern{expr: regexp.MustCompile(expr)}
	}
	return &Registry{patterns: patterns}
}

// Lookup returns the pattern for a native type name. The second return value
// is false for any name outside the fixed enumeration.
func (r *Registry) Lookup(name string) (Pattern, bool) {
	p, ok := r.patterns[name]
	return p, ok
}
