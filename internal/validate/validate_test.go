package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/jnivet/internal/nativetype"
	"github.com/vk/jnivet/internal/signature"
)

func decl(name string, ret string, params ...string) signature.FunctionDecl {
	return signature.FunctionDecl{Name: name, Params: params, Return: ret}
}

func TestValidate_Pass(t *testing.T) {
	reg := nativetype.NewRegistry()

	testCases := []struct {
		name string
		req  Request
	}{
		{
			name: "zero parameters returning void",
			req: Request{
				MethodName: "noop",
				Descriptor: "()V",
				Function:   decl("Java_Test_noop", "", "JNIEnv", "JClass"),
			},
		},
		{
			name: "string and float parameters returning string",
			req: Request{
				MethodName: "foo2",
				Descriptor: "(Ljava.lang.String;F)Ljava.lang.String;",
				Function:   decl("Java_Test_foo2", "jstring", "JNIEnv", "JClass", "jstring", "jfloat"),
			},
		},
		{
			name: "wrapper alias types",
			req: Request{
				MethodName: "transform",
				Descriptor: "(Ljava.lang.String;F)Ljava.lang.String;",
				Function:   decl("Java_Test_transform", "JString", "JNIEnv", "JClass", "JString", "jfloat"),
			},
		},
		{
			name: "generic object accepts any reference",
			req: Request{
				MethodName: "accept",
				Descriptor: "(Lcom/example/Request;)V",
				Function:   decl("Java_com_example_Server_accept", "void", "JNIEnv", "JClass", "jobject"),
			},
		},
		{
			name: "arrays and umbrella types",
			req: Request{
				MethodName: "digest",
				Descriptor: "([B[[D)[I",
				Function:   decl("Java_Test_digest", "jintArray", "JNIEnv", "JClass", "jbyteArray", "jarray"),
			},
		},
		{
			name: "method name with underscores matched literally",
			req: Request{
				MethodName: "do_stuff",
				Descriptor: "()V",
				Function:   decl("Java_com_example_Native_do_stuff", "", "JNIEnv", "JClass"),
			},
		},
		{
			name: "trailing underscore in method name",
			req: Request{
				MethodName: "foo_",
				Descriptor: "()V",
				Function:   decl("Java_Test_foo_", "", "JNIEnv", "JClass"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Validate(reg, tc.req))
		})
	}
}

func TestValidate_Failures(t *testing.T) {
	reg := nativetype.NewRegistry()

	testCases := []struct {
		name     string
		req      Request
		wantKind Kind
	}{
		{
			name: "unbalanced parameter section",
			req: Request{
				MethodName: "foo",
				Descriptor: "(IF",
				Function:   decl("Java_Test_foo", "jint", "JNIEnv", "JClass", "jint", "jfloat"),
			},
			wantKind: KindMalformedDescriptor,
		},
		{
			name: "wrong function name",
			req: Request{
				MethodName: "foo",
				Descriptor: "(I)I",
				Function:   decl("Java_Test_wrongName", "jint", "JNIEnv", "JClass", "jint"),
			},
			wantKind: KindNamingConventionMismatch,
		},
		{
			name: "missing Java_ prefix",
			req: Request{
				MethodName: "foo",
				Descriptor: "()V",
				Function:   decl("Native_Test_foo", "", "JNIEnv", "JClass"),
			},
			wantKind: KindNamingConventionMismatch,
		},
		{
			name: "no class segment between prefix and method",
			req: Request{
				MethodName: "foo",
				Descriptor: "()V",
				Function:   decl("Java__foo", "", "JNIEnv", "JClass"),
			},
			wantKind: KindNamingConventionMismatch,
		},
		{
			name: "trailing characters after the method name",
			req: Request{
				MethodName: "foo_",
				Descriptor: "()V",
				Function:   decl("Java_Test_foo_x", "", "JNIEnv", "JClass"),
			},
			wantKind: KindNamingConventionMismatch,
		},
		{
			name: "wrong first context parameter",
			req: Request{
				MethodName: "foo",
				Descriptor: "(I)I",
				Function:   decl("Java_Test_foo", "jint", "jint", "JClass", "jint"),
			},
			wantKind: KindMissingOrWrongContextParameter,
		},
		{
			name: "missing second context parameter",
			req: Request{
				MethodName: "foo",
				Descriptor: "()V",
				Function:   decl("Java_Test_foo", "", "JNIEnv"),
			},
			wantKind: KindMissingOrWrongContextParameter,
		},
		{
			name: "missing parameter",
			req: Request{
				MethodName: "foo2",
				Descriptor: "(Ljava.lang.String;F)Ljava.lang.String;",
				Function:   decl("Java_Test_foo2", "jstring", "JNIEnv", "JClass", "jstring"),
			},
			wantKind: KindParameterCountMismatch,
		},
		{
			name: "extra parameter",
			req: Request{
				MethodName: "foo",
				Descriptor: "(I)V",
				Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jint", "jint"),
			},
			wantKind: KindParameterCountMismatch,
		},
		{
			name: "parameter type mismatch",
			req: Request{
				MethodName: "foo",
				Descriptor: "(IF)V",
				Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jfloat", "jint"),
			},
			wantKind: KindParameterTypeMismatch,
		},
		{
			name: "unknown native parameter type",
			req: Request{
				MethodName: "foo",
				Descriptor: "(I)V",
				Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jfoo"),
			},
			wantKind: KindUnknownNativeType,
		},
		{
			name: "unknown native return type",
			req: Request{
				MethodName: "foo",
				Descriptor: "()V",
				Function:   decl("Java_Test_foo", "junit", "JNIEnv", "JClass"),
			},
			wantKind: KindUnknownNativeType,
		},
		{
			name: "return type mismatch",
			req: Request{
				MethodName: "foo",
				Descriptor: "(I)I",
				Function:   decl("Java_Test_foo", "jlong", "JNIEnv", "JClass", "jint"),
			},
			wantKind: KindReturnTypeMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(reg, tc.req)
			require.Error(t, err)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantKind, verr.Kind, "got kind %q, message: %s", verr.Kind, verr.Message)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

// The naming check runs before any parameter comparison: a badly named
// function with an otherwise broken signature reports the naming failure.
func TestValidate_FailFastOrdering(t *testing.T) {
	reg := nativetype.NewRegistry()

	err := Validate(reg, Request{
		MethodName: "foo",
		Descriptor: "(I)I",
		Function:   decl("Java_Test_wrongName", "jstring", "JNIEnv", "JClass", "jstring", "jstring"),
	})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindNamingConventionMismatch, verr.Kind)
}

// A wrong context parameter is reported even when the rest of the signature
// would match the descriptor.
func TestValidate_ContextParameterBeforeTypes(t *testing.T) {
	reg := nativetype.NewRegistry()

	err := Validate(reg, Request{
		MethodName: "foo",
		Descriptor: "(I)I",
		Function:   decl("Java_Test_foo", "jint", "jobject", "JClass", "jint"),
	})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindMissingOrWrongContextParameter, verr.Kind)
	assert.Equal(t, 0, verr.ParamIndex)
}

// All failing parameter positions are aggregated into one error; the
// positional fields point at the first.
func TestValidate_ParameterMismatchAggregation(t *testing.T) {
	reg := nativetype.NewRegistry()

	err := Validate(reg, Request{
		MethodName: "foo",
		Descriptor: "(IF)V",
		Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jfloat", "jint"),
	})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindParameterTypeMismatch, verr.Kind)
	assert.Equal(t, 0, verr.ParamIndex)
	assert.Equal(t, 1, verr.Offset, "offset of the first failing fragment")
	assert.Contains(t, verr.Message, "parameter 0")
	assert.Contains(t, verr.Message, "parameter 1")
}

func TestValidate_PositionalInfo(t *testing.T) {
	reg := nativetype.NewRegistry()

	t.Run("malformed descriptor carries the offset", func(t *testing.T) {
		err := Validate(reg, Request{
			MethodName: "foo",
			Descriptor: "(IF",
			Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jint", "jfloat"),
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 3, verr.Offset)
		assert.Equal(t, -1, verr.ParamIndex)
	})

	t.Run("return mismatch points at the return fragment", func(t *testing.T) {
		err := Validate(reg, Request{
			MethodName: "foo",
			Descriptor: "(I)I",
			Function:   decl("Java_Test_foo", "jlong", "JNIEnv", "JClass", "jint"),
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 3, verr.Offset)
	})

	t.Run("unknown parameter type carries the index", func(t *testing.T) {
		err := Validate(reg, Request{
			MethodName: "foo",
			Descriptor: "(IF)V",
			Function:   decl("Java_Test_foo", "", "JNIEnv", "JClass", "jint", "jfoo"),
		})
		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 1, verr.ParamIndex)
	})
}

// Validation is a pure function of the request and the registry.
func TestValidate_Deterministic(t *testing.T) {
	reg := nativetype.NewRegistry()
	req := Request{
		MethodName: "foo2",
		Descriptor: "(Ljava.lang.String;F)Ljava.lang.String;",
		Function:   decl("Java_Test_foo2", "jstring", "JNIEnv", "JClass", "jstring", "jfloat"),
	}

	for i := 0; i < 3; i++ {
		assert.NoError(t, Validate(reg, req))
	}

	bad := req
	bad.Function = decl("Java_Test_foo2", "jstring", "JNIEnv", "JClass", "jstring")
	first := Validate(reg, bad)
	second := Validate(reg, bad)
	assert.Equal(t, first, second)
}
