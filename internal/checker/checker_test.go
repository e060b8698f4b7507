package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/jnivet/internal/manifest"
	"github.com/vk/jnivet/internal/nativetype"
)

func loadBindings(t *testing.T, src string) []*manifest.Binding {
	t.Helper()
	loader := manifest.NewLoader()
	bindings, diags := loader.LoadSource([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
	return bindings
}

func TestRun_AllPass(t *testing.T) {
	bindings := loadBindings(t, `
binding "noop" {
  descriptor = "()V"

  function {
    name   = "Java_Test_noop"
    params = ["JNIEnv", "JClass"]
  }
}

binding "foo2" {
  descriptor = "(Ljava.lang.String;F)Ljava.lang.String;"

  function {
    name    = "Java_Test_foo2"
    params  = ["JNIEnv", "JClass", "jstring", "jfloat"]
    returns = "jstring"
  }
}
`)

	chk := New(nativetype.NewRegistry(), 4)
	diags := chk.Run(context.Background(), bindings)
	assert.Empty(t, diags)
}

func TestRun_ReportsEveryFailure(t *testing.T) {
	bindings := loadBindings(t, `
binding "good" {
  descriptor = "(I)I"

  function {
    name    = "Java_Test_good"
    params  = ["JNIEnv", "JClass", "jint"]
    returns = "jint"
  }
}

binding "renamed" {
  descriptor = "(I)I"

  function {
    name    = "Java_Test_wrongName"
    params  = ["JNIEnv", "JClass", "jint"]
    returns = "jint"
  }
}

binding "short" {
  descriptor = "(Ljava.lang.String;F)Ljava.lang.String;"

  function {
    name    = "Java_Test_short"
    params  = ["JNIEnv", "JClass", "jstring"]
    returns = "jstring"
  }
}
`)
	require.Len(t, bindings, 3)

	chk := New(nativetype.NewRegistry(), 4)
	diags := chk.Run(context.Background(), bindings)

	// One failing binding never stops the others; results keep input order.
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Summary, `"renamed"`)
	assert.Contains(t, diags[0].Summary, "naming convention mismatch")
	assert.Contains(t, diags[1].Summary, `"short"`)
	assert.Contains(t, diags[1].Summary, "parameter count mismatch")
}

func TestRun_DiagnosticSubjects(t *testing.T) {
	bindings := loadBindings(t, `
binding "typed" {
  descriptor = "(IF)V"

  function {
    name   = "Java_Test_typed"
    params = ["JNIEnv", "JClass", "jfloat", "jfloat"]
  }
}
`)

	chk := New(nativetype.NewRegistry(), 1)
	diags := chk.Run(context.Background(), bindings)
	require.Len(t, diags, 1)

	// The subject is the first failing parameter expression: the third
	// element of the params list (index 2, after the context handles).
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, "test.hcl", diags[0].Subject.Filename)
	assert.Equal(t, bindings[0].ParamRanges[2], *diags[0].Subject)
}

func TestRun_ContextParameterSubject(t *testing.T) {
	bindings := loadBindings(t, `
binding "ctx" {
  descriptor = "()V"

  function {
    name   = "Java_Test_ctx"
    params = ["jint", "JClass"]
  }
}
`)

	chk := New(nativetype.NewRegistry(), 1)
	diags := chk.Run(context.Background(), bindings)
	require.Len(t, diags, 1)

	assert.Contains(t, diags[0].Summary, "missing or wrong context parameter")
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, bindings[0].ParamRanges[0], *diags[0].Subject)
}

func TestRun_NoBindings(t *testing.T) {
	chk := New(nativetype.NewRegistry(), 4)
	assert.Empty(t, chk.Run(context.Background(), nil))
}

// More workers than bindings must not deadlock or drop results.
func TestRun_WorkerOversubscription(t *testing.T) {
	bindings := loadBindings(t, `
binding "one" {
  descriptor = "(J"

  function {
    name   = "Java_Test_one"
    params = ["JNIEnv", "JClass", "jlong"]
  }
}
`)

	chk := New(nativetype.NewRegistry(), 16)
	diags := chk.Run(context.Background(), bindings)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Summary, "malformed descriptor")
}
