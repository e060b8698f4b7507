// Package manifest loads binding declarations from HCL manifest files.
//
// A manifest pairs each logical Java method with the native function that
// claims to implement it:
//
//	binding "foo2" {
//	  descriptor = "(Ljava.lang.String;F)Ljava.lang.String;"
//
//	  function {
//	    name    = "Java_Test_foo2"
//	    params  = ["JNIEnv", "JClass", "jstring", "jfloat"]
//	    returns = "jstring" # optional; omitted means the function returns nothing
//	  }
//	}
//
// The loader keeps the source range of every attribute it decodes so that
// validation failures can be reported as HCL diagnostics anchored to the
// exact expression that caused them.
package manifest
