// This file contains the logic for translating decoded HCL schema structs
// into the format-agnostic Binding model consumed by the checker.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/jnivet/internal/signature"
)

// translateBinding converts a raw binding block into the agnostic model,
// evaluating its expressions and recording their source ranges.
func translateBinding(block *bindingBlock) (*Binding, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	desc, d := evalString(block.Descriptor, "descriptor")
	diags = append(diags, d...)

	if block.Function == nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing function block",
			Detail:   fmt.Sprintf("Binding %q does not declare the native function that implements it.", block.Method),
			Subject:  block.Descriptor.Range().Ptr(),
		})
		return nil, diags
	}

	name, d := evalString(block.Function.Name, "name")
	diags = append(diags, d...)

	params, paramRanges, d := evalParams(block.Function.Params)
	diags = append(diags, d...)

	returns := ""
	returnsRange := block.Descriptor.Range()
	if block.Function.Returns != nil {
		returns, d = evalString(block.Function.Returns, "returns")
		diags = append(diags, d...)
		returnsRange = block.Function.Returns.Range()
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return &Binding{
		Method:     block.Method,
		Descriptor: desc,
		Function: signature.FunctionDecl{
			Name:   name,
			Params: params,
			Return: returns,
		},
		DescriptorRange: block.Descriptor.Range(),
		NameRange:       block.Function.Name.Range(),
		ParamsRange:     block.Function.Params.Range(),
		ParamRanges:     paramRanges,
		ReturnsRange:    returnsRange,
	}, diags
}

// evalString evaluates an attribute expression to a non-null string.
func evalString(expr hcl.Expression, attr string) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("The %q attribute must be a non-null string.", attr),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return val.AsString(), nil
}

// evalParams evaluates the params attribute, which must be a literal list of
// native type name strings, and returns the per-element source ranges.
func evalParams(expr hcl.Expression) ([]string, []hcl.Range, hcl.Diagnostics) {
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, nil, diags
	}

	params := make([]string, 0, len(exprs))
	ranges := make([]hcl.Range, 0, len(exprs))
	for _, e := range exprs {
		name, d := evalString(e, "params")
		diags = append(diags, d...)
		params = append(params, name)
		ranges = append(ranges, e.Range())
	}
	if diags.HasErrors() {
		return nil, nil, diags
	}
	return params, ranges, nil
}
