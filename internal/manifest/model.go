package manifest

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/jnivet/internal/signature"
)

// Binding is the format-agnostic representation of one `binding` block,
// ready for validation. Alongside the validation request itself it carries
// the source ranges needed to anchor diagnostics.
type Binding struct {
	Method     string
	Descriptor string
	Function   signature.FunctionDecl

	// Source ranges for diagnostics. ParamRanges has one entry per declared
	// parameter, including the two context parameters, when `params` is a
	// literal list; otherwise it is nil and ParamsRange is the fallback.
	DescriptorRange hcl.Range
	NameRange       hcl.Range
	ParamsRange     hcl.Range
	ParamRanges     []hcl.Range
	ReturnsRange    hcl.Range
}
