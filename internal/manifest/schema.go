package manifest

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a manifest file.
type fileRoot struct {
	Bindings []*bindingBlock `hcl:"binding,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// bindingBlock is the raw HCL form of one `binding` block. Attributes are
// kept as expressions so their source ranges survive translation.
type bindingBlock struct {
	Method     string         `hcl:"method,label"`
	Descriptor hcl.Expression `hcl:"descriptor"`
	Function   *functionBlock `hcl:"function,block"`
}

// functionBlock is the raw HCL form of the `function` block inside a binding.
type functionBlock struct {
	Name    hcl.Expression `hcl:"name"`
	Params  hcl.Expression `hcl:"params"`
	Returns hcl.Expression `hcl:"returns,optional"`
}
