package manifest

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/jnivet/internal/ctxlog"
	"github.com/vk/jnivet/internal/fsutil"
)

// Loader parses binding manifests from .hcl files. It retains every parsed
// file so diagnostic writers can quote the offending source lines.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL binding manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load discovers all .hcl files under the given paths and decodes every
// `binding` block they contain. Files that fail to parse or decode
// contribute diagnostics instead of bindings; one bad file does not stop the
// others from loading.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Binding, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.FindHCLFiles(paths)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Manifest discovery failed",
			Detail:   err.Error(),
		}}
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	var bindings []*Binding
	var diags hcl.Diagnostics
	for _, file := range files {
		hclFile, parseDiags := l.parser.ParseHCLFile(file)
		diags = append(diags, parseDiags...)
		if parseDiags.HasErrors() {
			continue
		}
		loaded, fileDiags := l.decodeFile(hclFile)
		diags = append(diags, fileDiags...)
		bindings = append(bindings, loaded...)
	}

	logger.Debug("Manifest loading complete.", "bindings", len(bindings))
	return bindings, diags
}

// LoadSource decodes binding blocks from an in-memory manifest. The filename
// only labels diagnostics.
func (l *Loader) LoadSource(src []byte, filename string) ([]*Binding, hcl.Diagnostics) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	bindings, decodeDiags := l.decodeFile(hclFile)
	return bindings, append(diags, decodeDiags...)
}

// decodeFile translates every binding block of one parsed file.
func (l *Loader) decodeFile(hclFile *hcl.File) ([]*Binding, hcl.Diagnostics) {
	var root fileRoot
	diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, diags
	}

	var bindings []*Binding
	for _, block := range root.Bindings {
		binding, translateDiags := translateBinding(block)
		diags = append(diags, translateDiags...)
		if binding != nil {
			bindings = append(bindings, binding)
		}
	}
	return bindings, diags
}

// Files returns every file the loader has parsed, keyed by name, in the
// format hcl.NewDiagnosticTextWriter expects.
func (l *Loader) Files() map[string]*hcl.File {
	return l.parser.Files()
}
