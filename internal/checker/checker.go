package checker

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/jnivet/internal/ctxlog"
	"github.com/vk/jnivet/internal/manifest"
	"github.com/vk/jnivet/internal/nativetype"
	"github.com/vk/jnivet/internal/validate"
)

// Checker validates bindings against the shared native type registry.
type Checker struct {
	registry *nativetype.Registry
	workers  int
}

// job pairs a binding with its position in the input so results can be
// reported in input order regardless of which worker finishes first.
type job struct {
	index   int
	binding *manifest.Binding
}

// New creates a Checker running on the given number of concurrent workers.
func New(registry *nativetype.Registry, workers int) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{registry: registry, workers: workers}
}

// Run validates every binding and returns one diagnostic per failure, in
// input order, anchored to the manifest range of the failing part.
func (c *Checker) Run(ctx context.Context, bindings []*manifest.Binding) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Checker starting run.", "bindings", len(bindings), "workers", c.workers)

	work := make(chan job)
	failures := make([]*validate.Error, len(bindings))

	var wg sync.WaitGroup
	for id := 0; id < c.workers; id++ {
		wg.Add(1)
		go c.worker(ctx, &wg, work, failures, id)
	}
	for i, b := range bindings {
		work <- job{index: i, binding: b}
	}
	close(work)
	wg.Wait()

	var diags hcl.Diagnostics
	for i, failure := range failures {
		if failure != nil {
			diags = append(diags, diagnose(bindings[i], failure))
		}
	}
	logger.Debug("Checker run finished.", "failures", len(diags))
	return diags
}

// diagnose converts an engine failure into an HCL diagnostic, picking the
// most precise source range the manifest recorded for the failing part.
func diagnose(b *manifest.Binding, err *validate.Error) *hcl.Diagnostic {
	subject := b.DescriptorRange

	switch err.Kind {
	case validate.KindNamingConventionMismatch:
		subject = b.NameRange
	case validate.KindMissingOrWrongContextParameter:
		// ParamIndex is the declared parameter position here.
		subject = paramSubject(b, err.ParamIndex)
	case validate.KindParameterCountMismatch:
		subject = b.ParamsRange
	case validate.KindParameterTypeMismatch:
		subject = paramSubject(b, err.ParamIndex+2)
	case validate.KindUnknownNativeType:
		if err.ParamIndex >= 0 {
			subject = paramSubject(b, err.ParamIndex+2)
		} else {
			subject = b.ReturnsRange
		}
	case validate.KindReturnTypeMismatch:
		subject = b.ReturnsRange
	}

	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Binding %q: %s", b.Method, err.Kind),
		Detail:   err.Message,
		Subject:  subject.Ptr(),
	}
}

// paramSubject returns the range of one declared parameter, falling back to
// the whole params attribute when per-element ranges are unavailable.
func paramSubject(b *manifest.Binding, declaredIndex int) hcl.Range {
	if declaredIndex >= 0 && declaredIndex < len(b.ParamRanges) {
		return b.ParamRanges[declaredIndex]
	}
	return b.ParamsRange
}
