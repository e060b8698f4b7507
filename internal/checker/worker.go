package checker

import (
	"context"
	"errors"
	"sync"

	"github.com/vk/jnivet/internal/ctxlog"
	"github.com/vk/jnivet/internal/validate"
)

// worker is the core processing loop for a single concurrent worker. Each
// worker writes only to its own job's slot in failures, so no locking is
// needed.
func (c *Checker) worker(ctx context.Context, wg *sync.WaitGroup, work <-chan job, failures []*validate.Error, workerID int) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for j := range work {
		err := validate.Validate(c.registry, validate.Request{
			MethodName: j.binding.Method,
			Descriptor: j.binding.Descriptor,
			Function:   j.binding.Function,
		})
		if err == nil {
			logger.Debug("Binding passed.", "method", j.binding.Method)
			continue
		}

		var failure *validate.Error
		if !errors.As(err, &failure) {
			failure = &validate.Error{
				Kind:       validate.KindMalformedDescriptor,
				Message:    err.Error(),
				Offset:     -1,
				ParamIndex: -1,
			}
		}
		logger.Debug("Binding failed.", "method", j.binding.Method, "kind", failure.Kind.String())
		failures[j.index] = failure
	}

	logger.Debug("Worker finished.")
}
