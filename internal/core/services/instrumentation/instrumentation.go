package instrumentation

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/metrics"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"time"
)

type serviceWithOutcomeRecording[T any, S any] struct {
	recorder  metrics.Recorder
	operation string
	inner     services.Service[T, S]
}

// WithOutcomeRecording records the kind of error returned by inner and the time it took.
func WithOutcomeRecording[T any, S any](
	recorder metrics.Recorder,
	operation string,
	inner services.Service[T, S],
) services.Service[T, S] {
	if recorder == nil {
		panic(e.NewNilArgumentError("recorder"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithOutcomeRecording[T, S]{
		recorder:  recorder,
		operation: operation,
		inner:     inner,
	}
}

func (s *serviceWithOutcomeRecording[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	start := time.Now()
	result, err = s.inner.Run(ctx, input)
	s.recorder.RecordOutcome(s.operation, string(user.KindOf(err)), time.Since(start))
	return result, err
}
