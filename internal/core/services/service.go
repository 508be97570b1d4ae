package services

import "context"

// Service is a single use case. Decorators wrap a Service to add behaviour around Run.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
