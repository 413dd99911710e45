// Package resolve decides, per call, whether data comes from the database,
// from fallback content, or from the in-memory store.
//
// Public reads go through Read: any database error is swallowed and the
// fallback value returned, so content pages degrade to static data instead of
// failing. Writes and admin reads go through Write: database errors propagate,
// and without a database the memory operation runs, or ErrNotConfigured is
// returned when none exists.
package resolve

import (
	"context"
	"errors"

	"safari-booking/pkg/metrics"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned by Write when no database is configured and
// the operation has no in-memory counterpart.
var ErrNotConfigured = errors.New("database not configured")

// Availability answers "is a live database configured for this process".
type Availability interface {
	HasDB() bool
}

// Configured is an Availability fixed at startup from configuration.
type Configured bool

func (c Configured) HasDB() bool { return bool(c) }

// Result is the outcome of a database call.
type Result[T any] struct {
	Value T
	Err   error
}

// Try packs a (value, error) pair.
func Try[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// OrElse returns the value, or fallback when the call failed.
func (r Result[T]) OrElse(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Op is a storage operation bound to a request context.
type Op[T any] func(ctx context.Context) (T, error)

// Resolver carries the process-wide availability plus the logger and
// metrics used to report fallbacks.
type Resolver struct {
	avail   Availability
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewResolver(avail Availability, log *zap.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{
		avail:   avail,
		log:     log.With(zap.String("component", "resolve")),
		metrics: m,
	}
}

func (r *Resolver) HasDB() bool {
	return r.avail.HasDB()
}

// Backend names the store a write would use, for logs and metrics.
func (r *Resolver) Backend() string {
	if r.HasDB() {
		return "postgres"
	}
	return "memory"
}

// Read runs op when a database is configured and returns fallback when there
// is none or op fails. It never returns an error.
func Read[T any](ctx context.Context, r *Resolver, resource string, op Op[T], fallback T) T {
	if !r.HasDB() {
		r.metrics.IncFallbackRead(resource)
		return fallback
	}

	result := Try(op(ctx))
	if result.Err != nil {
		r.log.Warn("Database read failed, serving fallback",
			zap.String("resource", resource),
			zap.Error(result.Err),
		)
		r.metrics.IncFallbackRead(resource)
	}
	return result.OrElse(fallback)
}

// Write runs dbOp when a database is configured and returns its error
// unchanged. Without a database it runs memOp, or returns ErrNotConfigured
// when memOp is nil.
func Write[T any](ctx context.Context, r *Resolver, dbOp Op[T], memOp Op[T]) (T, error) {
	if r.HasDB() {
		return dbOp(ctx)
	}
	if memOp != nil {
		return memOp(ctx)
	}
	var zero T
	return zero, ErrNotConfigured
}

// Memory adapts an infallible in-memory call to an Op.
func Memory[T any](fn func() T) Op[T] {
	return func(context.Context) (T, error) {
		return fn(), nil
	}
}
