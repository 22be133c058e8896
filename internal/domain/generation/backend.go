package generation

import "context"

// Backend is implemented by each AI provider adapter. Generate returns an
// error only for transport or provider failures; the dispatcher converts
// those into template fallbacks so callers always receive content.
type Backend interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Info() BackendInfo
	Available() bool
}
