package llm

import (
	"context"
	"errors"
	"time"
)

// FailoverProvider walks an ordered list of per-credential providers.
// Failures classified as rate-limit or auth advance to the next credential
// after a short fixed backoff; any other failure surfaces immediately.
// When the list is exhausted it returns ErrCredentialsExhausted.
type FailoverProvider struct {
	providers []Provider
	backoff   time.Duration
}

// NewFailover builds a FailoverProvider over the given providers in order.
func NewFailover(providers []Provider, backoff time.Duration) *FailoverProvider {
	return &FailoverProvider{providers: providers, backoff: backoff}
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for i, p := range f.providers {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldFailover(err) {
			return nil, err
		}

		// Last credential: no point sleeping.
		if i == len(f.providers)-1 {
			break
		}

		wait := f.backoff
		var rl *ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 && rl.RetryAfter < wait {
			wait = rl.RetryAfter
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, &ErrCredentialsExhausted{Attempts: len(f.providers), Last: lastErr}
}

// ModelID reports the first credential's model; the chain has no single
// identity once failover kicks in.
func (f *FailoverProvider) ModelID() string {
	if len(f.providers) == 0 {
		return ""
	}
	return f.providers[0].ModelID()
}

// shouldFailover classifies an error as credential-related. Only quota,
// rate-limit and auth failures justify trying the next credential; every
// other failure belongs to the caller.
func shouldFailover(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var auth *ErrAuthFailed
	return errors.As(err, &auth)
}
