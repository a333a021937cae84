package http

import (
	"context"
	"crypto/x509"
	"errors"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// Transport failures that a retry can never fix.
var (
	// redirectsErrorRe matches the error returned when the request was
	// redirected too many times.
	redirectsErrorRe = regexp.MustCompile(`stopped after \d+ redirects\z`)

	// schemeErrorRe matches the error returned for an unsupported URL scheme.
	schemeErrorRe = regexp.MustCompile(`unsupported protocol scheme`)
)

// Policy decides whether an attempt should be retried and how long to wait
// before the next one. It is a pure value: safe to share, never mutated
// after construction.
type Policy struct {
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	ExponentialBase float64

	retryable map[int]bool
}

// defaultRetryableStatuses are retried when the caller does not override the
// set: rate limiting plus transient server-side failures.
var defaultRetryableStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// NewPolicy resolves a RetryConfig into a Policy, applying defaults for
// zero-valued fields.
func NewPolicy(config *honeycomb.RetryConfig) *Policy {
	policy := &Policy{
		MaxRetries:      constants.DefaultMaxRetries,
		BaseDelay:       constants.DefaultBaseDelay,
		MaxDelay:        constants.DefaultMaxDelay,
		ExponentialBase: constants.DefaultExponentialBase,
	}

	statuses := defaultRetryableStatuses

	if config != nil {
		if config.MaxRetries > 0 {
			policy.MaxRetries = config.MaxRetries
		}

		if config.BaseDelay > 0 {
			policy.BaseDelay = config.BaseDelay
		}

		if config.MaxDelay > 0 {
			policy.MaxDelay = config.MaxDelay
		}

		if config.ExponentialBase > 1.0 {
			policy.ExponentialBase = config.ExponentialBase
		}

		if len(config.RetryableStatuses) > 0 {
			statuses = config.RetryableStatuses
		}
	}

	if policy.MaxDelay < policy.BaseDelay {
		policy.MaxDelay = policy.BaseDelay
	}

	policy.retryable = make(map[int]bool, len(statuses))
	for _, status := range statuses {
		policy.retryable[status] = true
	}

	return policy
}

// RetryableStatus reports whether a response status is worth retrying.
func (p *Policy) RetryableStatus(status int) bool {
	return p.retryable[status]
}

// CheckRetry is plugged into retryablehttp. Context errors stop the loop so
// a cancelled operation never performs another attempt; terminal statuses
// outside the retryable set short-circuit to exactly one attempt.
func (p *Policy) CheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			if redirectsErrorRe.MatchString(urlErr.Error()) ||
				schemeErrorRe.MatchString(urlErr.Error()) {
				return false, err
			}

			var certErr x509.UnknownAuthorityError
			if errors.As(urlErr, &certErr) {
				return false, err
			}
		}

		// Remaining transport errors (timeouts, resets, DNS) are worth
		// another attempt.
		return true, nil
	}

	return p.RetryableStatus(resp.StatusCode), nil
}

// Backoff is plugged into retryablehttp. attempt is 0-based: the delay
// before retry N follows attempt N.
func (p *Policy) Backoff(_, _ time.Duration, attempt int, resp *http.Response) time.Duration {
	return p.Delay(attempt, resp)
}

// Delay computes the wait before the next attempt. A server-provided
// Retry-After hint wins over the computed backoff: the server knows when
// capacity returns. Otherwise the delay grows exponentially from BaseDelay,
// capped at MaxDelay.
func (p *Policy) Delay(attempt int, resp *http.Response) time.Duration {
	if resp != nil {
		if hint := honeycomb.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()); hint > 0 {
			return hint
		}
	}

	delay := time.Duration(float64(p.BaseDelay) * math.Pow(p.ExponentialBase, float64(attempt)))
	if delay > p.MaxDelay || delay <= 0 {
		delay = p.MaxDelay
	}

	return delay
}
