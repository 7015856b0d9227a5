package dispatcher

import (
	"fmt"
	"net/http"
	"time"

	ht "github.com/ogen-go/ogen/http"
	"go.uber.org/zap"
)

type clientWithToken struct {
	header string
	client ht.Client
}

func (c clientWithToken) Do(r *http.Request) (*http.Response, error) {
	r.Header.Set("Authorization", c.header)
	return c.client.Do(r)
}

var _ ht.Client = &clientWithToken{}

type Options struct {
	logger        *zap.Logger
	client        ht.Client
	token         string
	timeout       time.Duration
	retryAttempts uint
	retryDelay    time.Duration
	rateLimit     uint64
}

type Option func(o *Options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithClient replaces the HTTP client used to reach the backend.
func WithClient(client ht.Client) Option {
	return func(o *Options) {
		o.client = client
	}
}

// WithToken configures the dispatcher to authorize every request with a bearer token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.token = token
	}
}

// WithTimeout limits a single attempt of a request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.timeout = timeout
	}
}

// WithRetry sets how many times a request is attempted when the backend can't be reached.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *Options) {
		o.retryAttempts = attempts
		o.retryDelay = delay
	}
}

// WithRateLimit limits outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSecond uint64) Option {
	return func(o *Options) {
		o.rateLimit = perSecond
	}
}

func (o *Options) httpClient() ht.Client {
	client := o.client
	if client == nil {
		client = http.DefaultClient
	}
	if o.token == "" {
		return client
	}
	return clientWithToken{header: fmt.Sprintf("Bearer %s", o.token), client: client}
}
