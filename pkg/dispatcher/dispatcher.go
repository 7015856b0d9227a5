// Package dispatcher sends payments requests to the backend over HTTP.
package dispatcher

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Narasimha1997/ratelimiter"
	"github.com/avast/retry-go"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	ht "github.com/ogen-go/ogen/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/sentry"
	"github.com/arnac-io/chatpay/pkg/wire"
)

const (
	limiterBackoff = 10 * time.Millisecond
	// DefaultRetryDelay is the pause before the first retry; later pauses grow.
	DefaultRetryDelay = 100 * time.Millisecond
)

// Dispatcher posts @type-tagged requests to a single backend endpoint and decodes the replies.
// Requests failing to reach the backend are retried; RPC errors are returned as *wire.RPCError.
type Dispatcher struct {
	logger        *zap.Logger
	url           string
	client        ht.Client
	timeout       time.Duration
	retryAttempts uint
	retryDelay    time.Duration
	limiter       *ratelimiter.DefaultLimiter
	tracer        trace.Tracer
	// inFlight maps request ids to methods of requests waiting for a reply.
	inFlight *xsync.MapOf[string, string]
	wg       conc.WaitGroup
}

func New(url string, opts ...Option) *Dispatcher {
	o := &Options{
		logger:        zap.NewNop(),
		timeout:       10 * time.Second,
		retryAttempts: 3,
		retryDelay:    DefaultRetryDelay,
	}
	for i := range opts {
		opts[i](o)
	}
	if o.retryAttempts == 0 {
		o.retryAttempts = 1
	}
	d := &Dispatcher{
		logger:        o.logger,
		url:           url,
		client:        o.httpClient(),
		timeout:       o.timeout,
		retryAttempts: o.retryAttempts,
		retryDelay:    o.retryDelay,
		tracer:        otel.Tracer("github.com/arnac-io/chatpay/pkg/dispatcher"),
		inFlight:      xsync.NewMapOf[string](),
	}
	if o.rateLimit > 0 {
		d.limiter = ratelimiter.NewDefaultLimiter(o.rateLimit, time.Second)
	}
	return d
}

// transportError marks failures that are worth another attempt.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

// singleAttemptMethods are not safe to repeat: a retry after a lost reply could charge twice.
var singleAttemptMethods = map[string]struct{}{
	"payments.sendPaymentForm": {},
}

func (d *Dispatcher) attempts(method string) uint {
	if _, ok := singleAttemptMethods[method]; ok {
		return 1
	}
	return d.retryAttempts
}

func isRetryable(err error) bool {
	var t *transportError
	return errors.As(err, &t)
}

// Send calls the backend in the background and passes the outcome to cb.
func (d *Dispatcher) Send(ctx context.Context, request wire.Request, cb func(wire.Object, error)) {
	d.wg.Go(func() {
		cb(d.Call(ctx, request))
	})
}

// Call sends request and waits for the reply.
func (d *Dispatcher) Call(ctx context.Context, request wire.Request) (wire.Object, error) {
	const op = "dispatcher.call"
	method := request.TypeName()
	id := uuid.NewString()

	ctx, span := d.tracer.Start(ctx, method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("rpc.method", method), attribute.String("request.id", id)))
	defer span.End()
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		requestTimeHistogramVec.WithLabelValues(method).Observe(v)
	}))
	defer timer.ObserveDuration()

	d.inFlight.Store(id, method)
	inFlightGauge.Inc()
	defer func() {
		d.inFlight.Delete(id)
		inFlightGauge.Dec()
	}()

	body, err := wire.Marshal(request)
	if err != nil {
		requestsCounter.WithLabelValues(method, resultParse).Inc()
		return nil, core.ParseError(err, op, "failed to encode request")
	}

	var reply wire.Object
	err = retry.Do(func() error {
		if err := d.wait(ctx); err != nil {
			return err
		}
		var err error
		reply, err = d.do(ctx, id, body)
		if err != nil && isRetryable(err) {
			d.logger.Debug("payments backend attempt failed",
				zap.String("method", method),
				zap.String("request_id", id),
				zap.Error(err))
		}
		return err
	},
		retry.Context(ctx),
		retry.Attempts(d.attempts(method)),
		retry.Delay(d.retryDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true))
	if err == nil {
		requestsCounter.WithLabelValues(method, resultOK).Inc()
		return reply, nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	var rpcErr *wire.RPCError
	switch {
	case errors.As(err, &rpcErr):
		requestsCounter.WithLabelValues(method, resultRejected).Inc()
		return nil, rpcErr
	case core.IsCode(err, core.CodeParseError):
		requestsCounter.WithLabelValues(method, resultParse).Inc()
		d.logger.Warn("malformed reply from payments backend", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	requestsCounter.WithLabelValues(method, resultTransport).Inc()
	d.logger.Warn("failed to reach payments backend",
		zap.String("method", method),
		zap.String("request_id", id),
		zap.Error(err))
	sentry.Send("payments backend transport failure", sentry.SentryInfoData{
		"method":     method,
		"request_id": id,
		"error":      err.Error(),
	}, sentry.LevelError)
	return nil, errors.Wrapf(err, "send %s", method)
}

func (d *Dispatcher) wait(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	for {
		allowed, err := d.limiter.ShouldAllow(1)
		if err != nil {
			return errors.Wrap(err, "rate limiter")
		}
		if allowed {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(limiterBackoff):
		}
	}
}

func (d *Dispatcher) do(ctx context.Context, id string, body []byte) (wire.Object, error) {
	const op = "dispatcher.do"
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", id)
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: errors.Wrap(err, "read reply")}
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &transportError{err: errors.Errorf("unexpected status code %d", resp.StatusCode)}
	}
	obj, err := wire.Decode(data)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("unexpected status code %d", resp.StatusCode)
		}
		return nil, core.ParseError(err, op, "malformed reply from payments backend")
	}
	if rpcErr, ok := obj.(*wire.RPCError); ok {
		return nil, rpcErr
	}
	return obj, nil
}

// InFlight returns the number of requests waiting for a reply.
func (d *Dispatcher) InFlight() int {
	return d.inFlight.Size()
}

// Close waits for requests started with Send and releases the rate limiter.
// Cancel their contexts first to abandon them.
func (d *Dispatcher) Close() error {
	d.inFlight.Range(func(id, method string) bool {
		d.logger.Info("waiting for payments request", zap.String("request_id", id), zap.String("method", method))
		return true
	})
	d.wg.Wait()
	if d.limiter != nil {
		return d.limiter.Kill()
	}
	return nil
}
