// Package updates receives payment queries pushed by the backend over a websocket.
package updates

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-faster/errors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arnac-io/chatpay/pkg/wire"
)

var updatesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chatpay_updates_received_total",
	Help: "Updates received from the payments backend by type",
}, []string{"type"})

type handler interface {
	HandleUpdate(update wire.Object) error
}

// Listener keeps a websocket to the backend open and passes every received update to a handler.
type Listener struct {
	logger         *zap.Logger
	endpoint       string
	token          string
	handler        handler
	dialAttempts   uint
	reconnectDelay time.Duration
}

func NewListener(endpoint, token string, h handler, logger *zap.Logger) *Listener {
	return &Listener{
		logger:         logger,
		endpoint:       endpoint,
		token:          token,
		handler:        h,
		dialAttempts:   5,
		reconnectDelay: time.Second,
	}
}

// Run listens until ctx is canceled, reconnecting whenever the connection drops. It returns
// an error when the endpoint stays unreachable for all dial attempts.
func (l *Listener) Run(ctx context.Context) error {
	for {
		conn, err := l.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		err = l.listen(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.logger.Warn("updates connection dropped", zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) connect(ctx context.Context) (*websocket.Conn, error) {
	endpoint, err := websocketURL(l.endpoint)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	if len(l.token) > 0 {
		header.Set("Authorization", "Bearer "+l.token)
	}
	var conn *websocket.Conn
	err = retry.Do(func() error {
		var err error
		conn, _, err = websocket.DefaultDialer.DialContext(ctx, endpoint, header)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(l.dialAttempts),
		retry.Delay(l.reconnectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			l.logger.Info("failed to connect to updates endpoint", zap.Uint("attempt", n), zap.Error(err))
		}))
	if err != nil {
		return nil, errors.Wrap(err, "connect to updates endpoint")
	}
	return conn, nil
}

func websocketURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.Wrap(err, "parse updates endpoint")
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return u.String(), nil
}

func (l *Listener) listen(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			// unblocks ReadMessage
			conn.Close()
		case <-done:
		}
		return nil
	})
	g.Go(func() error {
		defer close(done)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return err
			}
			l.process(msg)
		}
	})
	return g.Wait()
}

func (l *Listener) process(msg []byte) {
	update, err := wire.Decode(msg)
	if err != nil {
		updatesCounter.WithLabelValues("malformed").Inc()
		l.logger.Warn("failed to decode update", zap.Error(err))
		return
	}
	updatesCounter.WithLabelValues(update.TypeName()).Inc()
	if err := l.handler.HandleUpdate(update); err != nil {
		l.logger.Warn("update was not handled", zap.String("type", update.TypeName()), zap.Error(err))
	}
}
