package payments

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/cache"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// Handler runs the payment flow of one client session. Every operation resolves its promise
// exactly once. Local validation failures resolve it before the method returns; everything
// else resolves it on the session executor once the backend replied.
//
// The caller is responsible for sequencing within one payment: ValidateOrderInfo is expected
// to complete before SendPaymentForm uses its result. The handler does not check this.
type Handler struct {
	logger        *zap.Logger
	dispatcher    dispatcher
	executor      executor
	messages      messages
	translator    *Translator
	updateHandler UpdateHandler
	// forms keeps the invoices of fetched payment forms by form id.
	forms *cache.Cache[int64, core.Invoice]
}

type Options struct {
	logger         *zap.Logger
	language       string
	messages       messages
	updateHandler  UpdateHandler
	formsCacheSize int
	formTTL        time.Duration
}

type Option func(o *Options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithLanguage sets the language of labels generated by the handler.
func WithLanguage(lang string) Option {
	return func(o *Options) {
		o.language = lang
	}
}

func WithMessages(m messages) Option {
	return func(o *Options) {
		o.messages = m
	}
}

func WithUpdateHandler(h UpdateHandler) Option {
	return func(o *Options) {
		o.updateHandler = h
	}
}

// WithPaymentForms configures how many fetched payment forms are remembered and for how long.
func WithPaymentForms(size int, ttl time.Duration) Option {
	return func(o *Options) {
		o.formsCacheSize = size
		o.formTTL = ttl
	}
}

func NewHandler(d dispatcher, e executor, files fileManager, opts ...Option) *Handler {
	o := &Options{
		logger:         zap.NewNop(),
		language:       "en",
		messages:       noMessages{},
		formsCacheSize: 256,
		formTTL:        time.Hour,
	}
	for i := range opts {
		opts[i](o)
	}
	return &Handler{
		logger:        o.logger,
		dispatcher:    d,
		executor:      e,
		messages:      o.messages,
		translator:    NewTranslator(files, o.language, o.logger),
		updateHandler: o.updateHandler,
		forms:         cache.NewLRUCache[int64, core.Invoice](o.formsCacheSize, "payment_forms", cache.WithTTL(o.formTTL)),
	}
}

// Translator returns the invoice translator bound to the session's file manager.
func (h *Handler) Translator() *Translator {
	return h.translator
}

type noMessages struct{}

func (noMessages) ResolveMessage(chatID, messageID int64) (wire.InputPeer, int64, bool) {
	return wire.InputPeer{}, 0, false
}

// errExecutorStopped is reported when the session executor no longer accepts work.
var errExecutorStopped = errors.New("session executor stopped")

// call sends request and resolves p on the executor with the converted reply. If the executor
// has stopped, p is resolved right away on the dispatcher's goroutine.
func call[R wire.Object, T any](ctx context.Context, h *Handler, op string, request wire.Request, p *promise.Promise[T], convert func(R) (T, error)) {
	h.logger.Debug("sending payments request", zap.String("op", op), zap.String("method", request.TypeName()))
	h.dispatcher.Send(ctx, request, func(reply wire.Object, err error) {
		accepted := h.executor.Post(func() {
			resolve(h, op, p, reply, err, convert)
		})
		if !accepted {
			h.logger.Warn("payments reply arrived after session stopped", zap.String("op", op))
			p.SetError(core.TransportFailure(errExecutorStopped, op))
		}
	})
}

func resolve[R wire.Object, T any](h *Handler, op string, p *promise.Promise[T], reply wire.Object, err error, convert func(R) (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("payments reply handling panicked", zap.String("op", op), zap.Any("panic", r), zap.Stack("stack"))
			p.SetError(core.Internal(errors.Errorf("panic: %v", r), op, "internal error"))
		}
	}()
	if err != nil {
		err = remoteError(op, err)
		h.logger.Info("payments request failed", zap.String("op", op), zap.Error(err))
		p.SetError(err)
		return
	}
	r, ok := reply.(R)
	if !ok {
		p.SetError(core.ParseError(errors.Errorf("unexpected reply %s", typeName(reply)), op, "unexpected reply from payments backend"))
		return
	}
	v, err := convert(r)
	if err != nil {
		p.SetError(core.WithOp(err, op))
		return
	}
	p.Set(v)
}

func typeName(obj wire.Object) string {
	if obj == nil {
		return "nil"
	}
	return obj.TypeName()
}

func convertBool(op string) func(wire.Object) (promise.Unit, error) {
	return func(reply wire.Object) (promise.Unit, error) {
		switch reply.(type) {
		case *wire.BoolTrue:
			return promise.Unit{}, nil
		case *wire.BoolFalse:
			return promise.Unit{}, core.RemoteRejected(nil, op, "request was not accepted by payments backend")
		}
		return promise.Unit{}, core.ParseError(errors.Errorf("unexpected reply %s", reply.TypeName()), op, "unexpected reply from payments backend")
	}
}
