package payments

import (
	"github.com/go-faster/errors"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// Backend error messages meaning that a referenced object doesn't resolve anymore.
var notFoundMessages = map[string]struct{}{
	"MESSAGE_ID_INVALID":   {},
	"INVOICE_SLUG_INVALID": {},
	"PEER_ID_INVALID":      {},
	"FORM_ID_EXPIRED":      {},
	"FORM_ID_EMPTY":        {},
	"SLUG_INVALID":         {},
}

// remoteError classifies an error returned by the dispatcher.
func remoteError(op string, err error) error {
	var rpcErr *wire.RPCError
	if errors.As(err, &rpcErr) {
		if _, ok := notFoundMessages[rpcErr.Message]; ok {
			return &core.Error{Code: core.CodeNotFound, Op: op, Message: rpcErr.Message, Err: err}
		}
		return core.RemoteRejected(err, op, rpcErr.Message)
	}
	var e *core.Error
	if errors.As(err, &e) {
		return core.WithOp(err, op)
	}
	return core.TransportFailure(err, op)
}
