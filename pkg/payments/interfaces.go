package payments

import (
	"context"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// dispatcher moves remote-schema objects to and from the payments backend.
type dispatcher interface {
	// Send delivers request and calls cb exactly once, possibly on another goroutine, with
	// either the reply or an error. An error of type *wire.RPCError means the backend rejected
	// the request.
	Send(ctx context.Context, request wire.Request, cb func(wire.Object, error))
}

// executor is the sequential execution context of the session.
type executor interface {
	// Post schedules fn and reports whether it was accepted. A stopped executor accepts nothing.
	Post(fn func()) bool
}

// fileManager maps web files referenced by invoices to local file ids.
type fileManager interface {
	RegisterWebFile(f core.WebFile) (core.FileID, error)
	WebFile(id core.FileID) (core.WebFile, bool)
}

// messages resolves local message references to their backend addresses.
type messages interface {
	// ResolveMessage returns the peer and the backend message id of a message in a chat.
	ResolveMessage(chatID, messageID int64) (wire.InputPeer, int64, bool)
}

// UpdateHandler receives queries the backend sends to the bot during a payment.
// Both methods are called on the session executor.
type UpdateHandler interface {
	OnNewShippingQuery(update oas.UpdateNewShippingQuery)
	OnNewPreCheckoutQuery(update oas.UpdateNewPreCheckoutQuery)
}
