package payments

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// AnswerShippingQuery accepts a shipping query with the given options when errorMessage is
// empty, and rejects it with errorMessage otherwise. Options of a rejection are ignored.
func (h *Handler) AnswerShippingQuery(ctx context.Context, queryID int64, options []oas.ShippingOption, errorMessage string, p *promise.Promise[promise.Unit]) {
	const op = "payments.answer_shipping_query"
	request := &wire.MessagesSetBotShippingResults{QueryID: queryID, Error: errorMessage}
	if errorMessage == "" {
		shippingOptions, err := shippingOptionsFromClient(op, options)
		if err != nil {
			p.SetError(err)
			return
		}
		request.ShippingOptions = g.Map(shippingOptions, shippingOptionToRemote)
	}
	call(ctx, h, op, request, p, convertBool(op))
}

// AnswerPreCheckoutQuery confirms the order when errorMessage is empty.
func (h *Handler) AnswerPreCheckoutQuery(ctx context.Context, queryID int64, errorMessage string, p *promise.Promise[promise.Unit]) {
	const op = "payments.answer_pre_checkout_query"
	request := &wire.MessagesSetBotPrecheckoutResults{
		Success: errorMessage == "",
		QueryID: queryID,
		Error:   errorMessage,
	}
	call(ctx, h, op, request, p, convertBool(op))
}

// HandleUpdate delivers a query sent by the backend to the update handler on the session
// executor. Updates that are not payment queries are rejected.
func (h *Handler) HandleUpdate(update wire.Object) error {
	const op = "payments.handle_update"
	var accepted bool
	switch u := update.(type) {
	case *wire.UpdateBotShippingQuery:
		query := shippingQueryFromRemote(u)
		h.logger.Debug("received shipping query", zap.Int64("query_id", query.ID))
		accepted = h.executor.Post(func() {
			if h.updateHandler != nil {
				h.updateHandler.OnNewShippingQuery(convertShippingQuery(query))
			}
		})
	case *wire.UpdateBotPrecheckoutQuery:
		query := preCheckoutQueryFromRemote(u)
		h.logger.Debug("received pre-checkout query", zap.Int64("query_id", query.ID))
		accepted = h.executor.Post(func() {
			if h.updateHandler != nil {
				h.updateHandler.OnNewPreCheckoutQuery(convertPreCheckoutQuery(query))
			}
		})
	default:
		return core.ParseError(errors.Errorf("unexpected update %s", typeName(update)), op, "unsupported update")
	}
	if !accepted {
		return core.Internal(errExecutorStopped, op, "session is closed")
	}
	return nil
}

func shippingQueryFromRemote(u *wire.UpdateBotShippingQuery) core.ShippingQuery {
	return core.ShippingQuery{
		ID:              u.QueryID,
		SenderUserID:    u.UserID,
		InvoicePayload:  u.Payload,
		ShippingAddress: addressFromRemote(u.ShippingAddress),
	}
}

func convertShippingQuery(q core.ShippingQuery) oas.UpdateNewShippingQuery {
	return oas.UpdateNewShippingQuery{
		ID:              q.ID,
		SenderUserID:    q.SenderUserID,
		InvoicePayload:  q.InvoicePayload,
		ShippingAddress: convertAddress(q.ShippingAddress),
	}
}

func preCheckoutQueryFromRemote(u *wire.UpdateBotPrecheckoutQuery) core.PreCheckoutQuery {
	return core.PreCheckoutQuery{
		ID:               u.QueryID,
		SenderUserID:     u.UserID,
		Currency:         u.Currency,
		TotalAmount:      u.TotalAmount,
		InvoicePayload:   u.Payload,
		ShippingOptionID: u.ShippingOptionID,
		OrderInfo:        orderInfoFromRemote(u.Info),
	}
}

func convertPreCheckoutQuery(q core.PreCheckoutQuery) oas.UpdateNewPreCheckoutQuery {
	return oas.UpdateNewPreCheckoutQuery{
		ID:               q.ID,
		SenderUserID:     q.SenderUserID,
		Currency:         q.Currency,
		TotalAmount:      q.TotalAmount,
		InvoicePayload:   q.InvoicePayload,
		ShippingOptionID: q.ShippingOptionID,
		OrderInfo:        convertOptOrderInfo(q.OrderInfo),
	}
}
