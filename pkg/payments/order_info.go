package payments

import (
	"context"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// ValidateOrderInfo submits buyer-entered order info for an invoice. Rejections by the
// backend, e.g. an unsupported shipping country, are returned with the backend's message.
func (h *Handler) ValidateOrderInfo(ctx context.Context, invoice oas.InputInvoice, orderInfo *oas.OrderInfo, allowSave bool, p *promise.Promise[*oas.ValidatedOrderInfo]) {
	const op = "payments.validate_order_info"
	input, err := h.inputInvoiceToRemote(op, invoice)
	if err != nil {
		p.SetError(err)
		return
	}
	info, err := orderInfoFromClient(op, orderInfo)
	if err != nil {
		p.SetError(err)
		return
	}
	request := &wire.PaymentsValidateRequestedInfo{
		Save:    allowSave,
		Invoice: input,
		Info:    orderInfoToRemote(info),
	}
	call(ctx, h, op, request, p, func(reply *wire.PaymentsValidatedRequestedInfo) (*oas.ValidatedOrderInfo, error) {
		return &oas.ValidatedOrderInfo{
			OrderInfoID:     reply.ID,
			ShippingOptions: convertShippingOptions(g.Map(reply.ShippingOptions, shippingOptionFromRemote)),
		}, nil
	})
}

// GetSavedOrderInfo returns the order info saved on the backend, if any.
func (h *Handler) GetSavedOrderInfo(ctx context.Context, p *promise.Promise[oas.OptOrderInfo]) {
	const op = "payments.get_saved_order_info"
	call(ctx, h, op, &wire.PaymentsGetSavedInfo{}, p, func(reply *wire.PaymentsSavedInfo) (oas.OptOrderInfo, error) {
		return convertOptOrderInfo(orderInfoFromRemote(reply.SavedInfo)), nil
	})
}

func (h *Handler) DeleteSavedOrderInfo(ctx context.Context, p *promise.Promise[promise.Unit]) {
	const op = "payments.delete_saved_order_info"
	call(ctx, h, op, &wire.PaymentsClearSavedInfo{Info: true}, p, convertBool(op))
}

func (h *Handler) DeleteSavedCredentials(ctx context.Context, p *promise.Promise[promise.Unit]) {
	const op = "payments.delete_saved_credentials"
	call(ctx, h, op, &wire.PaymentsClearSavedInfo{Credentials: true}, p, convertBool(op))
}
