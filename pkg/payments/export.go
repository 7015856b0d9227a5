package payments

import (
	"context"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// ExportInvoice returns a shareable link to an invoice that is not attached to a message.
func (h *Handler) ExportInvoice(ctx context.Context, content oas.InputMessageContent, p *promise.Promise[string]) {
	const op = "payments.export_invoice"
	inv, err := h.translator.ProcessInputMessageInvoice(content)
	if err != nil {
		p.SetError(core.WithOp(err, op))
		return
	}
	media, err := h.translator.GetInputMediaInvoice(inv)
	if err != nil {
		p.SetError(core.WithOp(err, op))
		return
	}
	call(ctx, h, op, &wire.PaymentsExportInvoice{InvoiceMedia: media}, p, func(reply *wire.PaymentsExportedInvoice) (string, error) {
		return reply.URL, nil
	})
}

// GetBankCardInfo looks up the issuer of a card. The number is sent as is and never logged.
func (h *Handler) GetBankCardInfo(ctx context.Context, number string, p *promise.Promise[*oas.BankCardInfo]) {
	const op = "payments.get_bank_card_info"
	if number == "" {
		p.SetError(core.InvalidArgument(op, "bank card number must be non-empty"))
		return
	}
	call(ctx, h, op, &wire.PaymentsGetBankCardData{Number: number}, p, func(reply *wire.PaymentsBankCardData) (*oas.BankCardInfo, error) {
		actions := make([]oas.BankCardActionOpenURL, 0, len(reply.OpenURLs))
		for _, u := range reply.OpenURLs {
			actions = append(actions, oas.BankCardActionOpenURL{Text: u.Name, URL: u.URL})
		}
		return &oas.BankCardInfo{Title: reply.Title, Actions: actions}, nil
	})
}
