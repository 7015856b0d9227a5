package payments

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// SendPaymentForm submits the payment. formID must come from a GetPaymentForm call of this
// session; the tip is checked against that form's invoice before anything is sent.
func (h *Handler) SendPaymentForm(ctx context.Context, invoice oas.InputInvoice, formID int64, orderInfoID, shippingOptionID string, credentials oas.InputCredentials, tipAmount int64, p *promise.Promise[*oas.PaymentResult]) {
	const op = "payments.send_payment_form"
	form, ok := h.forms.Get(formID)
	if !ok {
		p.SetError(core.NotFound(op, "payment form not found"))
		return
	}
	if err := checkTipAmount(op, form, tipAmount); err != nil {
		p.SetError(err)
		return
	}
	input, err := h.inputInvoiceToRemote(op, invoice)
	if err != nil {
		p.SetError(err)
		return
	}
	remoteCredentials, err := credentialsToRemote(op, credentials)
	if err != nil {
		p.SetError(err)
		return
	}
	request := &wire.PaymentsSendPaymentForm{
		FormID:           formID,
		Invoice:          input,
		RequestedInfoID:  orderInfoID,
		ShippingOptionID: shippingOptionID,
		Credentials:      remoteCredentials,
		TipAmount:        tipAmount,
	}
	call(ctx, h, op, request, p, func(reply wire.Object) (*oas.PaymentResult, error) {
		switch r := reply.(type) {
		case *wire.PaymentsPaymentResult:
			return &oas.PaymentResult{Success: true}, nil
		case *wire.PaymentsPaymentVerificationNeeded:
			return &oas.PaymentResult{VerificationURL: r.URL}, nil
		}
		return nil, core.ParseError(errors.Errorf("unexpected reply %s", reply.TypeName()), op, "unexpected reply from payments backend")
	})
}

// checkTipAmount allows any non-negative tip when the invoice has no tip limit.
func checkTipAmount(op string, invoice core.Invoice, tip int64) error {
	if tip < 0 {
		return core.InvalidArgument(op, "wrong tip amount specified")
	}
	if invoice.MaxTipAmount > 0 && tip > invoice.MaxTipAmount {
		return core.InvalidArgument(op, "tip amount can't be bigger than %d", invoice.MaxTipAmount)
	}
	return nil
}

// credentialsToRemote forwards credential payloads unchanged.
func credentialsToRemote(op string, c oas.InputCredentials) (wire.InputPaymentCredentials, error) {
	switch c.Type {
	case oas.InputCredentialsSavedInputCredentials:
		if c.InputCredentialsSaved.SavedCredentialsID == "" {
			return wire.InputPaymentCredentials{}, core.InvalidArgument(op, "saved credentials identifier must be non-empty")
		}
		return wire.InputPaymentCredentials{
			Type:                         wire.InputPaymentCredentialsSavedInputPaymentCredentials,
			InputPaymentCredentialsSaved: wire.InputPaymentCredentialsSaved{ID: c.InputCredentialsSaved.SavedCredentialsID},
		}, nil
	case oas.InputCredentialsNewInputCredentials:
		if c.InputCredentialsNew.Data == "" {
			return wire.InputPaymentCredentials{}, core.InvalidArgument(op, "credentials data must be non-empty")
		}
		return wire.InputPaymentCredentials{
			Type: wire.InputPaymentCredentialsNewInputPaymentCredentials,
			InputPaymentCredentialsNew: wire.InputPaymentCredentialsNew{
				Save: c.InputCredentialsNew.AllowSave,
				Data: wire.DataJSON{Data: c.InputCredentialsNew.Data},
			},
		}, nil
	case oas.InputCredentialsApplePayInputCredentials:
		if c.InputCredentialsApplePay.Data == "" {
			return wire.InputPaymentCredentials{}, core.InvalidArgument(op, "Apple Pay data must be non-empty")
		}
		return wire.InputPaymentCredentials{
			Type:                            wire.InputPaymentCredentialsApplePayInputPaymentCredentials,
			InputPaymentCredentialsApplePay: wire.InputPaymentCredentialsApplePay{PaymentData: wire.DataJSON{Data: c.InputCredentialsApplePay.Data}},
		}, nil
	case oas.InputCredentialsGooglePayInputCredentials:
		if c.InputCredentialsGooglePay.Data == "" {
			return wire.InputPaymentCredentials{}, core.InvalidArgument(op, "Google Pay data must be non-empty")
		}
		return wire.InputPaymentCredentials{
			Type:                             wire.InputPaymentCredentialsGooglePayInputPaymentCredentials,
			InputPaymentCredentialsGooglePay: wire.InputPaymentCredentialsGooglePay{PaymentToken: wire.DataJSON{Data: c.InputCredentialsGooglePay.Data}},
		}, nil
	}
	return wire.InputPaymentCredentials{}, core.InvalidArgument(op, "input payment credentials must be non-empty")
}

// GetPaymentReceipt returns the receipt attached to a message.
func (h *Handler) GetPaymentReceipt(ctx context.Context, chatID, messageID int64, p *promise.Promise[*oas.PaymentReceipt]) {
	const op = "payments.get_payment_receipt"
	peer, msgID, ok := h.messages.ResolveMessage(chatID, messageID)
	if !ok {
		p.SetError(core.NotFound(op, "message not found"))
		return
	}
	request := &wire.PaymentsGetPaymentReceipt{Peer: peer, MsgID: msgID}
	call(ctx, h, op, request, p, func(r *wire.PaymentsPaymentReceipt) (*oas.PaymentReceipt, error) {
		invoice := invoiceFromRemote(r.Invoice)
		if invoice.Currency != r.Currency {
			h.logger.Warn("receipt currency differs from invoice currency",
				zap.String("receipt_currency", r.Currency),
				zap.String("invoice_currency", invoice.Currency))
		}
		res := &oas.PaymentReceipt{
			Title:                 r.Title,
			Description:           r.Description,
			Photo:                 convertOptPhoto(h.translator.photoFromRemote(r.Photo)),
			Date:                  r.Date,
			SellerBotUserID:       r.BotID,
			PaymentProviderUserID: r.ProviderID,
			Invoice:               convertInvoice(invoice),
			OrderInfo:             convertOptOrderInfo(orderInfoFromRemote(r.Info)),
			CredentialsTitle:      r.CredentialsTitle,
			TipAmount:             r.TipAmount,
			TotalAmount:           r.TotalAmount,
		}
		if r.Shipping != nil {
			res.ShippingOption.SetTo(convertShippingOption(shippingOptionFromRemote(*r.Shipping)))
		}
		return res, nil
	})
}
