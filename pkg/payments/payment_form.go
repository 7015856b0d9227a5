package payments

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

const maxColor = 0xFFFFFF

// GetPaymentForm fetches the payment form of an invoice. The form's invoice is remembered
// so that SendPaymentForm can check the tip locally.
func (h *Handler) GetPaymentForm(ctx context.Context, invoice oas.InputInvoice, theme *oas.ThemeParameters, p *promise.Promise[*oas.PaymentForm]) {
	const op = "payments.get_payment_form"
	input, err := h.inputInvoiceToRemote(op, invoice)
	if err != nil {
		p.SetError(err)
		return
	}
	themeParams, err := themeParametersToRemote(op, theme)
	if err != nil {
		p.SetError(err)
		return
	}
	request := &wire.PaymentsGetPaymentForm{Invoice: input, ThemeParams: themeParams}
	call(ctx, h, op, request, p, func(form *wire.PaymentsPaymentForm) (*oas.PaymentForm, error) {
		res := h.paymentFormFromRemote(form)
		h.forms.Set(form.FormID, invoiceFromRemote(form.Invoice))
		return res, nil
	})
}

func (h *Handler) inputInvoiceToRemote(op string, invoice oas.InputInvoice) (wire.InputInvoice, error) {
	switch invoice.Type {
	case oas.InputInvoiceMessageInputInvoice:
		m := invoice.InputInvoiceMessage
		peer, msgID, ok := h.messages.ResolveMessage(m.ChatID, m.MessageID)
		if !ok {
			return wire.InputInvoice{}, core.NotFound(op, "invoice message not found")
		}
		return wire.NewInputInvoiceMessageInputInvoice(wire.InputInvoiceMessage{Peer: peer, MsgID: msgID}), nil
	case oas.InputInvoiceNameInputInvoice:
		if invoice.InputInvoiceName.Name == "" {
			return wire.InputInvoice{}, core.InvalidArgument(op, "invoice name must be non-empty")
		}
		return wire.NewInputInvoiceSlugInputInvoice(wire.InputInvoiceSlug{Slug: invoice.InputInvoiceName.Name}), nil
	}
	return wire.InputInvoice{}, core.InvalidArgument(op, "input invoice must be non-empty")
}

// themeParametersToRemote encodes theme colors as #rrggbb strings. A nil theme is not sent.
func themeParametersToRemote(op string, theme *oas.ThemeParameters) (*wire.DataJSON, error) {
	if theme == nil {
		return nil, nil
	}
	colors := []struct {
		key   string
		color int32
	}{
		{"bg_color", theme.BackgroundColor},
		{"secondary_bg_color", theme.SecondaryBackgroundColor},
		{"header_bg_color", theme.HeaderBackgroundColor},
		{"section_bg_color", theme.SectionBackgroundColor},
		{"text_color", theme.TextColor},
		{"accent_text_color", theme.AccentTextColor},
		{"section_header_text_color", theme.SectionHeaderTextColor},
		{"subtitle_text_color", theme.SubtitleTextColor},
		{"destructive_text_color", theme.DestructiveTextColor},
		{"hint_color", theme.HintColor},
		{"link_color", theme.LinkColor},
		{"button_color", theme.ButtonColor},
		{"button_text_color", theme.ButtonTextColor},
	}
	var e jx.Encoder
	e.ObjStart()
	for _, c := range colors {
		if c.color < 0 || c.color > maxColor {
			return nil, core.InvalidArgument(op, "invalid theme color %s", c.key)
		}
		e.FieldStart(c.key)
		e.Str(fmt.Sprintf("#%06x", c.color))
	}
	e.ObjEnd()
	return &wire.DataJSON{Data: string(e.Bytes())}, nil
}

func (h *Handler) paymentFormFromRemote(form *wire.PaymentsPaymentForm) *oas.PaymentForm {
	invoice := invoiceFromRemote(form.Invoice)
	res := &oas.PaymentForm{
		ID:                    form.FormID,
		Invoice:               convertInvoice(invoice),
		TotalAmount:           invoice.TotalAmount(),
		SellerBotUserID:       form.BotID,
		PaymentProviderUserID: form.ProviderID,
		PaymentProvider:       h.paymentProviderFromRemote(form),
		SavedOrderInfo:        convertOptOrderInfo(orderInfoFromRemote(form.SavedInfo)),
		SavedCredentials: g.Map(form.SavedCredentials, func(c wire.PaymentSavedCredentialsCard) oas.SavedCredentials {
			return oas.SavedCredentials{ID: c.ID, Title: c.Title}
		}),
		CanSaveCredentials: form.CanSaveCredentials,
		NeedPassword:       form.PasswordMissing,
		ProductTitle:       form.Title,
		ProductDescription: form.Description,
		ProductPhoto:       convertOptPhoto(h.translator.photoFromRemote(form.Photo)),
	}
	return res
}

// paymentProviderFromRemote decodes the native provider parameters. Forms with unknown or
// malformed native parameters fall back to the provider page URL.
func (h *Handler) paymentProviderFromRemote(form *wire.PaymentsPaymentForm) oas.PaymentProvider {
	fallback := oas.NewPaymentProviderOtherPaymentProvider(oas.PaymentProviderOther{URL: form.URL})
	if form.NativeParams == nil {
		return fallback
	}
	var (
		provider oas.PaymentProvider
		err      error
	)
	switch form.NativeProvider {
	case "stripe":
		provider, err = decodeStripeParams([]byte(form.NativeParams.Data))
	case "smartglocal":
		provider, err = decodeSmartGlocalParams([]byte(form.NativeParams.Data))
	default:
		return fallback
	}
	if err != nil {
		h.logger.Warn("failed to decode native payment provider parameters",
			zap.String("provider", form.NativeProvider),
			zap.Error(err))
		return fallback
	}
	return provider
}

func decodeStripeParams(data []byte) (oas.PaymentProvider, error) {
	var p oas.PaymentProviderStripe
	err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "publishable_key":
			p.PublishableKey, err = d.Str()
		case "need_country":
			p.NeedCountry, err = d.Bool()
		case "need_zip":
			p.NeedPostalCode, err = d.Bool()
		case "need_cardholder_name":
			p.NeedCardholderName, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return oas.PaymentProvider{}, errors.Wrap(err, "stripe parameters")
	}
	if p.PublishableKey == "" {
		return oas.PaymentProvider{}, errors.New("stripe publishable key is missing")
	}
	return oas.NewPaymentProviderStripePaymentProvider(p), nil
}

func decodeSmartGlocalParams(data []byte) (oas.PaymentProvider, error) {
	var p oas.PaymentProviderSmartGlocal
	err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "public_token" {
			return d.Skip()
		}
		var err error
		p.PublicToken, err = d.Str()
		return err
	})
	if err != nil {
		return oas.PaymentProvider{}, errors.Wrap(err, "smartglocal parameters")
	}
	if p.PublicToken == "" {
		return oas.PaymentProvider{}, errors.New("smartglocal public token is missing")
	}
	return oas.NewPaymentProviderSmartGlocalPaymentProvider(p), nil
}
