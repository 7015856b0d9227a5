package payments

import (
	"unicode/utf8"

	"github.com/go-faster/errors"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

const (
	maxInvoiceTitleLength       = 32
	maxInvoiceDescriptionLength = 255
	invoicePhotoMimeType        = "image/jpeg"
)

// GetInputMediaInvoice builds the remote description of an invoice. The photo is attached by
// URL; payload and provider data are passed through as is.
func (t *Translator) GetInputMediaInvoice(inv core.InputInvoice) (wire.InputMediaInvoice, error) {
	const op = "payments.get_input_media_invoice"
	if len(inv.Invoice.PriceParts) == 0 {
		return wire.InputMediaInvoice{}, core.InvalidArgument(op, "invoice has no price parts")
	}
	photo, err := t.photoToRemote(op, inv.Photo)
	if err != nil {
		return wire.InputMediaInvoice{}, err
	}
	return wire.InputMediaInvoice{
		Title:        inv.Title,
		Description:  inv.Description,
		Photo:        photo,
		Invoice:      invoiceToRemote(inv.Invoice),
		Payload:      inv.Payload,
		Provider:     inv.ProviderToken,
		ProviderData: wire.DataJSON{Data: inv.ProviderData},
		StartParam:   inv.StartParameter,
	}, nil
}

// GetInputBotInlineMessageMediaInvoice is GetInputMediaInvoice for inline bot results.
func (t *Translator) GetInputBotInlineMessageMediaInvoice(inv core.InputInvoice, replyMarkup wire.ReplyMarkup) (wire.InputBotInlineMessageMediaInvoice, error) {
	const op = "payments.get_input_bot_inline_message_media_invoice"
	if len(inv.Invoice.PriceParts) == 0 {
		return wire.InputBotInlineMessageMediaInvoice{}, core.InvalidArgument(op, "invoice has no price parts")
	}
	photo, err := t.photoToRemote(op, inv.Photo)
	if err != nil {
		return wire.InputBotInlineMessageMediaInvoice{}, err
	}
	return wire.InputBotInlineMessageMediaInvoice{
		Title:        inv.Title,
		Description:  inv.Description,
		Photo:        photo,
		Invoice:      invoiceToRemote(inv.Invoice),
		Payload:      inv.Payload,
		Provider:     inv.ProviderToken,
		ProviderData: wire.DataJSON{Data: inv.ProviderData},
		ReplyMarkup:  replyMarkup,
	}, nil
}

// GetInputInvoice reads an invoice from any remote object that carries one.
// Message attachments carry only the total; it becomes the single price part.
func (t *Translator) GetInputInvoice(media wire.InvoiceMedia) (core.InputInvoice, error) {
	var inv core.InputInvoice
	switch m := media.(type) {
	case *wire.MessageMediaInvoice:
		inv = t.messageMediaInvoice(m)
	case *wire.BotInlineMessageMediaInvoice:
		inv = t.botInlineMessageMediaInvoice(m)
	case *wire.InputMediaInvoice:
		inv = t.inputMediaInvoice(m)
	default:
		return core.InputInvoice{}, core.ParseError(errors.Errorf("unexpected invoice media %T", media), "payments.get_input_invoice", "unsupported invoice media")
	}
	return t.normalizeInputInvoice(inv), nil
}

func (t *Translator) messageMediaInvoice(m *wire.MessageMediaInvoice) core.InputInvoice {
	inv := core.InputInvoice{
		Title:          m.Title,
		Description:    m.Description,
		Photo:          t.photoFromRemote(m.Photo),
		StartParameter: m.StartParam,
		Invoice: core.Invoice{
			Currency:            m.Currency,
			IsTest:              m.Test,
			NeedShippingAddress: m.ShippingAddressRequested,
		},
		TotalAmount: m.TotalAmount,
	}
	if m.ReceiptMsgID > 0 {
		inv.ReceiptMessageID = g.NewOpt(core.MessageID(m.ReceiptMsgID))
	}
	return inv
}

func (t *Translator) botInlineMessageMediaInvoice(m *wire.BotInlineMessageMediaInvoice) core.InputInvoice {
	return core.InputInvoice{
		Title:       m.Title,
		Description: m.Description,
		Photo:       t.photoFromRemote(m.Photo),
		Invoice: core.Invoice{
			Currency:            m.Currency,
			IsTest:              m.Test,
			NeedShippingAddress: m.ShippingAddressRequested,
		},
		TotalAmount: m.TotalAmount,
	}
}

func (t *Translator) inputMediaInvoice(m *wire.InputMediaInvoice) core.InputInvoice {
	return core.InputInvoice{
		Title:          m.Title,
		Description:    m.Description,
		Photo:          t.photoFromInputWebDocument(m.Photo),
		StartParameter: m.StartParam,
		Invoice:        invoiceFromRemote(m.Invoice),
		Payload:        m.Payload,
		ProviderToken:  m.Provider,
		ProviderData:   m.ProviderData.Data,
	}
}

func (t *Translator) normalizeInputInvoice(inv core.InputInvoice) core.InputInvoice {
	if len(inv.Invoice.PriceParts) == 0 {
		inv.Invoice.PriceParts = []core.LabeledPricePart{{Label: t.totalLabel(), Amount: inv.TotalAmount}}
	} else {
		inv.TotalAmount = inv.Invoice.TotalAmount()
	}
	return inv
}

// GetMessageInvoiceObject returns how the invoice is shown in a chat.
func (t *Translator) GetMessageInvoiceObject(inv core.InputInvoice) oas.MessageInvoice {
	res := oas.MessageInvoice{
		Title:               inv.Title,
		Description:         inv.Description,
		Photo:               convertOptPhoto(inv.Photo),
		Currency:            inv.Invoice.Currency,
		TotalAmount:         inv.TotalAmount,
		StartParameter:      inv.StartParameter,
		IsTest:              inv.Invoice.IsTest,
		NeedShippingAddress: inv.Invoice.NeedShippingAddress,
	}
	if id, ok := inv.ReceiptMessageID.Get(); ok {
		res.ReceiptMessageID = int64(id)
	}
	return res
}

// ProcessInputMessageInvoice validates an invoice a bot wants to send.
func (t *Translator) ProcessInputMessageInvoice(content oas.InputMessageContent) (core.InputInvoice, error) {
	const op = "payments.process_input_message_invoice"
	msg, ok := content.GetInputMessageInvoice()
	if !ok {
		return core.InputInvoice{}, core.InvalidArgument(op, "input message content type must be InputMessageInvoice")
	}
	for _, s := range []string{msg.Title, msg.Description, msg.PhotoURL, msg.StartParameter, msg.ProviderToken, msg.ProviderData} {
		if !utf8.ValidString(s) {
			return core.InputInvoice{}, core.InvalidArgument(op, "invoice strings must be encoded in UTF-8")
		}
	}
	if msg.Title == "" {
		return core.InputInvoice{}, core.InvalidArgument(op, "invoice title must be non-empty")
	}
	if utf8.RuneCountInString(msg.Title) > maxInvoiceTitleLength {
		return core.InputInvoice{}, core.InvalidArgument(op, "invoice title is too long")
	}
	if utf8.RuneCountInString(msg.Description) > maxInvoiceDescriptionLength {
		return core.InputInvoice{}, core.InvalidArgument(op, "invoice description is too long")
	}
	invoice, err := invoiceFromClient(op, msg.Invoice)
	if err != nil {
		return core.InputInvoice{}, err
	}
	inv := core.InputInvoice{
		Title:          msg.Title,
		Description:    msg.Description,
		StartParameter: msg.StartParameter,
		Invoice:        invoice,
		Payload:        msg.Payload,
		ProviderToken:  msg.ProviderToken,
		ProviderData:   msg.ProviderData,
		TotalAmount:    invoice.TotalAmount(),
	}
	if msg.PhotoURL != "" {
		if msg.PhotoSize < 0 || msg.PhotoWidth < 0 || msg.PhotoHeight < 0 {
			return core.InputInvoice{}, core.InvalidArgument(op, "invalid invoice photo dimensions")
		}
		f := core.WebFile{
			URL:      msg.PhotoURL,
			Size:     msg.PhotoSize,
			MimeType: invoicePhotoMimeType,
			Width:    msg.PhotoWidth,
			Height:   msg.PhotoHeight,
		}
		id, err := t.files.RegisterWebFile(f)
		if err != nil {
			return core.InputInvoice{}, core.InvalidArgument(op, "invalid invoice photo URL")
		}
		inv.Photo = g.NewOpt(core.Photo{
			Sizes: []core.PhotoSize{{
				Type:   webPhotoSizeType,
				Width:  f.Width,
				Height: f.Height,
				Size:   f.Size,
				File:   id,
			}},
		})
	}
	return inv, nil
}

// GetInputInvoiceFileIDs returns the files the invoice photo refers to.
func GetInputInvoiceFileIDs(inv core.InputInvoice) []core.FileID {
	return inv.FileIDs()
}
