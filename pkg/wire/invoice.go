package wire

// InvoiceMedia is implemented by every remote object an invoice can be read from.
type InvoiceMedia interface {
	Object
	isInvoiceMedia()
}

// MessageMediaInvoice is an invoice attached to a regular message. It carries the total only,
// not the price breakdown.
type MessageMediaInvoice struct {
	ShippingAddressRequested bool         `json:"shipping_address_requested,omitempty"`
	Test                     bool         `json:"test,omitempty"`
	Title                    string       `json:"title"`
	Description              string       `json:"description"`
	Photo                    *WebDocument `json:"photo,omitempty"`
	ReceiptMsgID             int64        `json:"receipt_msg_id,omitempty"`
	Currency                 string       `json:"currency"`
	TotalAmount              int64        `json:"total_amount"`
	StartParam               string       `json:"start_param"`
}

func (*MessageMediaInvoice) TypeName() string { return "messageMediaInvoice" }
func (*MessageMediaInvoice) isInvoiceMedia()  {}

// BotInlineMessageMediaInvoice is an invoice sent as an inline bot result.
type BotInlineMessageMediaInvoice struct {
	ShippingAddressRequested bool         `json:"shipping_address_requested,omitempty"`
	Test                     bool         `json:"test,omitempty"`
	Title                    string       `json:"title"`
	Description              string       `json:"description"`
	Photo                    *WebDocument `json:"photo,omitempty"`
	Currency                 string       `json:"currency"`
	TotalAmount              int64        `json:"total_amount"`
	ReplyMarkup              ReplyMarkup  `json:"reply_markup,omitempty"`
}

func (*BotInlineMessageMediaInvoice) TypeName() string { return "botInlineMessageMediaInvoice" }
func (*BotInlineMessageMediaInvoice) isInvoiceMedia()  {}

// InputMediaInvoice is a full invoice description as sent by a bot.
type InputMediaInvoice struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Photo        *InputWebDocument `json:"photo,omitempty"`
	Invoice      Invoice           `json:"invoice"`
	Payload      []byte            `json:"payload"`
	Provider     string            `json:"provider"`
	ProviderData DataJSON          `json:"provider_data"`
	StartParam   string            `json:"start_param,omitempty"`
}

func (*InputMediaInvoice) TypeName() string { return "inputMediaInvoice" }
func (*InputMediaInvoice) isInvoiceMedia()  {}

type InputBotInlineMessageMediaInvoice struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Photo        *InputWebDocument `json:"photo,omitempty"`
	Invoice      Invoice           `json:"invoice"`
	Payload      []byte            `json:"payload"`
	Provider     string            `json:"provider"`
	ProviderData DataJSON          `json:"provider_data"`
	ReplyMarkup  ReplyMarkup       `json:"reply_markup,omitempty"`
}

func (*InputBotInlineMessageMediaInvoice) TypeName() string {
	return "inputBotInlineMessageMediaInvoice"
}
