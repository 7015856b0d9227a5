package wire

// UpdateBotShippingQuery asks the bot whether it can ship to the given address.
type UpdateBotShippingQuery struct {
	QueryID         int64       `json:"query_id"`
	UserID          int64       `json:"user_id"`
	Payload         []byte      `json:"payload"`
	ShippingAddress PostAddress `json:"shipping_address"`
}

func (*UpdateBotShippingQuery) TypeName() string { return "updateBotShippingQuery" }

// UpdateBotPrecheckoutQuery asks the bot to confirm an order before the buyer is charged.
type UpdateBotPrecheckoutQuery struct {
	QueryID          int64                 `json:"query_id"`
	UserID           int64                 `json:"user_id"`
	Payload          []byte                `json:"payload"`
	Info             *PaymentRequestedInfo `json:"info,omitempty"`
	ShippingOptionID string                `json:"shipping_option_id,omitempty"`
	Currency         string                `json:"currency"`
	TotalAmount      int64                 `json:"total_amount"`
}

func (*UpdateBotPrecheckoutQuery) TypeName() string { return "updateBotPrecheckoutQuery" }
