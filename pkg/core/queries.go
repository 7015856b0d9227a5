package core

import "github.com/arnac-io/chatpay/internal/g"

// ShippingQuery is sent by the backend to the bot when a buyer entered a shipping address
// for a flexible invoice. It has to be answered with AnswerShippingQuery.
type ShippingQuery struct {
	ID              int64
	SenderUserID    int64
	InvoicePayload  []byte
	ShippingAddress Address
}

// PreCheckoutQuery asks the bot for a final confirmation before the buyer is charged.
type PreCheckoutQuery struct {
	ID               int64
	SenderUserID     int64
	Currency         string
	TotalAmount      int64
	InvoicePayload   []byte
	ShippingOptionID string
	OrderInfo        g.Opt[OrderInfo]
}
