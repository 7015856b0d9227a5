// Package oas is the client-facing schema of the payments API.
// Sum types carry a Type discriminator and one field per variant; optional values use Opt* wrappers.
package oas

type LabeledPricePart struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type Invoice struct {
	Currency                          string             `json:"currency"`
	PriceParts                        []LabeledPricePart `json:"price_parts"`
	MaxTipAmount                      int64              `json:"max_tip_amount"`
	SuggestedTipAmounts               []int64            `json:"suggested_tip_amounts"`
	RecurringPaymentTermsOfServiceURL string             `json:"recurring_payment_terms_of_service_url"`
	IsTest                            bool               `json:"is_test"`
	NeedName                          bool               `json:"need_name"`
	NeedPhoneNumber                   bool               `json:"need_phone_number"`
	NeedEmailAddress                  bool               `json:"need_email_address"`
	NeedShippingAddress               bool               `json:"need_shipping_address"`
	SendPhoneNumberToProvider         bool               `json:"send_phone_number_to_provider"`
	SendEmailAddressToProvider        bool               `json:"send_email_address_to_provider"`
	IsFlexible                        bool               `json:"is_flexible"`
}

type Address struct {
	CountryCode string `json:"country_code"`
	State       string `json:"state"`
	City        string `json:"city"`
	StreetLine1 string `json:"street_line1"`
	StreetLine2 string `json:"street_line2"`
	PostalCode  string `json:"postal_code"`
}

type OrderInfo struct {
	Name            string     `json:"name"`
	PhoneNumber     string     `json:"phone_number"`
	EmailAddress    string     `json:"email_address"`
	ShippingAddress OptAddress `json:"shipping_address"`
}

type ShippingOption struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	PriceParts []LabeledPricePart `json:"price_parts"`
}

type File struct {
	ID   int32 `json:"id"`
	Size int32 `json:"size"`
}

type PhotoSize struct {
	Type   string `json:"type"`
	Photo  File   `json:"photo"`
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
}

type Photo struct {
	Sizes []PhotoSize `json:"sizes"`
}

// InputMessageInvoice describes an invoice a bot wants to send. Payload and ProviderData are
// opaque to the client and forwarded unchanged.
type InputMessageInvoice struct {
	Invoice        Invoice `json:"invoice"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	PhotoURL       string  `json:"photo_url"`
	PhotoSize      int32   `json:"photo_size"`
	PhotoWidth     int32   `json:"photo_width"`
	PhotoHeight    int32   `json:"photo_height"`
	Payload        []byte  `json:"payload"`
	ProviderToken  string  `json:"provider_token"`
	ProviderData   string  `json:"provider_data"`
	StartParameter string  `json:"start_parameter"`
}

type InputMessageText struct {
	Text string `json:"text"`
}

// MessageInvoice is how an invoice attached to a message is displayed.
type MessageInvoice struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Photo               OptPhoto `json:"photo"`
	Currency            string   `json:"currency"`
	TotalAmount         int64    `json:"total_amount"`
	StartParameter      string   `json:"start_parameter"`
	IsTest              bool     `json:"is_test"`
	NeedShippingAddress bool     `json:"need_shipping_address"`
	ReceiptMessageID    int64    `json:"receipt_message_id"`
}

type InputInvoiceMessage struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

type InputInvoiceName struct {
	Name string `json:"name"`
}

// ThemeParameters are RGB24 colors of the client UI passed to the payment provider page.
type ThemeParameters struct {
	BackgroundColor          int32 `json:"background_color"`
	SecondaryBackgroundColor int32 `json:"secondary_background_color"`
	HeaderBackgroundColor    int32 `json:"header_background_color"`
	SectionBackgroundColor   int32 `json:"section_background_color"`
	TextColor                int32 `json:"text_color"`
	AccentTextColor          int32 `json:"accent_text_color"`
	SectionHeaderTextColor   int32 `json:"section_header_text_color"`
	SubtitleTextColor        int32 `json:"subtitle_text_color"`
	DestructiveTextColor     int32 `json:"destructive_text_color"`
	HintColor                int32 `json:"hint_color"`
	LinkColor                int32 `json:"link_color"`
	ButtonColor              int32 `json:"button_color"`
	ButtonTextColor          int32 `json:"button_text_color"`
}

type PaymentProviderSmartGlocal struct {
	PublicToken string `json:"public_token"`
}

type PaymentProviderStripe struct {
	PublishableKey     string `json:"publishable_key"`
	NeedCountry        bool   `json:"need_country"`
	NeedPostalCode     bool   `json:"need_postal_code"`
	NeedCardholderName bool   `json:"need_cardholder_name"`
}

type PaymentProviderOther struct {
	URL string `json:"url"`
}

type SavedCredentials struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type PaymentForm struct {
	ID                    int64              `json:"id"`
	Invoice               Invoice            `json:"invoice"`
	TotalAmount           int64              `json:"total_amount"`
	SellerBotUserID       int64              `json:"seller_bot_user_id"`
	PaymentProviderUserID int64              `json:"payment_provider_user_id"`
	PaymentProvider       PaymentProvider    `json:"payment_provider"`
	SavedOrderInfo        OptOrderInfo       `json:"saved_order_info"`
	SavedCredentials      []SavedCredentials `json:"saved_credentials"`
	CanSaveCredentials    bool               `json:"can_save_credentials"`
	NeedPassword          bool               `json:"need_password"`
	ProductTitle          string             `json:"product_title"`
	ProductDescription    string             `json:"product_description"`
	ProductPhoto          OptPhoto           `json:"product_photo"`
}

type ValidatedOrderInfo struct {
	OrderInfoID     string           `json:"order_info_id"`
	ShippingOptions []ShippingOption `json:"shipping_options"`
}

type InputCredentialsSaved struct {
	SavedCredentialsID string `json:"saved_credentials_id"`
}

type InputCredentialsNew struct {
	Data      string `json:"data"`
	AllowSave bool   `json:"allow_save"`
}

type InputCredentialsApplePay struct {
	Data string `json:"data"`
}

type InputCredentialsGooglePay struct {
	Data string `json:"data"`
}

// PaymentResult is either a success or a URL the buyer has to open to finish the payment.
type PaymentResult struct {
	Success         bool   `json:"success"`
	VerificationURL string `json:"verification_url"`
}

type PaymentReceipt struct {
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	Photo                 OptPhoto          `json:"photo"`
	Date                  int32             `json:"date"`
	SellerBotUserID       int64             `json:"seller_bot_user_id"`
	PaymentProviderUserID int64             `json:"payment_provider_user_id"`
	Invoice               Invoice           `json:"invoice"`
	OrderInfo             OptOrderInfo      `json:"order_info"`
	ShippingOption        OptShippingOption `json:"shipping_option"`
	CredentialsTitle      string            `json:"credentials_title"`
	TipAmount             int64             `json:"tip_amount"`
	TotalAmount           int64             `json:"total_amount"`
}

type BankCardActionOpenURL struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type BankCardInfo struct {
	Title   string                  `json:"title"`
	Actions []BankCardActionOpenURL `json:"actions"`
}

type UpdateNewShippingQuery struct {
	ID              int64   `json:"id"`
	SenderUserID    int64   `json:"sender_user_id"`
	InvoicePayload  []byte  `json:"invoice_payload"`
	ShippingAddress Address `json:"shipping_address"`
}

type UpdateNewPreCheckoutQuery struct {
	ID               int64        `json:"id"`
	SenderUserID     int64        `json:"sender_user_id"`
	Currency         string       `json:"currency"`
	TotalAmount      int64        `json:"total_amount"`
	InvoicePayload   []byte       `json:"invoice_payload"`
	ShippingOptionID string       `json:"shipping_option_id"`
	OrderInfo        OptOrderInfo `json:"order_info"`
}
