package wire

import "encoding/json"

type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

func (*LabeledPrice) TypeName() string { return "labeledPrice" }

// Invoice is the remote invoice. Recurring is set iff RecurringTermsURL is not empty.
type Invoice struct {
	Test                     bool           `json:"test,omitempty"`
	NameRequested            bool           `json:"name_requested,omitempty"`
	PhoneRequested           bool           `json:"phone_requested,omitempty"`
	EmailRequested           bool           `json:"email_requested,omitempty"`
	ShippingAddressRequested bool           `json:"shipping_address_requested,omitempty"`
	Flexible                 bool           `json:"flexible,omitempty"`
	PhoneToProvider          bool           `json:"phone_to_provider,omitempty"`
	EmailToProvider          bool           `json:"email_to_provider,omitempty"`
	Recurring                bool           `json:"recurring,omitempty"`
	Currency                 string         `json:"currency"`
	Prices                   []LabeledPrice `json:"prices"`
	MaxTipAmount             int64          `json:"max_tip_amount,omitempty"`
	SuggestedTipAmounts      []int64        `json:"suggested_tip_amounts,omitempty"`
	RecurringTermsURL        string         `json:"recurring_terms_url,omitempty"`
}

func (*Invoice) TypeName() string { return "invoice" }

type DocumentAttributeImageSize struct {
	W int32 `json:"w"`
	H int32 `json:"h"`
}

// WebDocument is a remote image referenced by URL.
type WebDocument struct {
	URL        string                       `json:"url"`
	AccessHash int64                        `json:"access_hash"`
	Size       int32                        `json:"size"`
	MimeType   string                       `json:"mime_type"`
	Attributes []DocumentAttributeImageSize `json:"attributes"`
}

func (*WebDocument) TypeName() string { return "webDocument" }

type InputWebDocument struct {
	URL        string                       `json:"url"`
	Size       int32                        `json:"size"`
	MimeType   string                       `json:"mime_type"`
	Attributes []DocumentAttributeImageSize `json:"attributes"`
}

func (*InputWebDocument) TypeName() string { return "inputWebDocument" }

// DataJSON carries a JSON document as an opaque string.
type DataJSON struct {
	Data string `json:"data"`
}

func (*DataJSON) TypeName() string { return "dataJSON" }

type PostAddress struct {
	StreetLine1 string `json:"street_line1"`
	StreetLine2 string `json:"street_line2"`
	City        string `json:"city"`
	State       string `json:"state"`
	CountryISO2 string `json:"country_iso2"`
	PostCode    string `json:"post_code"`
}

func (*PostAddress) TypeName() string { return "postAddress" }

type PaymentRequestedInfo struct {
	Name            string       `json:"name,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Email           string       `json:"email,omitempty"`
	ShippingAddress *PostAddress `json:"shipping_address,omitempty"`
}

func (*PaymentRequestedInfo) TypeName() string { return "paymentRequestedInfo" }

type ShippingOption struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Prices []LabeledPrice `json:"prices"`
}

func (*ShippingOption) TypeName() string { return "shippingOption" }

type PaymentSavedCredentialsCard struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (*PaymentSavedCredentialsCard) TypeName() string { return "paymentSavedCredentialsCard" }

// InputPeer addresses a chat on the backend. It is produced by the message store and
// forwarded as is.
type InputPeer struct {
	Kind       string `json:"kind"`
	ID         int64  `json:"id"`
	AccessHash int64  `json:"access_hash,omitempty"`
}

func (*InputPeer) TypeName() string { return "inputPeer" }

// ReplyMarkup is kept undecoded.
type ReplyMarkup = json.RawMessage

type BankCardOpenURL struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

func (*BankCardOpenURL) TypeName() string { return "bankCardOpenUrl" }
