package wire

import (
	"encoding/json"

	"github.com/go-faster/errors"
)

type InputInvoiceMessage struct {
	Peer  InputPeer `json:"peer"`
	MsgID int64     `json:"msg_id"`
}

func (*InputInvoiceMessage) TypeName() string { return "inputInvoiceMessage" }

type InputInvoiceSlug struct {
	Slug string `json:"slug"`
}

func (*InputInvoiceSlug) TypeName() string { return "inputInvoiceSlug" }

// InputInvoiceType is oneOf type of InputInvoice.
type InputInvoiceType string

const (
	InputInvoiceMessageInputInvoice InputInvoiceType = "inputInvoiceMessage"
	InputInvoiceSlugInputInvoice    InputInvoiceType = "inputInvoiceSlug"
)

// InputInvoice references an invoice on the backend.
type InputInvoice struct {
	Type                InputInvoiceType
	InputInvoiceMessage InputInvoiceMessage
	InputInvoiceSlug    InputInvoiceSlug
}

func NewInputInvoiceMessageInputInvoice(v InputInvoiceMessage) InputInvoice {
	return InputInvoice{Type: InputInvoiceMessageInputInvoice, InputInvoiceMessage: v}
}

func NewInputInvoiceSlugInputInvoice(v InputInvoiceSlug) InputInvoice {
	return InputInvoice{Type: InputInvoiceSlugInputInvoice, InputInvoiceSlug: v}
}

func (s InputInvoice) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case InputInvoiceMessageInputInvoice:
		return Marshal(&s.InputInvoiceMessage)
	case InputInvoiceSlugInputInvoice:
		return Marshal(&s.InputInvoiceSlug)
	}
	return nil, errors.Errorf("invalid InputInvoice type %q", s.Type)
}

func (s *InputInvoice) UnmarshalJSON(data []byte) error {
	name, err := TypeOf(data)
	if err != nil {
		return err
	}
	switch InputInvoiceType(name) {
	case InputInvoiceMessageInputInvoice:
		s.Type = InputInvoiceMessageInputInvoice
		return json.Unmarshal(data, &s.InputInvoiceMessage)
	case InputInvoiceSlugInputInvoice:
		s.Type = InputInvoiceSlugInputInvoice
		return json.Unmarshal(data, &s.InputInvoiceSlug)
	}
	return errors.Errorf("unexpected InputInvoice type %q", name)
}

type InputPaymentCredentialsSaved struct {
	ID          string `json:"id"`
	TmpPassword []byte `json:"tmp_password,omitempty"`
}

func (*InputPaymentCredentialsSaved) TypeName() string { return "inputPaymentCredentialsSaved" }

type InputPaymentCredentialsNew struct {
	Save bool     `json:"save,omitempty"`
	Data DataJSON `json:"data"`
}

func (*InputPaymentCredentialsNew) TypeName() string { return "inputPaymentCredentials" }

type InputPaymentCredentialsApplePay struct {
	PaymentData DataJSON `json:"payment_data"`
}

func (*InputPaymentCredentialsApplePay) TypeName() string { return "inputPaymentCredentialsApplePay" }

type InputPaymentCredentialsGooglePay struct {
	PaymentToken DataJSON `json:"payment_token"`
}

func (*InputPaymentCredentialsGooglePay) TypeName() string {
	return "inputPaymentCredentialsGooglePay"
}

// InputPaymentCredentialsType is oneOf type of InputPaymentCredentials.
type InputPaymentCredentialsType string

const (
	InputPaymentCredentialsSavedInputPaymentCredentials     InputPaymentCredentialsType = "inputPaymentCredentialsSaved"
	InputPaymentCredentialsNewInputPaymentCredentials       InputPaymentCredentialsType = "inputPaymentCredentials"
	InputPaymentCredentialsApplePayInputPaymentCredentials  InputPaymentCredentialsType = "inputPaymentCredentialsApplePay"
	InputPaymentCredentialsGooglePayInputPaymentCredentials InputPaymentCredentialsType = "inputPaymentCredentialsGooglePay"
)

type InputPaymentCredentials struct {
	Type                             InputPaymentCredentialsType
	InputPaymentCredentialsSaved     InputPaymentCredentialsSaved
	InputPaymentCredentialsNew       InputPaymentCredentialsNew
	InputPaymentCredentialsApplePay  InputPaymentCredentialsApplePay
	InputPaymentCredentialsGooglePay InputPaymentCredentialsGooglePay
}

func (s InputPaymentCredentials) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case InputPaymentCredentialsSavedInputPaymentCredentials:
		return Marshal(&s.InputPaymentCredentialsSaved)
	case InputPaymentCredentialsNewInputPaymentCredentials:
		return Marshal(&s.InputPaymentCredentialsNew)
	case InputPaymentCredentialsApplePayInputPaymentCredentials:
		return Marshal(&s.InputPaymentCredentialsApplePay)
	case InputPaymentCredentialsGooglePayInputPaymentCredentials:
		return Marshal(&s.InputPaymentCredentialsGooglePay)
	}
	return nil, errors.Errorf("invalid InputPaymentCredentials type %q", s.Type)
}

func (s *InputPaymentCredentials) UnmarshalJSON(data []byte) error {
	name, err := TypeOf(data)
	if err != nil {
		return err
	}
	s.Type = InputPaymentCredentialsType(name)
	switch s.Type {
	case InputPaymentCredentialsSavedInputPaymentCredentials:
		return json.Unmarshal(data, &s.InputPaymentCredentialsSaved)
	case InputPaymentCredentialsNewInputPaymentCredentials:
		return json.Unmarshal(data, &s.InputPaymentCredentialsNew)
	case InputPaymentCredentialsApplePayInputPaymentCredentials:
		return json.Unmarshal(data, &s.InputPaymentCredentialsApplePay)
	case InputPaymentCredentialsGooglePayInputPaymentCredentials:
		return json.Unmarshal(data, &s.InputPaymentCredentialsGooglePay)
	}
	return errors.Errorf("unexpected InputPaymentCredentials type %q", name)
}
