package oas

// InputMessageContentType is oneOf type of InputMessageContent.
type InputMessageContentType string

const (
	InputMessageInvoiceInputMessageContent InputMessageContentType = "inputMessageInvoice"
	InputMessageTextInputMessageContent    InputMessageContentType = "inputMessageText"
)

// InputMessageContent is the content of a message to be sent.
type InputMessageContent struct {
	Type                InputMessageContentType
	InputMessageInvoice InputMessageInvoice
	InputMessageText    InputMessageText
}

func NewInputMessageInvoiceInputMessageContent(v InputMessageInvoice) InputMessageContent {
	return InputMessageContent{Type: InputMessageInvoiceInputMessageContent, InputMessageInvoice: v}
}

func NewInputMessageTextInputMessageContent(v InputMessageText) InputMessageContent {
	return InputMessageContent{Type: InputMessageTextInputMessageContent, InputMessageText: v}
}

func (s InputMessageContent) GetInputMessageInvoice() (v InputMessageInvoice, ok bool) {
	if s.Type != InputMessageInvoiceInputMessageContent {
		return v, false
	}
	return s.InputMessageInvoice, true
}

// InputInvoiceType is oneOf type of InputInvoice.
type InputInvoiceType string

const (
	InputInvoiceMessageInputInvoice InputInvoiceType = "inputInvoiceMessage"
	InputInvoiceNameInputInvoice    InputInvoiceType = "inputInvoiceName"
)

// InputInvoice references an invoice either by the message it is attached to or by its name.
type InputInvoice struct {
	Type                InputInvoiceType
	InputInvoiceMessage InputInvoiceMessage
	InputInvoiceName    InputInvoiceName
}

func NewInputInvoiceMessageInputInvoice(v InputInvoiceMessage) InputInvoice {
	return InputInvoice{Type: InputInvoiceMessageInputInvoice, InputInvoiceMessage: v}
}

func NewInputInvoiceNameInputInvoice(v InputInvoiceName) InputInvoice {
	return InputInvoice{Type: InputInvoiceNameInputInvoice, InputInvoiceName: v}
}

// PaymentProviderType is oneOf type of PaymentProvider.
type PaymentProviderType string

const (
	PaymentProviderSmartGlocalPaymentProvider PaymentProviderType = "paymentProviderSmartGlocal"
	PaymentProviderStripePaymentProvider      PaymentProviderType = "paymentProviderStripe"
	PaymentProviderOtherPaymentProvider       PaymentProviderType = "paymentProviderOther"
)

type PaymentProvider struct {
	Type                       PaymentProviderType
	PaymentProviderSmartGlocal PaymentProviderSmartGlocal
	PaymentProviderStripe      PaymentProviderStripe
	PaymentProviderOther       PaymentProviderOther
}

func NewPaymentProviderSmartGlocalPaymentProvider(v PaymentProviderSmartGlocal) PaymentProvider {
	return PaymentProvider{Type: PaymentProviderSmartGlocalPaymentProvider, PaymentProviderSmartGlocal: v}
}

func NewPaymentProviderStripePaymentProvider(v PaymentProviderStripe) PaymentProvider {
	return PaymentProvider{Type: PaymentProviderStripePaymentProvider, PaymentProviderStripe: v}
}

func NewPaymentProviderOtherPaymentProvider(v PaymentProviderOther) PaymentProvider {
	return PaymentProvider{Type: PaymentProviderOtherPaymentProvider, PaymentProviderOther: v}
}

// InputCredentialsType is oneOf type of InputCredentials.
type InputCredentialsType string

const (
	InputCredentialsSavedInputCredentials     InputCredentialsType = "inputCredentialsSaved"
	InputCredentialsNewInputCredentials       InputCredentialsType = "inputCredentialsNew"
	InputCredentialsApplePayInputCredentials  InputCredentialsType = "inputCredentialsApplePay"
	InputCredentialsGooglePayInputCredentials InputCredentialsType = "inputCredentialsGooglePay"
)

// InputCredentials are opaque payment credentials forwarded to the backend unchanged.
type InputCredentials struct {
	Type                      InputCredentialsType
	InputCredentialsSaved     InputCredentialsSaved
	InputCredentialsNew       InputCredentialsNew
	InputCredentialsApplePay  InputCredentialsApplePay
	InputCredentialsGooglePay InputCredentialsGooglePay
}

func NewInputCredentialsSavedInputCredentials(v InputCredentialsSaved) InputCredentials {
	return InputCredentials{Type: InputCredentialsSavedInputCredentials, InputCredentialsSaved: v}
}

func NewInputCredentialsNewInputCredentials(v InputCredentialsNew) InputCredentials {
	return InputCredentials{Type: InputCredentialsNewInputCredentials, InputCredentialsNew: v}
}

func NewInputCredentialsApplePayInputCredentials(v InputCredentialsApplePay) InputCredentials {
	return InputCredentials{Type: InputCredentialsApplePayInputCredentials, InputCredentialsApplePay: v}
}

func NewInputCredentialsGooglePayInputCredentials(v InputCredentialsGooglePay) InputCredentials {
	return InputCredentials{Type: InputCredentialsGooglePayInputCredentials, InputCredentialsGooglePay: v}
}
