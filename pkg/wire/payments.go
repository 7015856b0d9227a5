package wire

type PaymentsGetPaymentForm struct {
	Invoice     InputInvoice `json:"invoice"`
	ThemeParams *DataJSON    `json:"theme_params,omitempty"`
}

func (*PaymentsGetPaymentForm) TypeName() string { return "payments.getPaymentForm" }
func (*PaymentsGetPaymentForm) isRequest()       {}

type PaymentsValidateRequestedInfo struct {
	Save    bool                 `json:"save,omitempty"`
	Invoice InputInvoice         `json:"invoice"`
	Info    PaymentRequestedInfo `json:"info"`
}

func (*PaymentsValidateRequestedInfo) TypeName() string { return "payments.validateRequestedInfo" }
func (*PaymentsValidateRequestedInfo) isRequest()       {}

type PaymentsSendPaymentForm struct {
	FormID           int64                   `json:"form_id"`
	Invoice          InputInvoice            `json:"invoice"`
	RequestedInfoID  string                  `json:"requested_info_id,omitempty"`
	ShippingOptionID string                  `json:"shipping_option_id,omitempty"`
	Credentials      InputPaymentCredentials `json:"credentials"`
	TipAmount        int64                   `json:"tip_amount,omitempty"`
}

func (*PaymentsSendPaymentForm) TypeName() string { return "payments.sendPaymentForm" }
func (*PaymentsSendPaymentForm) isRequest()       {}

type PaymentsGetPaymentReceipt struct {
	Peer  InputPeer `json:"peer"`
	MsgID int64     `json:"msg_id"`
}

func (*PaymentsGetPaymentReceipt) TypeName() string { return "payments.getPaymentReceipt" }
func (*PaymentsGetPaymentReceipt) isRequest()       {}

type PaymentsGetSavedInfo struct{}

func (*PaymentsGetSavedInfo) TypeName() string { return "payments.getSavedInfo" }
func (*PaymentsGetSavedInfo) isRequest()       {}

type PaymentsClearSavedInfo struct {
	Credentials bool `json:"credentials,omitempty"`
	Info        bool `json:"info,omitempty"`
}

func (*PaymentsClearSavedInfo) TypeName() string { return "payments.clearSavedInfo" }
func (*PaymentsClearSavedInfo) isRequest()       {}

type PaymentsExportInvoice struct {
	InvoiceMedia InputMediaInvoice `json:"invoice_media"`
}

func (*PaymentsExportInvoice) TypeName() string { return "payments.exportInvoice" }
func (*PaymentsExportInvoice) isRequest()       {}

type PaymentsGetBankCardData struct {
	Number string `json:"number"`
}

func (*PaymentsGetBankCardData) TypeName() string { return "payments.getBankCardData" }
func (*PaymentsGetBankCardData) isRequest()       {}

// MessagesSetBotShippingResults answers a shipping query. An empty Error means acceptance.
type MessagesSetBotShippingResults struct {
	QueryID         int64            `json:"query_id"`
	Error           string           `json:"error,omitempty"`
	ShippingOptions []ShippingOption `json:"shipping_options,omitempty"`
}

func (*MessagesSetBotShippingResults) TypeName() string { return "messages.setBotShippingResults" }
func (*MessagesSetBotShippingResults) isRequest()       {}

type MessagesSetBotPrecheckoutResults struct {
	Success bool   `json:"success,omitempty"`
	QueryID int64  `json:"query_id"`
	Error   string `json:"error,omitempty"`
}

func (*MessagesSetBotPrecheckoutResults) TypeName() string {
	return "messages.setBotPrecheckoutResults"
}
func (*MessagesSetBotPrecheckoutResults) isRequest() {}

// PaymentsPaymentForm is the reply to payments.getPaymentForm. NativeProvider and NativeParams
// are set when the client can collect card data itself; URL is the provider page otherwise.
type PaymentsPaymentForm struct {
	CanSaveCredentials bool                          `json:"can_save_credentials,omitempty"`
	PasswordMissing    bool                          `json:"password_missing,omitempty"`
	FormID             int64                         `json:"form_id"`
	BotID              int64                         `json:"bot_id"`
	Title              string                        `json:"title"`
	Description        string                        `json:"description"`
	Photo              *WebDocument                  `json:"photo,omitempty"`
	Invoice            Invoice                       `json:"invoice"`
	ProviderID         int64                         `json:"provider_id"`
	URL                string                        `json:"url"`
	NativeProvider     string                        `json:"native_provider,omitempty"`
	NativeParams       *DataJSON                     `json:"native_params,omitempty"`
	SavedInfo          *PaymentRequestedInfo         `json:"saved_info,omitempty"`
	SavedCredentials   []PaymentSavedCredentialsCard `json:"saved_credentials,omitempty"`
}

func (*PaymentsPaymentForm) TypeName() string { return "payments.paymentForm" }

type PaymentsValidatedRequestedInfo struct {
	ID              string           `json:"id,omitempty"`
	ShippingOptions []ShippingOption `json:"shipping_options,omitempty"`
}

func (*PaymentsValidatedRequestedInfo) TypeName() string { return "payments.validatedRequestedInfo" }

type PaymentsPaymentResult struct{}

func (*PaymentsPaymentResult) TypeName() string { return "payments.paymentResult" }

type PaymentsPaymentVerificationNeeded struct {
	URL string `json:"url"`
}

func (*PaymentsPaymentVerificationNeeded) TypeName() string {
	return "payments.paymentVerificationNeeded"
}

type PaymentsPaymentReceipt struct {
	Date             int32                 `json:"date"`
	BotID            int64                 `json:"bot_id"`
	ProviderID       int64                 `json:"provider_id"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Photo            *WebDocument          `json:"photo,omitempty"`
	Invoice          Invoice               `json:"invoice"`
	Info             *PaymentRequestedInfo `json:"info,omitempty"`
	Shipping         *ShippingOption       `json:"shipping,omitempty"`
	TipAmount        int64                 `json:"tip_amount,omitempty"`
	Currency         string                `json:"currency"`
	TotalAmount      int64                 `json:"total_amount"`
	CredentialsTitle string                `json:"credentials_title"`
}

func (*PaymentsPaymentReceipt) TypeName() string { return "payments.paymentReceipt" }

type PaymentsSavedInfo struct {
	HasSavedCredentials bool                  `json:"has_saved_credentials,omitempty"`
	SavedInfo           *PaymentRequestedInfo `json:"saved_info,omitempty"`
}

func (*PaymentsSavedInfo) TypeName() string { return "payments.savedInfo" }

type PaymentsExportedInvoice struct {
	URL string `json:"url"`
}

func (*PaymentsExportedInvoice) TypeName() string { return "payments.exportedInvoice" }

type PaymentsBankCardData struct {
	Title    string            `json:"title"`
	OpenURLs []BankCardOpenURL `json:"open_urls"`
}

func (*PaymentsBankCardData) TypeName() string { return "payments.bankCardData" }

type BoolTrue struct{}

func (*BoolTrue) TypeName() string { return "boolTrue" }

type BoolFalse struct{}

func (*BoolFalse) TypeName() string { return "boolFalse" }
