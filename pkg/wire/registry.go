package wire

func init() {
	register(
		func() Object { return &LabeledPrice{} },
		func() Object { return &Invoice{} },
		func() Object { return &WebDocument{} },
		func() Object { return &InputWebDocument{} },
		func() Object { return &DataJSON{} },
		func() Object { return &PostAddress{} },
		func() Object { return &PaymentRequestedInfo{} },
		func() Object { return &ShippingOption{} },
		func() Object { return &PaymentSavedCredentialsCard{} },
		func() Object { return &InputPeer{} },
		func() Object { return &BankCardOpenURL{} },
		func() Object { return &InputInvoiceMessage{} },
		func() Object { return &InputInvoiceSlug{} },
		func() Object { return &InputPaymentCredentialsSaved{} },
		func() Object { return &InputPaymentCredentialsNew{} },
		func() Object { return &InputPaymentCredentialsApplePay{} },
		func() Object { return &InputPaymentCredentialsGooglePay{} },
		func() Object { return &MessageMediaInvoice{} },
		func() Object { return &BotInlineMessageMediaInvoice{} },
		func() Object { return &InputMediaInvoice{} },
		func() Object { return &InputBotInlineMessageMediaInvoice{} },
		func() Object { return &PaymentsGetPaymentForm{} },
		func() Object { return &PaymentsValidateRequestedInfo{} },
		func() Object { return &PaymentsSendPaymentForm{} },
		func() Object { return &PaymentsGetPaymentReceipt{} },
		func() Object { return &PaymentsGetSavedInfo{} },
		func() Object { return &PaymentsClearSavedInfo{} },
		func() Object { return &PaymentsExportInvoice{} },
		func() Object { return &PaymentsGetBankCardData{} },
		func() Object { return &MessagesSetBotShippingResults{} },
		func() Object { return &MessagesSetBotPrecheckoutResults{} },
		func() Object { return &PaymentsPaymentForm{} },
		func() Object { return &PaymentsValidatedRequestedInfo{} },
		func() Object { return &PaymentsPaymentResult{} },
		func() Object { return &PaymentsPaymentVerificationNeeded{} },
		func() Object { return &PaymentsPaymentReceipt{} },
		func() Object { return &PaymentsSavedInfo{} },
		func() Object { return &PaymentsExportedInvoice{} },
		func() Object { return &PaymentsBankCardData{} },
		func() Object { return &BoolTrue{} },
		func() Object { return &BoolFalse{} },
		func() Object { return &UpdateBotShippingQuery{} },
		func() Object { return &UpdateBotPrecheckoutQuery{} },
		func() Object { return &RPCError{} },
	)
}
