package payments

import (
	"net/url"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

const maxSuggestedTipAmounts = 4

func invoiceToRemote(i core.Invoice) wire.Invoice {
	return wire.Invoice{
		Test:                     i.IsTest,
		NameRequested:            i.NeedName,
		PhoneRequested:           i.NeedPhoneNumber,
		EmailRequested:           i.NeedEmailAddress,
		ShippingAddressRequested: i.NeedShippingAddress,
		Flexible:                 i.IsFlexible,
		PhoneToProvider:          i.SendPhoneNumberToProvider,
		EmailToProvider:          i.SendEmailAddressToProvider,
		Recurring:                i.RecurringPaymentTermsURL != "",
		Currency:                 i.Currency,
		Prices:                   pricePartsToRemote(i.PriceParts),
		MaxTipAmount:             i.MaxTipAmount,
		SuggestedTipAmounts:      i.SuggestedTipAmounts,
		RecurringTermsURL:        i.RecurringPaymentTermsURL,
	}
}

func invoiceFromRemote(i wire.Invoice) core.Invoice {
	invoice := core.Invoice{
		Currency:                   i.Currency,
		PriceParts:                 pricePartsFromRemote(i.Prices),
		MaxTipAmount:               i.MaxTipAmount,
		SuggestedTipAmounts:        i.SuggestedTipAmounts,
		IsTest:                     i.Test,
		NeedName:                   i.NameRequested,
		NeedPhoneNumber:            i.PhoneRequested,
		NeedEmailAddress:           i.EmailRequested,
		NeedShippingAddress:        i.ShippingAddressRequested,
		SendPhoneNumberToProvider:  i.PhoneToProvider,
		SendEmailAddressToProvider: i.EmailToProvider,
		IsFlexible:                 i.Flexible,
	}
	if i.Recurring {
		invoice.RecurringPaymentTermsURL = i.RecurringTermsURL
	}
	return invoice
}

func convertInvoice(i core.Invoice) oas.Invoice {
	return oas.Invoice{
		Currency:                          i.Currency,
		PriceParts:                        convertPriceParts(i.PriceParts),
		MaxTipAmount:                      i.MaxTipAmount,
		SuggestedTipAmounts:               append([]int64{}, i.SuggestedTipAmounts...),
		RecurringPaymentTermsOfServiceURL: i.RecurringPaymentTermsURL,
		IsTest:                            i.IsTest,
		NeedName:                          i.NeedName,
		NeedPhoneNumber:                   i.NeedPhoneNumber,
		NeedEmailAddress:                  i.NeedEmailAddress,
		NeedShippingAddress:               i.NeedShippingAddress,
		SendPhoneNumberToProvider:         i.SendPhoneNumberToProvider,
		SendEmailAddressToProvider:        i.SendEmailAddressToProvider,
		IsFlexible:                        i.IsFlexible,
	}
}

func invoiceFromClient(op string, i oas.Invoice) (core.Invoice, error) {
	if _, err := core.ParseCurrency(i.Currency); err != nil {
		return core.Invoice{}, core.InvalidArgument(op, "invalid currency specified")
	}
	parts, err := pricePartsFromClient(op, i.PriceParts)
	if err != nil {
		return core.Invoice{}, err
	}
	invoice := core.Invoice{
		Currency:                   i.Currency,
		PriceParts:                 parts,
		MaxTipAmount:               i.MaxTipAmount,
		SuggestedTipAmounts:        i.SuggestedTipAmounts,
		RecurringPaymentTermsURL:   i.RecurringPaymentTermsOfServiceURL,
		IsTest:                     i.IsTest,
		NeedName:                   i.NeedName,
		NeedPhoneNumber:            i.NeedPhoneNumber,
		NeedEmailAddress:           i.NeedEmailAddress,
		NeedShippingAddress:        i.NeedShippingAddress,
		SendPhoneNumberToProvider:  i.SendPhoneNumberToProvider,
		SendEmailAddressToProvider: i.SendEmailAddressToProvider,
		IsFlexible:                 i.IsFlexible,
	}
	if total := invoice.TotalAmount(); total <= 0 || total > core.MaxAmount {
		return core.Invoice{}, core.InvalidArgument(op, "invoice total amount must be positive and not too big")
	}
	if invoice.MaxTipAmount < 0 || invoice.MaxTipAmount > core.MaxAmount {
		return core.Invoice{}, core.InvalidArgument(op, "invalid max_tip_amount of the currency specified")
	}
	if len(invoice.SuggestedTipAmounts) > maxSuggestedTipAmounts {
		return core.Invoice{}, core.InvalidArgument(op, "there can be at most %d suggested tip amounts", maxSuggestedTipAmounts)
	}
	var previous int64
	for _, tip := range invoice.SuggestedTipAmounts {
		if tip <= 0 {
			return core.Invoice{}, core.InvalidArgument(op, "suggested tip amounts must be positive")
		}
		if tip > invoice.MaxTipAmount {
			return core.Invoice{}, core.InvalidArgument(op, "suggested tip amounts can't be bigger than max_tip_amount")
		}
		if tip <= previous {
			return core.Invoice{}, core.InvalidArgument(op, "suggested tip amounts must be sorted strictly increasingly")
		}
		previous = tip
	}
	if invoice.RecurringPaymentTermsURL != "" && !isWebURL(invoice.RecurringPaymentTermsURL) {
		return core.Invoice{}, core.InvalidArgument(op, "invalid recurring payment terms of service URL specified")
	}
	switch {
	case invoice.IsFlexible && !invoice.NeedShippingAddress:
		return core.Invoice{}, core.InvalidArgument(op, "flexible invoice must request shipping address")
	case invoice.SendPhoneNumberToProvider && !invoice.NeedPhoneNumber:
		return core.Invoice{}, core.InvalidArgument(op, "phone number can't be sent to the provider without requesting it")
	case invoice.SendEmailAddressToProvider && !invoice.NeedEmailAddress:
		return core.Invoice{}, core.InvalidArgument(op, "email address can't be sent to the provider without requesting it")
	}
	return invoice, nil
}

func isWebURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
