package main

import (
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/arnac-io/chatpay/pkg/oas"
)

type invoiceFile struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Payload        string `yaml:"payload"`
	ProviderToken  string `yaml:"provider_token"`
	ProviderData   string `yaml:"provider_data"`
	StartParameter string `yaml:"start_parameter"`
	Photo          struct {
		URL    string `yaml:"url"`
		Size   int32  `yaml:"size"`
		Width  int32  `yaml:"width"`
		Height int32  `yaml:"height"`
	} `yaml:"photo"`
	Invoice struct {
		Currency string `yaml:"currency"`
		Prices   []struct {
			Label  string `yaml:"label"`
			Amount int64  `yaml:"amount"`
		} `yaml:"prices"`
		MaxTipAmount        int64   `yaml:"max_tip_amount"`
		SuggestedTipAmounts []int64 `yaml:"suggested_tip_amounts"`
		RecurringTermsURL   string  `yaml:"recurring_terms_url"`
		Test                bool    `yaml:"test"`
		NeedName            bool    `yaml:"need_name"`
		NeedPhoneNumber     bool    `yaml:"need_phone_number"`
		NeedEmailAddress    bool    `yaml:"need_email_address"`
		NeedShippingAddress bool    `yaml:"need_shipping_address"`
		PhoneToProvider     bool    `yaml:"send_phone_number_to_provider"`
		EmailToProvider     bool    `yaml:"send_email_address_to_provider"`
		Flexible            bool    `yaml:"flexible"`
	} `yaml:"invoice"`
}

func readInvoiceFile(path string) (oas.InputMessageContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return oas.InputMessageContent{}, errors.Wrap(err, "read invoice file")
	}
	return parseInvoice(data)
}

func parseInvoice(data []byte) (oas.InputMessageContent, error) {
	var f invoiceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return oas.InputMessageContent{}, errors.Wrap(err, "decode invoice file")
	}
	i := f.Invoice
	prices := make([]oas.LabeledPricePart, 0, len(i.Prices))
	for _, p := range i.Prices {
		prices = append(prices, oas.LabeledPricePart{Label: p.Label, Amount: p.Amount})
	}
	return oas.NewInputMessageInvoiceInputMessageContent(oas.InputMessageInvoice{
		Invoice: oas.Invoice{
			Currency:                          i.Currency,
			PriceParts:                        prices,
			MaxTipAmount:                      i.MaxTipAmount,
			SuggestedTipAmounts:               i.SuggestedTipAmounts,
			RecurringPaymentTermsOfServiceURL: i.RecurringTermsURL,
			IsTest:                            i.Test,
			NeedName:                          i.NeedName,
			NeedPhoneNumber:                   i.NeedPhoneNumber,
			NeedEmailAddress:                  i.NeedEmailAddress,
			NeedShippingAddress:               i.NeedShippingAddress,
			SendPhoneNumberToProvider:         i.PhoneToProvider,
			SendEmailAddressToProvider:        i.EmailToProvider,
			IsFlexible:                        i.Flexible,
		},
		Title:          f.Title,
		Description:    f.Description,
		PhotoURL:       f.Photo.URL,
		PhotoSize:      f.Photo.Size,
		PhotoWidth:     f.Photo.Width,
		PhotoHeight:    f.Photo.Height,
		Payload:        []byte(f.Payload),
		ProviderToken:  f.ProviderToken,
		ProviderData:   f.ProviderData,
		StartParameter: f.StartParameter,
	}), nil
}
