package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/arnac-io/chatpay/internal/g"
)

// Invoice describes what is being paid for and what has to be collected from the buyer.
// PriceParts keeps display order.
type Invoice struct {
	Currency                   string
	PriceParts                 []LabeledPricePart
	MaxTipAmount               int64
	SuggestedTipAmounts        []int64
	RecurringPaymentTermsURL   string
	IsTest                     bool
	NeedName                   bool
	NeedPhoneNumber            bool
	NeedEmailAddress           bool
	NeedShippingAddress        bool
	SendPhoneNumberToProvider  bool
	SendEmailAddressToProvider bool
	IsFlexible                 bool
}

func (i Invoice) TotalAmount() int64 {
	return sumPriceParts(i.PriceParts)
}

func (i Invoice) Equal(o Invoice) bool {
	return i.Currency == o.Currency &&
		slices.Equal(i.PriceParts, o.PriceParts) &&
		i.MaxTipAmount == o.MaxTipAmount &&
		slices.Equal(i.SuggestedTipAmounts, o.SuggestedTipAmounts) &&
		i.RecurringPaymentTermsURL == o.RecurringPaymentTermsURL &&
		i.IsTest == o.IsTest &&
		i.NeedName == o.NeedName &&
		i.NeedPhoneNumber == o.NeedPhoneNumber &&
		i.NeedEmailAddress == o.NeedEmailAddress &&
		i.NeedShippingAddress == o.NeedShippingAddress &&
		i.SendPhoneNumberToProvider == o.SendPhoneNumberToProvider &&
		i.SendEmailAddressToProvider == o.SendEmailAddressToProvider &&
		i.IsFlexible == o.IsFlexible
}

func (i Invoice) String() string {
	var b strings.Builder
	b.WriteString("[")
	if i.IsTest {
		b.WriteString("Test")
	}
	b.WriteString("Invoice")
	flags := []struct {
		set  bool
		name string
	}{
		{i.NeedName, "NeedName"},
		{i.NeedPhoneNumber, "NeedPhoneNumber"},
		{i.NeedEmailAddress, "NeedEmailAddress"},
		{i.NeedShippingAddress, "NeedShippingAddress"},
		{i.SendPhoneNumberToProvider, "SendPhoneNumberToProvider"},
		{i.SendEmailAddressToProvider, "SendEmailAddressToProvider"},
		{i.IsFlexible, "Flexible"},
	}
	for _, f := range flags {
		if f.set {
			b.WriteString(", ")
			b.WriteString(f.name)
		}
	}
	fmt.Fprintf(&b, " in %s with price parts %s", i.Currency, pricePartsString(i.PriceParts))
	fmt.Fprintf(&b, " totalling %s", FormatAmount(i.TotalAmount(), i.Currency))
	fmt.Fprintf(&b, " and suggested tip amounts %v up to %d", i.SuggestedTipAmounts, i.MaxTipAmount)
	if i.RecurringPaymentTermsURL != "" {
		fmt.Fprintf(&b, " and recurring payment terms at %s", i.RecurringPaymentTermsURL)
	}
	b.WriteString("]")
	return b.String()
}

type MessageID int64

// InputInvoice is an invoice together with its presentation and the opaque data the bot
// attached to it. Payload and ProviderData are passed through byte-for-byte.
type InputInvoice struct {
	Title            string
	Description      string
	Photo            g.Opt[Photo]
	StartParameter   string
	Invoice          Invoice
	Payload          []byte
	ProviderToken    string
	ProviderData     string
	TotalAmount      int64
	ReceiptMessageID g.Opt[MessageID]
}

func (i InputInvoice) Equal(o InputInvoice) bool {
	return i.Title == o.Title &&
		i.Description == o.Description &&
		g.OptEqual(i.Photo, o.Photo, Photo.Equal) &&
		i.StartParameter == o.StartParameter &&
		i.Invoice.Equal(o.Invoice) &&
		slices.Equal(i.Payload, o.Payload) &&
		i.ProviderToken == o.ProviderToken &&
		i.ProviderData == o.ProviderData &&
		i.TotalAmount == o.TotalAmount &&
		i.ReceiptMessageID == o.ReceiptMessageID
}

// String leaves out the payload and provider fields.
func (i InputInvoice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%q %q", i.Title, i.Description)
	if photo, ok := i.Photo.Get(); ok {
		fmt.Fprintf(&b, " %v", photo)
	}
	if i.StartParameter != "" {
		fmt.Fprintf(&b, " start parameter %q", i.StartParameter)
	}
	fmt.Fprintf(&b, " %v total %s", i.Invoice, FormatAmount(i.TotalAmount, i.Invoice.Currency))
	if id, ok := i.ReceiptMessageID.Get(); ok {
		fmt.Fprintf(&b, " receipt in message %d", id)
	}
	b.WriteString("]")
	return b.String()
}

// FileIDs returns every file id reachable from the invoice photo; empty without a photo.
func (i InputInvoice) FileIDs() []FileID {
	photo, ok := i.Photo.Get()
	if !ok {
		return []FileID{}
	}
	return photo.FileIDs()
}
