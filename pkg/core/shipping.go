package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ShippingOption is a delivery choice offered by the backend. ID is opaque.
type ShippingOption struct {
	ID         string
	Title      string
	PriceParts []LabeledPricePart
}

func (s ShippingOption) Equal(o ShippingOption) bool {
	return s.ID == o.ID && s.Title == o.Title && slices.Equal(s.PriceParts, o.PriceParts)
}

func (s ShippingOption) TotalAmount() int64 {
	return sumPriceParts(s.PriceParts)
}

func (s ShippingOption) String() string {
	return fmt.Sprintf("[ShippingOption %s %s with price parts %s]", s.ID, s.Title, pricePartsString(s.PriceParts))
}
