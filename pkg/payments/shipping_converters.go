package payments

import (
	"unicode/utf8"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

func shippingOptionToRemote(s core.ShippingOption) wire.ShippingOption {
	return wire.ShippingOption{
		ID:     s.ID,
		Title:  s.Title,
		Prices: pricePartsToRemote(s.PriceParts),
	}
}

func shippingOptionFromRemote(s wire.ShippingOption) core.ShippingOption {
	return core.ShippingOption{
		ID:         s.ID,
		Title:      s.Title,
		PriceParts: pricePartsFromRemote(s.Prices),
	}
}

func convertShippingOption(s core.ShippingOption) oas.ShippingOption {
	return oas.ShippingOption{
		ID:         s.ID,
		Title:      s.Title,
		PriceParts: convertPriceParts(s.PriceParts),
	}
}

func convertShippingOptions(options []core.ShippingOption) []oas.ShippingOption {
	res := make([]oas.ShippingOption, 0, len(options))
	for _, o := range options {
		res = append(res, convertShippingOption(o))
	}
	return res
}

func shippingOptionFromClient(op string, s oas.ShippingOption) (core.ShippingOption, error) {
	if !utf8.ValidString(s.ID) || !utf8.ValidString(s.Title) {
		return core.ShippingOption{}, core.InvalidArgument(op, "shipping option must be encoded in UTF-8")
	}
	if s.ID == "" {
		return core.ShippingOption{}, core.InvalidArgument(op, "shipping option identifier must be non-empty")
	}
	if s.Title == "" {
		return core.ShippingOption{}, core.InvalidArgument(op, "shipping option title must be non-empty")
	}
	parts, err := pricePartsFromClient(op, s.PriceParts)
	if err != nil {
		return core.ShippingOption{}, err
	}
	return core.ShippingOption{ID: s.ID, Title: s.Title, PriceParts: parts}, nil
}

func shippingOptionsFromClient(op string, options []oas.ShippingOption) ([]core.ShippingOption, error) {
	return g.MapErr(options, func(o oas.ShippingOption) (core.ShippingOption, error) {
		return shippingOptionFromClient(op, o)
	})
}
