package payments

import (
	"unicode/utf8"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

func pricePartsToRemote(parts []core.LabeledPricePart) []wire.LabeledPrice {
	return g.Map(parts, func(p core.LabeledPricePart) wire.LabeledPrice {
		return wire.LabeledPrice{Label: p.Label, Amount: p.Amount}
	})
}

func pricePartsFromRemote(prices []wire.LabeledPrice) []core.LabeledPricePart {
	return g.Map(prices, func(p wire.LabeledPrice) core.LabeledPricePart {
		return core.LabeledPricePart{Label: p.Label, Amount: p.Amount}
	})
}

func convertPriceParts(parts []core.LabeledPricePart) []oas.LabeledPricePart {
	res := make([]oas.LabeledPricePart, 0, len(parts))
	for _, p := range parts {
		res = append(res, oas.LabeledPricePart{Label: p.Label, Amount: p.Amount})
	}
	return res
}

// pricePartsFromClient checks every part on its own; the total is checked by the caller.
func pricePartsFromClient(op string, parts []oas.LabeledPricePart) ([]core.LabeledPricePart, error) {
	if len(parts) == 0 {
		return nil, core.InvalidArgument(op, "price parts must be non-empty")
	}
	return g.MapErr(parts, func(p oas.LabeledPricePart) (core.LabeledPricePart, error) {
		if !utf8.ValidString(p.Label) {
			return core.LabeledPricePart{}, core.InvalidArgument(op, "price label must be encoded in UTF-8")
		}
		if p.Label == "" {
			return core.LabeledPricePart{}, core.InvalidArgument(op, "price label must be non-empty")
		}
		if p.Amount < -core.MaxAmount || p.Amount > core.MaxAmount {
			return core.LabeledPricePart{}, core.InvalidArgument(op, "too big amount of the currency specified")
		}
		return core.LabeledPricePart{Label: p.Label, Amount: p.Amount}, nil
	})
}
