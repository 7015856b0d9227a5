package payments

import (
	"unicode/utf8"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

type clientOrderInfo struct {
	Name         string `validate:"max=128"`
	PhoneNumber  string `validate:"max=64"`
	EmailAddress string `validate:"omitempty,email,max=128"`
}

func orderInfoToRemote(o core.OrderInfo) wire.PaymentRequestedInfo {
	return wire.PaymentRequestedInfo{
		Name:            o.Name,
		Phone:           o.PhoneNumber,
		Email:           o.EmailAddress,
		ShippingAddress: g.NilToNil(addressToRemote, o.ShippingAddress.Pointer()),
	}
}

func orderInfoFromRemote(info *wire.PaymentRequestedInfo) g.Opt[core.OrderInfo] {
	return g.OptFromPointer(g.NilToNil(requestedInfoToOrderInfo, info))
}

func requestedInfoToOrderInfo(info wire.PaymentRequestedInfo) core.OrderInfo {
	return core.OrderInfo{
		Name:            info.Name,
		PhoneNumber:     info.Phone,
		EmailAddress:    info.Email,
		ShippingAddress: g.OptFromPointer(g.NilToNil(addressFromRemote, info.ShippingAddress)),
	}
}

func convertOrderInfo(o core.OrderInfo) oas.OrderInfo {
	res := oas.OrderInfo{
		Name:         o.Name,
		PhoneNumber:  o.PhoneNumber,
		EmailAddress: o.EmailAddress,
	}
	if a, ok := o.ShippingAddress.Get(); ok {
		res.ShippingAddress.SetTo(convertAddress(a))
	}
	return res
}

func convertOptOrderInfo(o g.Opt[core.OrderInfo]) oas.OptOrderInfo {
	var res oas.OptOrderInfo
	if info, ok := o.Get(); ok {
		res.SetTo(convertOrderInfo(info))
	}
	return res
}

// orderInfoFromClient validates buyer input. A nil order info is an empty one.
func orderInfoFromClient(op string, o *oas.OrderInfo) (core.OrderInfo, error) {
	if o == nil {
		return core.OrderInfo{}, nil
	}
	for _, s := range []string{o.Name, o.PhoneNumber, o.EmailAddress} {
		if !utf8.ValidString(s) {
			return core.OrderInfo{}, core.InvalidArgument(op, "order info must be encoded in UTF-8")
		}
	}
	if err := validate.Struct(clientOrderInfo{
		Name:         o.Name,
		PhoneNumber:  o.PhoneNumber,
		EmailAddress: o.EmailAddress,
	}); err != nil {
		return core.OrderInfo{}, validationError(op, "order info", err)
	}
	res := core.OrderInfo{
		Name:         o.Name,
		PhoneNumber:  o.PhoneNumber,
		EmailAddress: o.EmailAddress,
	}
	if a, ok := o.ShippingAddress.Get(); ok {
		address, err := addressFromClient(op, a)
		if err != nil {
			return core.OrderInfo{}, err
		}
		res.ShippingAddress = g.NewOpt(address)
	}
	return res, nil
}
