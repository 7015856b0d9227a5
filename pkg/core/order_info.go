package core

import (
	"fmt"

	"github.com/arnac-io/chatpay/internal/g"
)

// OrderInfo is what the buyer entered for an invoice. ShippingAddress is present only when
// the invoice asked for it.
type OrderInfo struct {
	Name            string
	PhoneNumber     string
	EmailAddress    string
	ShippingAddress g.Opt[Address]
}

func (o OrderInfo) Equal(other OrderInfo) bool {
	return o.Name == other.Name &&
		o.PhoneNumber == other.PhoneNumber &&
		o.EmailAddress == other.EmailAddress &&
		g.OptEqual(o.ShippingAddress, other.ShippingAddress, Address.Equal)
}

func (o OrderInfo) String() string {
	address := "[no shipping address]"
	if a, ok := o.ShippingAddress.Get(); ok {
		address = a.String()
	}
	return fmt.Sprintf("[OrderInfo %s %s %s %s]", o.Name, o.PhoneNumber, o.EmailAddress, address)
}
