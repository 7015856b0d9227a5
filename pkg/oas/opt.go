package oas

// OptAddress is optional Address.
type OptAddress struct {
	Value Address
	Set   bool
}

func NewOptAddress(v Address) OptAddress {
	return OptAddress{Value: v, Set: true}
}

func (o OptAddress) IsSet() bool { return o.Set }

func (o *OptAddress) SetTo(v Address) {
	o.Set = true
	o.Value = v
}

func (o OptAddress) Get() (v Address, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// OptOrderInfo is optional OrderInfo.
type OptOrderInfo struct {
	Value OrderInfo
	Set   bool
}

func NewOptOrderInfo(v OrderInfo) OptOrderInfo {
	return OptOrderInfo{Value: v, Set: true}
}

func (o OptOrderInfo) IsSet() bool { return o.Set }

func (o *OptOrderInfo) SetTo(v OrderInfo) {
	o.Set = true
	o.Value = v
}

func (o OptOrderInfo) Get() (v OrderInfo, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// OptPhoto is optional Photo.
type OptPhoto struct {
	Value Photo
	Set   bool
}

func NewOptPhoto(v Photo) OptPhoto {
	return OptPhoto{Value: v, Set: true}
}

func (o OptPhoto) IsSet() bool { return o.Set }

func (o *OptPhoto) SetTo(v Photo) {
	o.Set = true
	o.Value = v
}

func (o OptPhoto) Get() (v Photo, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// OptShippingOption is optional ShippingOption.
type OptShippingOption struct {
	Value ShippingOption
	Set   bool
}

func NewOptShippingOption(v ShippingOption) OptShippingOption {
	return OptShippingOption{Value: v, Set: true}
}

func (o OptShippingOption) IsSet() bool { return o.Set }

func (o *OptShippingOption) SetTo(v ShippingOption) {
	o.Set = true
	o.Value = v
}

func (o OptShippingOption) Get() (v ShippingOption, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}
