package core

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Address is a postal address. CountryCode is an upper-case ISO 3166-1 alpha-2 code once the
// address went through Normalize; AddressFromJSON always returns normalized addresses.
type Address struct {
	CountryCode string
	State       string
	City        string
	StreetLine1 string
	StreetLine2 string
	PostalCode  string
}

func (a Address) Equal(o Address) bool {
	return a == o
}

func (a Address) String() string {
	return fmt.Sprintf("[Address %s %s %s %s %s %s]", a.CountryCode, a.State, a.City, a.StreetLine1, a.StreetLine2, a.PostalCode)
}

// Normalize checks the country code and stores it upper-cased. a is unchanged on error.
func (a *Address) Normalize() error {
	code, err := CheckCountryCode(a.CountryCode)
	if err != nil {
		return err
	}
	a.CountryCode = code
	return nil
}

// CheckCountryCode normalizes case and checks the code against the allowlist.
func CheckCountryCode(code string) (string, error) {
	const op = "address.check_country_code"
	if len(code) != 2 {
		return "", InvalidArgument(op, "wrong country code specified")
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return "", InvalidArgument(op, "wrong country code specified")
		}
	}
	normalized := strings.ToUpper(code)
	if _, ok := countryCodes[normalized]; !ok {
		return "", InvalidArgument(op, "wrong country code specified")
	}
	return normalized, nil
}

// JSON field names of an address. They are part of the persisted format and must not change.
const (
	addressKeyCountryCode = "country_code"
	addressKeyState       = "state"
	addressKeyCity        = "city"
	addressKeyStreetLine1 = "street_line1"
	addressKeyStreetLine2 = "street_line2"
	addressKeyPostalCode  = "post_code"
)

// AddressToJSON encodes all six fields; empty fields are written as empty strings.
func AddressToJSON(a Address) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart(addressKeyCountryCode)
	e.Str(a.CountryCode)
	e.FieldStart(addressKeyState)
	e.Str(a.State)
	e.FieldStart(addressKeyCity)
	e.Str(a.City)
	e.FieldStart(addressKeyStreetLine1)
	e.Str(a.StreetLine1)
	e.FieldStart(addressKeyStreetLine2)
	e.Str(a.StreetLine2)
	e.FieldStart(addressKeyPostalCode)
	e.Str(a.PostalCode)
	e.ObjEnd()
	return e.Bytes()
}

// AddressFromJSON decodes an address encoded by AddressToJSON.
// Unknown keys are skipped and missing keys stay empty.
func AddressFromJSON(data []byte) (Address, error) {
	const op = "address.from_json"
	var a Address
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return Address{}, ParseError(errors.New("not a JSON object"), op, "can't parse address JSON object")
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var field *string
		switch string(key) {
		case addressKeyCountryCode:
			field = &a.CountryCode
		case addressKeyState:
			field = &a.State
		case addressKeyCity:
			field = &a.City
		case addressKeyStreetLine1:
			field = &a.StreetLine1
		case addressKeyStreetLine2:
			field = &a.StreetLine2
		case addressKeyPostalCode:
			field = &a.PostalCode
		default:
			return d.Skip()
		}
		if d.Next() != jx.String {
			return errors.Errorf("field %q must be of type string", key)
		}
		v, err := d.Str()
		if err != nil {
			return err
		}
		*field = v
		return nil
	})
	if err != nil {
		return Address{}, ParseError(err, op, "can't parse address JSON object")
	}
	if d.Next() != jx.Invalid {
		return Address{}, ParseError(errors.New("trailing data"), op, "can't parse address JSON object")
	}
	if err := a.Normalize(); err != nil {
		return Address{}, WithOp(err, op)
	}
	return a, nil
}
