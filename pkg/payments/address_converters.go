package payments

import (
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

var validate = validator.New()

type clientAddress struct {
	CountryCode string `validate:"len=2"`
	State       string `validate:"max=64"`
	City        string `validate:"required,max=64"`
	StreetLine1 string `validate:"required,max=128"`
	StreetLine2 string `validate:"max=128"`
	PostalCode  string `validate:"max=64"`
}

func addressToRemote(a core.Address) wire.PostAddress {
	return wire.PostAddress{
		StreetLine1: a.StreetLine1,
		StreetLine2: a.StreetLine2,
		City:        a.City,
		State:       a.State,
		CountryISO2: a.CountryCode,
		PostCode:    a.PostalCode,
	}
}

// addressFromRemote trusts the backend and does not validate.
func addressFromRemote(a wire.PostAddress) core.Address {
	return core.Address{
		CountryCode: a.CountryISO2,
		State:       a.State,
		City:        a.City,
		StreetLine1: a.StreetLine1,
		StreetLine2: a.StreetLine2,
		PostalCode:  a.PostCode,
	}
}

func convertAddress(a core.Address) oas.Address {
	return oas.Address{
		CountryCode: a.CountryCode,
		State:       a.State,
		City:        a.City,
		StreetLine1: a.StreetLine1,
		StreetLine2: a.StreetLine2,
		PostalCode:  a.PostalCode,
	}
}

func addressFromClient(op string, a oas.Address) (core.Address, error) {
	for _, s := range []string{a.CountryCode, a.State, a.City, a.StreetLine1, a.StreetLine2, a.PostalCode} {
		if !utf8.ValidString(s) {
			return core.Address{}, core.InvalidArgument(op, "address must be encoded in UTF-8")
		}
	}
	if err := validate.Struct(clientAddress(a)); err != nil {
		return core.Address{}, validationError(op, "address", err)
	}
	res := core.Address{
		CountryCode: a.CountryCode,
		State:       a.State,
		City:        a.City,
		StreetLine1: a.StreetLine1,
		StreetLine2: a.StreetLine2,
		PostalCode:  a.PostalCode,
	}
	if err := res.Normalize(); err != nil {
		return core.Address{}, core.WithOp(err, op)
	}
	return res, nil
}

// validationError turns the first failed validator rule into an InvalidArgument error.
func validationError(op, what string, err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return core.InvalidArgument(op, "invalid %s", what)
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return core.InvalidArgument(op, "%s %s must be non-empty", what, fe.Field())
	case "max":
		return core.InvalidArgument(op, "%s %s is too long", what, fe.Field())
	case "email":
		return core.InvalidArgument(op, "%s %s is not a valid email address", what, fe.Field())
	}
	return core.InvalidArgument(op, "invalid %s %s", what, fe.Field())
}
