package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCountryCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{name: "upper", code: "US", want: "US"},
		{name: "lower", code: "us", want: "US"},
		{name: "mixed", code: "dE", want: "DE"},
		{name: "kosovo", code: "XK", want: "XK"},
		{name: "unknown", code: "XX", wantErr: true},
		{name: "empty", code: "", wantErr: true},
		{name: "too long", code: "USA", wantErr: true},
		{name: "one letter", code: "U", wantErr: true},
		{name: "digits", code: "1A", wantErr: true},
		{name: "non ascii", code: "ÜS", wantErr: true},
		{name: "space", code: "U ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckCountryCode(tt.code)
			if tt.wantErr {
				require.True(t, IsCode(err, CodeInvalidArgument), "got %v", err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCountryCode_AcceptsWholeAllowlist(t *testing.T) {
	for code := range CountryCodes() {
		got, err := CheckCountryCode(code)
		require.Nil(t, err)
		require.Equal(t, code, got)

		got, err = CheckCountryCode(strings.ToLower(code))
		require.Nil(t, err)
		require.Equal(t, code, got)
	}
}

func TestCheckCountryCode_RejectsEverythingElse(t *testing.T) {
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			_, err := CheckCountryCode(code)
			_, known := CountryCodes()[code]
			require.Equal(t, known, err == nil, code)
		}
	}
}

func TestAddressJSON_RoundTrip(t *testing.T) {
	addresses := []Address{
		{CountryCode: "US", State: "CA", City: "San Francisco", StreetLine1: "1 Market St", StreetLine2: "Apt \"5\"", PostalCode: "94105"},
		{CountryCode: "GB"},
		{CountryCode: "RU", City: "Москва", StreetLine1: "Тверская, 1", PostalCode: "125009"},
	}
	for code := range CountryCodes() {
		addresses = append(addresses, Address{CountryCode: code, City: "c", StreetLine1: "s"})
	}
	for _, a := range addresses {
		decoded, err := AddressFromJSON(AddressToJSON(a))
		require.Nil(t, err)
		require.True(t, a.Equal(decoded), "%v != %v", a, decoded)
	}
}

func TestAddressToJSON_AllKeysPresent(t *testing.T) {
	got := string(AddressToJSON(Address{CountryCode: "US"}))
	require.Equal(t, `{"country_code":"US","state":"","city":"","street_line1":"","street_line2":"","post_code":""}`, got)
}

func TestAddressFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Address
		wantCode Code
	}{
		{
			name:  "extra keys are ignored",
			input: `{"country_code":"fr","city":"Paris","extra":{"a":[1,2]},"post_code":"75001"}`,
			want:  Address{CountryCode: "FR", City: "Paris", PostalCode: "75001"},
		},
		{
			name:     "invalid country",
			input:    `{"country_code":"XX"}`,
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "missing country",
			input:    `{"city":"Paris"}`,
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "malformed",
			input:    `{"country_code":"US"`,
			wantCode: CodeParseError,
		},
		{
			name:     "not an object",
			input:    `["US"]`,
			wantCode: CodeParseError,
		},
		{
			name:     "empty",
			input:    ``,
			wantCode: CodeParseError,
		},
		{
			name:     "wrong field type",
			input:    `{"country_code":"US","city":1}`,
			wantCode: CodeParseError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddressFromJSON([]byte(tt.input))
			if tt.wantCode != "" {
				require.Equal(t, tt.wantCode, ErrorCode(err), "got %v", err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAddress_Normalize(t *testing.T) {
	a := Address{CountryCode: "us", City: "Boston"}
	require.Nil(t, a.Normalize())
	require.Equal(t, Address{CountryCode: "US", City: "Boston"}, a)

	decoded, err := AddressFromJSON(AddressToJSON(a))
	require.Nil(t, err)
	require.True(t, a.Equal(decoded), "%v != %v", a, decoded)

	bad := Address{CountryCode: "zz", City: "Nowhere"}
	require.True(t, IsCode(bad.Normalize(), CodeInvalidArgument))
	require.Equal(t, "zz", bad.CountryCode)
}
