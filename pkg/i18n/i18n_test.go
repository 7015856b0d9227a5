package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		c    C
		want string
	}{
		{name: "en", lang: "en", c: C{MessageID: TotalLabel}, want: "Total"},
		{name: "ru", lang: "ru", c: C{MessageID: TotalLabel}, want: "Итого"},
		{name: "fallback to en", lang: "de", c: C{MessageID: TotalLabel}, want: "Total"},
		{
			name: "template",
			lang: "en",
			c:    C{MessageID: ShippingUnavailable, TemplateData: Template{"Country": "AQ"}},
			want: "Sorry, we don't ship to AQ",
		},
		{name: "unknown id", lang: "en", c: C{MessageID: "Unknown"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, T(tt.lang, tt.c))
		})
	}
}
