package config

import (
	"log"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-faster/errors"

	"github.com/arnac-io/chatpay/pkg/core"
)

type Config struct {
	App struct {
		LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
		MetricsPort int    `env:"METRICS_PORT" envDefault:"9010"`
		Language    string `env:"LANGUAGE" envDefault:"en"`
		SentryDSN   string `env:"SENTRY_DSN"`
	}
	Backend struct {
		URL           string        `env:"BACKEND_URL"`
		UpdatesURL    string        `env:"BACKEND_UPDATES_URL"`
		Token         string        `env:"BACKEND_TOKEN"`
		Timeout       time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
		RetryAttempts uint          `env:"BACKEND_RETRY_ATTEMPTS" envDefault:"3"`
		RateLimit     uint64        `env:"BACKEND_RATE_LIMIT" envDefault:"30"`
	}
	Payments struct {
		FilesCacheSize        int                 `env:"FILES_CACHE_SIZE" envDefault:"4096"`
		PaymentFormsCacheSize int                 `env:"PAYMENT_FORMS_CACHE_SIZE" envDefault:"256"`
		PaymentFormTTL        time.Duration       `env:"PAYMENT_FORM_TTL" envDefault:"1h"`
		ShippingCountries     countriesList       `env:"SHIPPING_COUNTRIES"`
		ShippingOptions       shippingOptionsList `env:"SHIPPING_OPTIONS"`
	}
}

type countriesList []string

// ShippingOption is one delivery method offered by the responder. Amount is in minor units.
type ShippingOption struct {
	ID     string
	Title  string
	Amount int64
}

type shippingOptionsList []ShippingOption

// Contains reports whether an upper-case country code is in the list.
func (c countriesList) Contains(code string) bool {
	for _, country := range c {
		if country == code {
			return true
		}
	}
	return false
}

func parseCountries(v string) (interface{}, error) {
	var countries countriesList
	for _, s := range strings.Split(v, ",") {
		code, err := core.CheckCountryCode(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(err, "shipping country %q", s)
		}
		countries = append(countries, code)
	}
	return countries, nil
}

// parseShippingOptions reads a comma separated list of id:title:amount triples.
func parseShippingOptions(v string) (interface{}, error) {
	var options shippingOptionsList
	for _, s := range strings.Split(v, ",") {
		parts := strings.Split(strings.TrimSpace(s), ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, errors.Errorf("shipping option %q must be id:title:amount", s)
		}
		amount, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || amount < 0 || amount > core.MaxAmount {
			return nil, errors.Errorf("shipping option %q has invalid amount", s)
		}
		options = append(options, ShippingOption{ID: parts[0], Title: parts[1], Amount: amount})
	}
	return options, nil
}

func parse() (Config, error) {
	var c Config
	err := env.ParseWithFuncs(&c, map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(countriesList{}):       parseCountries,
		reflect.TypeOf(shippingOptionsList{}): parseShippingOptions,
	})
	return c, err
}

func Load() Config {
	c, err := parse()
	if err != nil {
		log.Panicf("[‼️  Config parsing failed] %+v\n", err)
	}
	return c
}
