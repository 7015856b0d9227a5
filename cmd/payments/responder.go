package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/internal/config"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/i18n"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
)

type answerer interface {
	AnswerShippingQuery(ctx context.Context, queryID int64, options []oas.ShippingOption, errorMessage string, p *promise.Promise[promise.Unit])
	AnswerPreCheckoutQuery(ctx context.Context, queryID int64, errorMessage string, p *promise.Promise[promise.Unit])
}

type countries interface {
	Contains(code string) bool
}

// responder answers payment queries on behalf of the bot: it ships to the configured countries
// with the configured options and accepts every well-formed order.
type responder struct {
	ctx       context.Context
	logger    *zap.Logger
	answerer  answerer
	lang      string
	countries countries
	options   []config.ShippingOption
}

func (r *responder) OnNewShippingQuery(q oas.UpdateNewShippingQuery) {
	p := r.logResult("shipping", q.ID)
	country := q.ShippingAddress.CountryCode
	if len(r.options) == 0 || !r.countries.Contains(country) {
		message := i18n.T(r.lang, i18n.C{
			MessageID:    i18n.ShippingUnavailable,
			TemplateData: i18n.Template{"Country": country},
		})
		r.answerer.AnswerShippingQuery(r.ctx, q.ID, nil, message, p)
		return
	}
	options := make([]oas.ShippingOption, 0, len(r.options))
	for _, o := range r.options {
		options = append(options, oas.ShippingOption{
			ID:         o.ID,
			Title:      o.Title,
			PriceParts: []oas.LabeledPricePart{{Label: o.Title, Amount: o.Amount}},
		})
	}
	r.answerer.AnswerShippingQuery(r.ctx, q.ID, options, "", p)
}

func (r *responder) OnNewPreCheckoutQuery(q oas.UpdateNewPreCheckoutQuery) {
	p := r.logResult("pre-checkout", q.ID)
	message := ""
	if _, err := core.ParseCurrency(q.Currency); err != nil || q.TotalAmount <= 0 {
		message = i18n.T(r.lang, i18n.C{MessageID: i18n.CheckoutRejected})
	}
	r.answerer.AnswerPreCheckoutQuery(r.ctx, q.ID, message, p)
}

func (r *responder) logResult(kind string, queryID int64) *promise.Promise[promise.Unit] {
	return promise.New(func(_ promise.Unit, err error) {
		if err != nil {
			r.logger.Error("failed to answer query", zap.String("kind", kind), zap.Int64("query_id", queryID), zap.Error(err))
			return
		}
		r.logger.Info("query answered", zap.String("kind", kind), zap.Int64("query_id", queryID))
	})
}
