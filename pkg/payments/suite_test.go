package payments

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/actor"
	"github.com/arnac-io/chatpay/pkg/files"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

type mockDispatcher struct {
	OnSend func(request wire.Request) (wire.Object, error)

	mu       sync.Mutex
	requests []wire.Request
}

func (m *mockDispatcher) Send(ctx context.Context, request wire.Request, cb func(wire.Object, error)) {
	m.mu.Lock()
	m.requests = append(m.requests, request)
	m.mu.Unlock()
	var (
		reply wire.Object
		err   error
	)
	if m.OnSend != nil {
		reply, err = m.OnSend(request)
	}
	go cb(reply, err)
}

func (m *mockDispatcher) Requests() []wire.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]wire.Request{}, m.requests...)
}

var _ dispatcher = &mockDispatcher{}

type mockMessages struct {
	OnResolveMessage func(chatID, messageID int64) (wire.InputPeer, int64, bool)
}

func (m mockMessages) ResolveMessage(chatID, messageID int64) (wire.InputPeer, int64, bool) {
	return m.OnResolveMessage(chatID, messageID)
}

var _ messages = mockMessages{}

type mockUpdateHandler struct {
	shippingQueries    chan oas.UpdateNewShippingQuery
	preCheckoutQueries chan oas.UpdateNewPreCheckoutQuery
}

func newMockUpdateHandler() *mockUpdateHandler {
	return &mockUpdateHandler{
		shippingQueries:    make(chan oas.UpdateNewShippingQuery, 1),
		preCheckoutQueries: make(chan oas.UpdateNewPreCheckoutQuery, 1),
	}
}

func (m *mockUpdateHandler) OnNewShippingQuery(update oas.UpdateNewShippingQuery) {
	m.shippingQueries <- update
}

func (m *mockUpdateHandler) OnNewPreCheckoutQuery(update oas.UpdateNewPreCheckoutQuery) {
	m.preCheckoutQueries <- update
}

var _ UpdateHandler = &mockUpdateHandler{}

// newTestHandler returns a handler running on its own actor with an in-memory file manager.
func newTestHandler(t *testing.T, d dispatcher, opts ...Option) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	a := actor.New(zap.L())
	go a.Run(ctx)
	return NewHandler(d, a, files.NewManager(64, zap.L()), opts...)
}

func newTestTranslator(lang string) *Translator {
	return NewTranslator(files.NewManager(64, zap.L()), lang, zap.L())
}

func await[T any](t *testing.T, ch <-chan promise.Result[T]) promise.Result[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("promise was not resolved")
	}
	return promise.Result[T]{}
}

func validInvoiceContent() oas.InputMessageInvoice {
	return oas.InputMessageInvoice{
		Invoice: oas.Invoice{
			Currency: "USD",
			PriceParts: []oas.LabeledPricePart{
				{Label: "Item", Amount: 1000},
				{Label: "Discount", Amount: -100},
			},
			MaxTipAmount:                      500,
			SuggestedTipAmounts:               []int64{100, 200, 500},
			RecurringPaymentTermsOfServiceURL: "https://example.com/terms",
			IsTest:                            true,
			NeedName:                          true,
			NeedPhoneNumber:                   true,
			NeedEmailAddress:                  true,
			NeedShippingAddress:               true,
			SendPhoneNumberToProvider:         true,
			SendEmailAddressToProvider:        true,
			IsFlexible:                        true,
		},
		Title:          "Coffee",
		Description:    "A cup of coffee",
		PhotoURL:       "https://example.com/coffee.jpg",
		PhotoSize:      1024,
		PhotoWidth:     640,
		PhotoHeight:    480,
		Payload:        []byte{0, 1, 2, 0xff},
		ProviderToken:  "provider-token",
		ProviderData:   `{"receipt":{"items":[]}}`,
		StartParameter: "coffee",
	}
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return c
}
