package payments

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

var slugInvoice = oas.NewInputInvoiceNameInputInvoice(oas.InputInvoiceName{Name: "coffee"})

func paymentForm(id int64, maxTip int64) *wire.PaymentsPaymentForm {
	return &wire.PaymentsPaymentForm{
		FormID:     id,
		BotID:      100,
		Title:      "Coffee",
		ProviderID: 200,
		URL:        "https://provider.example.com/pay",
		Invoice: wire.Invoice{
			Currency:     "USD",
			Prices:       []wire.LabeledPrice{{Label: "Item", Amount: 1000}},
			MaxTipAmount: maxTip,
		},
	}
}

func TestHandler_GetPaymentForm(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return paymentForm(1, 0), nil
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[*oas.PaymentForm]()
	h.GetPaymentForm(ctx(t), slugInvoice, &oas.ThemeParameters{BackgroundColor: 0xffffff, TextColor: 0x000001}, p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, int64(1), res.Value.ID)
	require.Equal(t, int64(1000), res.Value.TotalAmount)
	require.Equal(t, "USD", res.Value.Invoice.Currency)
	require.Equal(t, oas.NewPaymentProviderOtherPaymentProvider(oas.PaymentProviderOther{URL: "https://provider.example.com/pay"}), res.Value.PaymentProvider)
	require.False(t, res.Value.SavedOrderInfo.Set)

	requests := d.Requests()
	require.Len(t, requests, 1)
	request := requests[0].(*wire.PaymentsGetPaymentForm)
	require.Equal(t, wire.NewInputInvoiceSlugInputInvoice(wire.InputInvoiceSlug{Slug: "coffee"}), request.Invoice)
	require.NotNil(t, request.ThemeParams)
	require.Contains(t, request.ThemeParams.Data, `"bg_color":"#ffffff"`)
	require.Contains(t, request.ThemeParams.Data, `"text_color":"#000001"`)
	require.Contains(t, request.ThemeParams.Data, `"button_text_color":"#000000"`)
}

func TestHandler_GetPaymentForm_LocalErrors(t *testing.T) {
	tests := []struct {
		name     string
		invoice  oas.InputInvoice
		theme    *oas.ThemeParameters
		wantCode core.Code
	}{
		{
			name:     "color out of range",
			invoice:  slugInvoice,
			theme:    &oas.ThemeParameters{LinkColor: 0x1000000},
			wantCode: core.CodeInvalidArgument,
		},
		{
			name:     "negative color",
			invoice:  slugInvoice,
			theme:    &oas.ThemeParameters{ButtonColor: -1},
			wantCode: core.CodeInvalidArgument,
		},
		{
			name:     "empty name",
			invoice:  oas.NewInputInvoiceNameInputInvoice(oas.InputInvoiceName{}),
			wantCode: core.CodeInvalidArgument,
		},
		{
			name:     "empty input invoice",
			wantCode: core.CodeInvalidArgument,
		},
		{
			name:     "unknown message",
			invoice:  oas.NewInputInvoiceMessageInputInvoice(oas.InputInvoiceMessage{ChatID: 1, MessageID: 2}),
			wantCode: core.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDispatcher{}
			h := newTestHandler(t, d)
			p, ch := promise.Chan[*oas.PaymentForm]()
			h.GetPaymentForm(ctx(t), tt.invoice, tt.theme, p)
			require.Len(t, ch, 1)
			res := <-ch
			require.Equal(t, tt.wantCode, core.ErrorCode(res.Err))
			require.Empty(t, d.Requests())
		})
	}
}

func TestHandler_GetPaymentForm_ByMessage(t *testing.T) {
	peer := wire.InputPeer{Kind: "user", ID: 10, AccessHash: 11}
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return paymentForm(1, 0), nil
	}}
	h := newTestHandler(t, d, WithMessages(mockMessages{
		OnResolveMessage: func(chatID, messageID int64) (wire.InputPeer, int64, bool) {
			return peer, messageID + 1000, chatID == 10
		},
	}))
	p, ch := promise.Chan[*oas.PaymentForm]()
	h.GetPaymentForm(ctx(t), oas.NewInputInvoiceMessageInputInvoice(oas.InputInvoiceMessage{ChatID: 10, MessageID: 5}), nil, p)
	require.Nil(t, await(t, ch).Err)

	request := d.Requests()[0].(*wire.PaymentsGetPaymentForm)
	require.Equal(t, wire.NewInputInvoiceMessageInputInvoice(wire.InputInvoiceMessage{Peer: peer, MsgID: 1005}), request.Invoice)
	require.Nil(t, request.ThemeParams)
}

func TestHandler_GetPaymentForm_NativeProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		params   string
		want     oas.PaymentProvider
	}{
		{
			name:     "stripe",
			provider: "stripe",
			params:   `{"publishable_key":"pk_test","need_country":true,"need_zip":true,"need_cardholder_name":false,"extra":[1]}`,
			want: oas.NewPaymentProviderStripePaymentProvider(oas.PaymentProviderStripe{
				PublishableKey: "pk_test",
				NeedCountry:    true,
				NeedPostalCode: true,
			}),
		},
		{
			name:     "smartglocal",
			provider: "smartglocal",
			params:   `{"public_token":"token"}`,
			want:     oas.NewPaymentProviderSmartGlocalPaymentProvider(oas.PaymentProviderSmartGlocal{PublicToken: "token"}),
		},
		{
			name:     "malformed stripe parameters",
			provider: "stripe",
			params:   `{"publishable_key":1}`,
			want:     oas.NewPaymentProviderOtherPaymentProvider(oas.PaymentProviderOther{URL: "https://provider.example.com/pay"}),
		},
		{
			name:     "unknown provider",
			provider: "paypal",
			params:   `{}`,
			want:     oas.NewPaymentProviderOtherPaymentProvider(oas.PaymentProviderOther{URL: "https://provider.example.com/pay"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
				form := paymentForm(1, 0)
				form.NativeProvider = tt.provider
				form.NativeParams = &wire.DataJSON{Data: tt.params}
				form.SavedInfo = &wire.PaymentRequestedInfo{Name: "John"}
				form.SavedCredentials = []wire.PaymentSavedCredentialsCard{{ID: "card", Title: "•••• 4242"}}
				return form, nil
			}}
			h := newTestHandler(t, d)
			p, ch := promise.Chan[*oas.PaymentForm]()
			h.GetPaymentForm(ctx(t), slugInvoice, nil, p)
			res := await(t, ch)
			require.Nil(t, res.Err)
			require.Equal(t, tt.want, res.Value.PaymentProvider)
			require.Equal(t, oas.NewOptOrderInfo(oas.OrderInfo{Name: "John"}), res.Value.SavedOrderInfo)
			require.Equal(t, []oas.SavedCredentials{{ID: "card", Title: "•••• 4242"}}, res.Value.SavedCredentials)
		})
	}
}

func TestHandler_SendPaymentForm_TipBound(t *testing.T) {
	tests := []struct {
		name     string
		maxTip   int64
		tip      int64
		wantCode core.Code
	}{
		{name: "tip above max", maxTip: 500, tip: 600, wantCode: core.CodeInvalidArgument},
		{name: "tip equals max", maxTip: 500, tip: 500},
		{name: "no tip", maxTip: 500, tip: 0},
		{name: "negative tip", maxTip: 500, tip: -1, wantCode: core.CodeInvalidArgument},
		{name: "any tip without max", maxTip: 0, tip: 1_000_000},
		{name: "negative tip without max", maxTip: 0, tip: -1, wantCode: core.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
				switch request.(type) {
				case *wire.PaymentsGetPaymentForm:
					return paymentForm(7, tt.maxTip), nil
				case *wire.PaymentsSendPaymentForm:
					return &wire.PaymentsPaymentResult{}, nil
				}
				return nil, errors.New("unexpected request")
			}}
			h := newTestHandler(t, d)
			formP, formCh := promise.Chan[*oas.PaymentForm]()
			h.GetPaymentForm(ctx(t), slugInvoice, nil, formP)
			require.Nil(t, await(t, formCh).Err)

			credentials := oas.NewInputCredentialsSavedInputCredentials(oas.InputCredentialsSaved{SavedCredentialsID: "card"})
			p, ch := promise.Chan[*oas.PaymentResult]()
			h.SendPaymentForm(ctx(t), slugInvoice, 7, "info", "post", credentials, tt.tip, p)
			res := await(t, ch)
			if tt.wantCode != "" {
				require.Equal(t, tt.wantCode, core.ErrorCode(res.Err))
				require.Len(t, d.Requests(), 1)
				return
			}
			require.Nil(t, res.Err)
			require.Equal(t, &oas.PaymentResult{Success: true}, res.Value)
			requests := d.Requests()
			require.Len(t, requests, 2)
			send := requests[1].(*wire.PaymentsSendPaymentForm)
			require.Equal(t, int64(7), send.FormID)
			require.Equal(t, tt.tip, send.TipAmount)
			require.Equal(t, "info", send.RequestedInfoID)
			require.Equal(t, "post", send.ShippingOptionID)
			require.Equal(t, wire.InputPaymentCredentialsSavedInputPaymentCredentials, send.Credentials.Type)
			require.Equal(t, "card", send.Credentials.InputPaymentCredentialsSaved.ID)
		})
	}
}

func TestHandler_SendPaymentForm(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		switch request.(type) {
		case *wire.PaymentsGetPaymentForm:
			return paymentForm(7, 0), nil
		case *wire.PaymentsSendPaymentForm:
			return &wire.PaymentsPaymentVerificationNeeded{URL: "https://3ds.example.com"}, nil
		}
		return nil, errors.New("unexpected request")
	}}
	h := newTestHandler(t, d)

	credentials := oas.NewInputCredentialsNewInputCredentials(oas.InputCredentialsNew{Data: `{"token":"tok"}`, AllowSave: true})
	p, ch := promise.Chan[*oas.PaymentResult]()
	h.SendPaymentForm(ctx(t), slugInvoice, 7, "", "", credentials, 0, p)
	require.Equal(t, core.CodeNotFound, core.ErrorCode(await(t, ch).Err))
	require.Empty(t, d.Requests())

	formP, formCh := promise.Chan[*oas.PaymentForm]()
	h.GetPaymentForm(ctx(t), slugInvoice, nil, formP)
	require.Nil(t, await(t, formCh).Err)

	p, ch = promise.Chan[*oas.PaymentResult]()
	h.SendPaymentForm(ctx(t), slugInvoice, 7, "", "", oas.InputCredentials{}, 0, p)
	require.Equal(t, core.CodeInvalidArgument, core.ErrorCode(await(t, ch).Err))

	// Order info validation is not required before sending.
	p, ch = promise.Chan[*oas.PaymentResult]()
	h.SendPaymentForm(ctx(t), slugInvoice, 7, "", "", credentials, 0, p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, &oas.PaymentResult{VerificationURL: "https://3ds.example.com"}, res.Value)
	send := d.Requests()[1].(*wire.PaymentsSendPaymentForm)
	require.Equal(t, wire.InputPaymentCredentialsNew{Save: true, Data: wire.DataJSON{Data: `{"token":"tok"}`}}, send.Credentials.InputPaymentCredentialsNew)
}

func TestHandler_AnswerShippingQuery(t *testing.T) {
	options := []oas.ShippingOption{
		{ID: "post", Title: "Post", PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 300}}},
		{ID: "courier", Title: "Courier", PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 900}, {Label: "Insurance", Amount: 100}}},
	}
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return &wire.BoolTrue{}, nil
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[promise.Unit]()
	h.AnswerShippingQuery(ctx(t), 42, options, "", p)
	require.Nil(t, await(t, ch).Err)

	p, ch = promise.Chan[promise.Unit]()
	h.AnswerShippingQuery(ctx(t), 43, options, "We don't ship there", p)
	require.Nil(t, await(t, ch).Err)

	requests := d.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, &wire.MessagesSetBotShippingResults{
		QueryID: 42,
		ShippingOptions: []wire.ShippingOption{
			{ID: "post", Title: "Post", Prices: []wire.LabeledPrice{{Label: "Delivery", Amount: 300}}},
			{ID: "courier", Title: "Courier", Prices: []wire.LabeledPrice{{Label: "Delivery", Amount: 900}, {Label: "Insurance", Amount: 100}}},
		},
	}, requests[0])
	require.Equal(t, &wire.MessagesSetBotShippingResults{QueryID: 43, Error: "We don't ship there"}, requests[1])
}

func TestHandler_AnswerShippingQuery_InvalidOption(t *testing.T) {
	d := &mockDispatcher{}
	h := newTestHandler(t, d)
	for _, option := range []oas.ShippingOption{
		{Title: "Post", PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 300}}},
		{ID: "post", PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 300}}},
		{ID: "post", Title: "Post"},
	} {
		p, ch := promise.Chan[promise.Unit]()
		h.AnswerShippingQuery(ctx(t), 1, []oas.ShippingOption{option}, "", p)
		require.Equal(t, core.CodeInvalidArgument, core.ErrorCode(await(t, ch).Err))
	}
	require.Empty(t, d.Requests())
}

func TestHandler_AnswerPreCheckoutQuery(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return &wire.BoolTrue{}, nil
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[promise.Unit]()
	h.AnswerPreCheckoutQuery(ctx(t), 1, "", p)
	require.Nil(t, await(t, ch).Err)
	p, ch = promise.Chan[promise.Unit]()
	h.AnswerPreCheckoutQuery(ctx(t), 2, "Out of stock", p)
	require.Nil(t, await(t, ch).Err)

	require.Equal(t, []wire.Request{
		&wire.MessagesSetBotPrecheckoutResults{Success: true, QueryID: 1},
		&wire.MessagesSetBotPrecheckoutResults{QueryID: 2, Error: "Out of stock"},
	}, d.Requests())
}

func TestHandler_RemoteErrors(t *testing.T) {
	tests := []struct {
		name        string
		reply       wire.Object
		err         error
		wantCode    core.Code
		wantMessage string
	}{
		{name: "expired form", err: &wire.RPCError{Code: 400, Message: "FORM_ID_EXPIRED"}, wantCode: core.CodeNotFound},
		{name: "invalid slug", err: &wire.RPCError{Code: 400, Message: "INVOICE_SLUG_INVALID"}, wantCode: core.CodeNotFound},
		{
			name:        "rejected",
			err:         &wire.RPCError{Code: 400, Message: "SHIPPING_NOT_AVAILABLE"},
			wantCode:    core.CodeRemoteRejected,
			wantMessage: "SHIPPING_NOT_AVAILABLE",
		},
		{name: "transport", err: errors.New("connection reset"), wantCode: core.CodeTransportFailure},
		{name: "undecodable reply", err: core.ParseError(errors.New("bad json"), "dispatcher.send", "bad reply"), wantCode: core.CodeParseError},
		{name: "unexpected reply", reply: &wire.BoolTrue{}, wantCode: core.CodeParseError},
		{name: "no reply", wantCode: core.CodeParseError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
				return tt.reply, tt.err
			}}
			h := newTestHandler(t, d)
			p, ch := promise.Chan[*oas.PaymentForm]()
			h.GetPaymentForm(ctx(t), slugInvoice, nil, p)
			res := await(t, ch)
			require.Equal(t, tt.wantCode, core.ErrorCode(res.Err))
			if tt.wantMessage != "" {
				require.Equal(t, tt.wantMessage, core.ErrorMessage(res.Err))
			}
			var e *core.Error
			require.True(t, errors.As(res.Err, &e))
			require.Equal(t, "payments.get_payment_form", e.Op)
		})
	}
}

func TestHandler_ValidateOrderInfo(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		r := request.(*wire.PaymentsValidateRequestedInfo)
		if r.Info.ShippingAddress != nil && r.Info.ShippingAddress.CountryISO2 == "AQ" {
			return nil, &wire.RPCError{Code: 400, Message: "ADDRESS_COUNTRY_INVALID"}
		}
		return &wire.PaymentsValidatedRequestedInfo{
			ID:              "info-1",
			ShippingOptions: []wire.ShippingOption{{ID: "post", Title: "Post", Prices: []wire.LabeledPrice{{Label: "Delivery", Amount: 300}}}},
		}, nil
	}}
	h := newTestHandler(t, d)

	orderInfo := &oas.OrderInfo{
		Name:         "John",
		PhoneNumber:  "+15550100",
		EmailAddress: "john@example.com",
		ShippingAddress: oas.NewOptAddress(oas.Address{
			CountryCode: "us",
			City:        "Springfield",
			StreetLine1: "742 Evergreen Terrace",
			PostalCode:  "49007",
		}),
	}
	p, ch := promise.Chan[*oas.ValidatedOrderInfo]()
	h.ValidateOrderInfo(ctx(t), slugInvoice, orderInfo, true, p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, &oas.ValidatedOrderInfo{
		OrderInfoID:     "info-1",
		ShippingOptions: []oas.ShippingOption{{ID: "post", Title: "Post", PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 300}}}},
	}, res.Value)
	request := d.Requests()[0].(*wire.PaymentsValidateRequestedInfo)
	require.True(t, request.Save)
	require.Equal(t, "US", request.Info.ShippingAddress.CountryISO2)
	require.Equal(t, "john@example.com", request.Info.Email)

	orderInfo.ShippingAddress.Value.CountryCode = "AQ"
	p, ch = promise.Chan[*oas.ValidatedOrderInfo]()
	h.ValidateOrderInfo(ctx(t), slugInvoice, orderInfo, false, p)
	res = await(t, ch)
	require.Equal(t, core.CodeRemoteRejected, core.ErrorCode(res.Err))
	require.Equal(t, "ADDRESS_COUNTRY_INVALID", core.ErrorMessage(res.Err))

	p, ch = promise.Chan[*oas.ValidatedOrderInfo]()
	h.ValidateOrderInfo(ctx(t), slugInvoice, nil, false, p)
	require.Nil(t, await(t, ch).Err)
	require.Equal(t, wire.PaymentRequestedInfo{}, d.Requests()[2].(*wire.PaymentsValidateRequestedInfo).Info)
}

func TestHandler_ValidateOrderInfo_LocalErrors(t *testing.T) {
	tests := []struct {
		name      string
		orderInfo oas.OrderInfo
		want      string
	}{
		{
			name:      "bad email",
			orderInfo: oas.OrderInfo{EmailAddress: "not-an-email"},
			want:      "EmailAddress is not a valid email address",
		},
		{
			name:      "unknown country",
			orderInfo: oas.OrderInfo{ShippingAddress: oas.NewOptAddress(oas.Address{CountryCode: "XX", City: "A", StreetLine1: "B"})},
			want:      "wrong country code specified",
		},
		{
			name:      "missing city",
			orderInfo: oas.OrderInfo{ShippingAddress: oas.NewOptAddress(oas.Address{CountryCode: "US", StreetLine1: "B"})},
			want:      "address City must be non-empty",
		},
		{
			name:      "invalid UTF-8",
			orderInfo: oas.OrderInfo{Name: "\xff"},
			want:      "UTF-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDispatcher{}
			h := newTestHandler(t, d)
			p, ch := promise.Chan[*oas.ValidatedOrderInfo]()
			h.ValidateOrderInfo(ctx(t), slugInvoice, &tt.orderInfo, false, p)
			res := await(t, ch)
			require.Equal(t, core.CodeInvalidArgument, core.ErrorCode(res.Err))
			require.Contains(t, core.ErrorMessage(res.Err), tt.want)
			require.Empty(t, d.Requests())
		})
	}
}

func TestHandler_SavedInfo(t *testing.T) {
	var saved *wire.PaymentRequestedInfo
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		switch r := request.(type) {
		case *wire.PaymentsGetSavedInfo:
			return &wire.PaymentsSavedInfo{SavedInfo: saved}, nil
		case *wire.PaymentsClearSavedInfo:
			if r.Credentials {
				return &wire.BoolFalse{}, nil
			}
			return &wire.BoolTrue{}, nil
		}
		return nil, errors.New("unexpected request")
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[oas.OptOrderInfo]()
	h.GetSavedOrderInfo(ctx(t), p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.False(t, res.Value.Set)

	saved = &wire.PaymentRequestedInfo{
		Name:            "John",
		ShippingAddress: &wire.PostAddress{CountryISO2: "US", City: "Springfield", StreetLine1: "Main st."},
	}
	p, ch = promise.Chan[oas.OptOrderInfo]()
	h.GetSavedOrderInfo(ctx(t), p)
	res = await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, oas.NewOptOrderInfo(oas.OrderInfo{
		Name:            "John",
		ShippingAddress: oas.NewOptAddress(oas.Address{CountryCode: "US", City: "Springfield", StreetLine1: "Main st."}),
	}), res.Value)

	unitP, unitCh := promise.Chan[promise.Unit]()
	h.DeleteSavedOrderInfo(ctx(t), unitP)
	require.Nil(t, await(t, unitCh).Err)

	unitP, unitCh = promise.Chan[promise.Unit]()
	h.DeleteSavedCredentials(ctx(t), unitP)
	require.Equal(t, core.CodeRemoteRejected, core.ErrorCode(await(t, unitCh).Err))

	requests := d.Requests()
	require.Len(t, requests, 4)
	require.Equal(t, &wire.PaymentsClearSavedInfo{Info: true}, requests[2])
	require.Equal(t, &wire.PaymentsClearSavedInfo{Credentials: true}, requests[3])
}

func TestHandler_GetPaymentReceipt(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return &wire.PaymentsPaymentReceipt{
			Date:        1700000000,
			BotID:       100,
			ProviderID:  200,
			Title:       "Coffee",
			Invoice:     wire.Invoice{Currency: "USD", Prices: []wire.LabeledPrice{{Label: "Item", Amount: 1000}}},
			Info:        &wire.PaymentRequestedInfo{Name: "John"},
			Shipping:    &wire.ShippingOption{ID: "post", Title: "Post", Prices: []wire.LabeledPrice{{Label: "Delivery", Amount: 300}}},
			TipAmount:   50,
			Currency:    "USD",
			TotalAmount: 1350,

			CredentialsTitle: "•••• 4242",
		}, nil
	}}
	h := newTestHandler(t, d, WithMessages(mockMessages{
		OnResolveMessage: func(chatID, messageID int64) (wire.InputPeer, int64, bool) {
			return wire.InputPeer{Kind: "user", ID: chatID}, messageID, messageID == 5
		},
	}))

	p, ch := promise.Chan[*oas.PaymentReceipt]()
	h.GetPaymentReceipt(ctx(t), 1, 6, p)
	require.Equal(t, core.CodeNotFound, core.ErrorCode(await(t, ch).Err))

	p, ch = promise.Chan[*oas.PaymentReceipt]()
	h.GetPaymentReceipt(ctx(t), 1, 5, p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, int64(1350), res.Value.TotalAmount)
	require.Equal(t, int64(50), res.Value.TipAmount)
	require.Equal(t, "•••• 4242", res.Value.CredentialsTitle)
	require.Equal(t, oas.NewOptShippingOption(oas.ShippingOption{
		ID:         "post",
		Title:      "Post",
		PriceParts: []oas.LabeledPricePart{{Label: "Delivery", Amount: 300}},
	}), res.Value.ShippingOption)
	require.Equal(t, oas.NewOptOrderInfo(oas.OrderInfo{Name: "John"}), res.Value.OrderInfo)
	require.Equal(t, []wire.Request{&wire.PaymentsGetPaymentReceipt{Peer: wire.InputPeer{Kind: "user", ID: 1}, MsgID: 5}}, d.Requests())
}

func TestHandler_ExportInvoice(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return &wire.PaymentsExportedInvoice{URL: "https://t.me/$coffee"}, nil
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[string]()
	h.ExportInvoice(ctx(t), oas.NewInputMessageInvoiceInputMessageContent(validInvoiceContent()), p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, "https://t.me/$coffee", res.Value)
	request := d.Requests()[0].(*wire.PaymentsExportInvoice)
	require.Equal(t, "Coffee", request.InvoiceMedia.Title)
	require.Equal(t, "https://example.com/coffee.jpg", request.InvoiceMedia.Photo.URL)

	p, ch = promise.Chan[string]()
	h.ExportInvoice(ctx(t), oas.NewInputMessageTextInputMessageContent(oas.InputMessageText{Text: "hi"}), p)
	res = await(t, ch)
	require.Equal(t, core.CodeInvalidArgument, core.ErrorCode(res.Err))
	require.Len(t, d.Requests(), 1)
}

func TestHandler_GetBankCardInfo(t *testing.T) {
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		return &wire.PaymentsBankCardData{
			Title:    "Example Bank",
			OpenURLs: []wire.BankCardOpenURL{{URL: "https://bank.example.com", Name: "Open bank"}},
		}, nil
	}}
	h := newTestHandler(t, d)

	p, ch := promise.Chan[*oas.BankCardInfo]()
	h.GetBankCardInfo(ctx(t), "", p)
	require.Equal(t, core.CodeInvalidArgument, core.ErrorCode(await(t, ch).Err))

	p, ch = promise.Chan[*oas.BankCardInfo]()
	h.GetBankCardInfo(ctx(t), "4242424242424242", p)
	res := await(t, ch)
	require.Nil(t, res.Err)
	require.Equal(t, &oas.BankCardInfo{
		Title:   "Example Bank",
		Actions: []oas.BankCardActionOpenURL{{Text: "Open bank", URL: "https://bank.example.com"}},
	}, res.Value)
	require.Equal(t, []wire.Request{&wire.PaymentsGetBankCardData{Number: "4242424242424242"}}, d.Requests())
}

func TestHandler_HandleUpdate(t *testing.T) {
	updates := newMockUpdateHandler()
	h := newTestHandler(t, &mockDispatcher{}, WithUpdateHandler(updates))

	err := h.HandleUpdate(&wire.UpdateBotShippingQuery{
		QueryID:         1,
		UserID:          2,
		Payload:         []byte("order-1"),
		ShippingAddress: wire.PostAddress{CountryISO2: "XX", City: "Nowhere"},
	})
	require.Nil(t, err)
	shippingQuery := <-updates.shippingQueries
	require.Equal(t, oas.UpdateNewShippingQuery{
		ID:              1,
		SenderUserID:    2,
		InvoicePayload:  []byte("order-1"),
		ShippingAddress: oas.Address{CountryCode: "XX", City: "Nowhere"},
	}, shippingQuery)

	err = h.HandleUpdate(&wire.UpdateBotPrecheckoutQuery{
		QueryID:          3,
		UserID:           2,
		Payload:          []byte("order-1"),
		Info:             &wire.PaymentRequestedInfo{Email: "john@example.com"},
		ShippingOptionID: "post",
		Currency:         "USD",
		TotalAmount:      1300,
	})
	require.Nil(t, err)
	preCheckoutQuery := <-updates.preCheckoutQueries
	require.Equal(t, oas.UpdateNewPreCheckoutQuery{
		ID:               3,
		SenderUserID:     2,
		Currency:         "USD",
		TotalAmount:      1300,
		InvoicePayload:   []byte("order-1"),
		ShippingOptionID: "post",
		OrderInfo:        oas.NewOptOrderInfo(oas.OrderInfo{EmailAddress: "john@example.com"}),
	}, preCheckoutQuery)

	err = h.HandleUpdate(&wire.BoolTrue{})
	require.True(t, core.IsCode(err, core.CodeParseError))
}

func TestHandler_AbandonedPromise(t *testing.T) {
	done := make(chan struct{})
	d := &mockDispatcher{OnSend: func(request wire.Request) (wire.Object, error) {
		defer close(done)
		return paymentForm(1, 0), nil
	}}
	h := newTestHandler(t, d)
	h.GetPaymentForm(ctx(t), slugInvoice, nil, promise.New[*oas.PaymentForm](nil))
	<-done
	require.Len(t, d.Requests(), 1)
}
