package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/payments"
)

type fakeStream struct {
	published []messaging.PaymentEvent
	err       error
}

func (s *fakeStream) PublishPaymentProcessed(_ context.Context, event messaging.PaymentEvent) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, event)
	return nil
}

func newPaymentServer(t *testing.T, stream messaging.StreamPublisher) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewPaymentRouter(payments.New(stream), testLogger()))
	t.Cleanup(ts.Close)
	return ts
}

func TestProcessPayment(t *testing.T) {
	stream := &fakeStream{}
	ts := newPaymentServer(t, stream)

	resp := postJSON(t, ts.URL+"/process_payment", `{"order_id":"X","amount":50}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		PaymentID string  `json:"payment_id"`
		OrderID   string  `json:"order_id"`
		Amount    float64 `json:"amount"`
		Status    string  `json:"status"`
		Message   string  `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.PaymentID)
	assert.Equal(t, "X", body.OrderID)
	assert.Equal(t, 50.0, body.Amount)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "Payment processed successfully", body.Message)

	require.Len(t, stream.published, 1)
	assert.Equal(t, "X", stream.published[0].OrderID)
	assert.Equal(t, "payment_processed", stream.published[0].EventType)
}

func TestProcessPaymentMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing order_id", body: `{"amount":50}`},
		{name: "missing amount", body: `{"order_id":"X"}`},
		{name: "empty object", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &fakeStream{}
			ts := newPaymentServer(t, stream)

			resp := postJSON(t, ts.URL+"/process_payment", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, stream.published)
		})
	}
}

func TestProcessPaymentNoBody(t *testing.T) {
	ts := newPaymentServer(t, &fakeStream{})

	resp := postJSON(t, ts.URL+"/process_payment", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProcessPaymentStreamDownStillSucceeds(t *testing.T) {
	ts := newPaymentServer(t, &fakeStream{err: assert.AnError})

	resp := postJSON(t, ts.URL+"/process_payment", `{"order_id":"X","amount":50}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, "Payment processed but failed to send analytics data", body.Message)
}

func TestPaymentHealth(t *testing.T) {
	ts := newPaymentServer(t, &fakeStream{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Service string `json:"service"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "payment_service", body.Service)
}
