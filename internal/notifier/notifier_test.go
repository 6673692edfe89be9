package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsridhar76/go-orderflow/internal/messaging"
)

type fakeDelivery struct {
	body     []byte
	acked    bool
	rejected bool
}

func (d *fakeDelivery) Body() []byte { return d.body }
func (d *fakeDelivery) Ack() error   { d.acked = true; return nil }
func (d *fakeDelivery) Reject() error {
	d.rejected = true
	return nil
}

type fakeSender struct {
	notified []messaging.OrderEvent
	err      error
}

func (s *fakeSender) Notify(_ context.Context, event messaging.OrderEvent) error {
	if s.err != nil {
		return s.err
	}
	s.notified = append(s.notified, event)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderEventBody(t *testing.T, orderID string) []byte {
	t.Helper()
	body, err := json.Marshal(messaging.OrderEvent{
		OrderID:   orderID,
		EventType: messaging.EventOrderCreated,
	})
	require.NoError(t, err)
	return body
}

func TestHandleAcksAfterSideEffects(t *testing.T) {
	sender := &fakeSender{}
	svc := New(sender, testLogger())
	d := &fakeDelivery{body: orderEventBody(t, "o-1")}

	svc.Handle(context.Background(), d)

	require.Len(t, sender.notified, 1)
	assert.Equal(t, "o-1", sender.notified[0].OrderID)
	assert.True(t, d.acked)
	assert.False(t, d.rejected)
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	sender := &fakeSender{}
	svc := New(sender, testLogger())
	d := &fakeDelivery{body: []byte("not json")}

	svc.Handle(context.Background(), d)

	assert.Empty(t, sender.notified)
	assert.False(t, d.acked)
	assert.True(t, d.rejected, "malformed messages are dropped, never requeued")
}

func TestHandleRejectsWhenSendingFails(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := New(sender, testLogger())
	d := &fakeDelivery{body: orderEventBody(t, "o-1")}

	svc.Handle(context.Background(), d)

	assert.False(t, d.acked)
	assert.True(t, d.rejected)
}

func TestHandleSurvivesPoisonMessage(t *testing.T) {
	sender := &fakeSender{}
	svc := New(sender, testLogger())
	ctx := context.Background()

	poison := &fakeDelivery{body: []byte("{{")}
	svc.Handle(ctx, poison)
	assert.True(t, poison.rejected)

	next := &fakeDelivery{body: orderEventBody(t, "o-2")}
	svc.Handle(ctx, next)
	assert.True(t, next.acked, "the loop keeps processing after a poison message")
	require.Len(t, sender.notified, 1)
	assert.Equal(t, "o-2", sender.notified[0].OrderID)
}
