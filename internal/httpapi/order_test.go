package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsridhar76/go-orderflow/internal/cache"
	"github.com/nsridhar76/go-orderflow/internal/messaging"
	"github.com/nsridhar76/go-orderflow/internal/orders"
	"github.com/nsridhar76/go-orderflow/internal/store"
)

type fakeQueue struct {
	published []messaging.OrderEvent
	err       error
}

func (q *fakeQueue) PublishOrderCreated(_ context.Context, event messaging.OrderEvent) error {
	if q.err != nil {
		return q.err
	}
	q.published = append(q.published, event)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderServer(t *testing.T, queue messaging.QueuePublisher) *httptest.Server {
	t.Helper()
	srv := miniredis.RunT(t)
	c := cache.NewRedis(cache.RedisConfig{Addr: srv.Addr()}, 300*time.Second)
	t.Cleanup(func() { _ = c.Close() })

	svc := orders.New(store.NewMemory(), c, queue, testLogger())
	ts := httptest.NewServer(NewOrderRouter(svc, testLogger()))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCreateThenQueryStatus(t *testing.T) {
	queue := &fakeQueue{}
	ts := newOrderServer(t, queue)

	resp := postJSON(t, ts.URL+"/create_order", `{"items":["A","B"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "new", created.Status)
	require.NotEmpty(t, created.OrderID)

	require.Len(t, queue.published, 1)
	assert.Equal(t, created.OrderID, queue.published[0].OrderID)
	assert.Equal(t, "order_created", queue.published[0].EventType)

	var status struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
		Cached  bool   `json:"cached"`
	}

	resp, err := http.Get(ts.URL + "/order_status/" + created.OrderID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.Equal(t, "new", status.Status)
	assert.False(t, status.Cached, "first read is served from the store")

	resp, err = http.Get(ts.URL + "/order_status/" + created.OrderID)
	require.NoError(t, err)
	decodeBody(t, resp, &status)
	assert.Equal(t, "new", status.Status)
	assert.True(t, status.Cached, "second read within the TTL is served from the cache")
}

func TestStatusUnknownOrderIs404(t *testing.T) {
	ts := newOrderServer(t, &fakeQueue{})

	resp, err := http.Get(ts.URL + "/order_status/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Order not found", body.Error)
}

func TestCreateSucceedsWhenQueueIsDown(t *testing.T) {
	queue := &fakeQueue{err: assert.AnError}
	ts := newOrderServer(t, queue)

	resp := postJSON(t, ts.URL+"/create_order", `{"items":["A"]}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode,
		"publish failures are logged, not surfaced to the caller")
}

func TestCreateToleratesEmptyBody(t *testing.T) {
	ts := newOrderServer(t, &fakeQueue{})

	resp := postJSON(t, ts.URL+"/create_order", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestOrderHealth(t *testing.T) {
	ts := newOrderServer(t, &fakeQueue{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "order_service", body.Service)
}
