package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nsridhar76/go-orderflow/internal/domain"
	"github.com/nsridhar76/go-orderflow/internal/orders"
)

type OrderAPI struct {
	svc *orders.Service
	log *slog.Logger
}

func NewOrderRouter(svc *orders.Service, log *slog.Logger) http.Handler {
	api := &OrderAPI{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/create_order", api.createOrder)
	r.Get("/order_status/{orderID}", api.orderStatus)
	r.Get("/health", healthHandler("order_service"))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type createOrderRequest struct {
	Items []string `json:"items"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (a *OrderAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	// An empty or non-JSON body means an order with no items, matching the
	// permissive contract of the original endpoint.
	var req createOrderRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := a.svc.Create(r.Context(), req.Items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.PublishErr != nil {
		// Availability over consistency: the order exists, the event is
		// gone. Logged here, never surfaced to the caller.
		a.log.Error("order created but event publish failed",
			"order_id", res.Order.ID, "error", res.PublishErr)
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		OrderID: res.Order.ID,
		Status:  string(res.Order.Status),
		Message: "Order created successfully",
	})
}

type orderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Cached  bool   `json:"cached"`
}

func (a *OrderAPI) orderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	res, err := a.svc.Status(r.Context(), orderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, orderStatusResponse{
		OrderID: res.OrderID,
		Status:  string(res.Status),
		Cached:  res.Cached,
	})
}
