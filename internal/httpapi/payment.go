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
	"github.com/nsridhar76/go-orderflow/internal/payments"
)

type PaymentAPI struct {
	svc *payments.Service
	log *slog.Logger
}

func NewPaymentRouter(svc *payments.Service, log *slog.Logger) http.Handler {
	api := &PaymentAPI{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/process_payment", api.processPayment)
	r.Get("/health", healthHandler("payment_service"))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type processPaymentRequest struct {
	OrderID string   `json:"order_id"`
	Amount  *float64 `json:"amount"`
}

type processPaymentResponse struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Message   string  `json:"message"`
}

func (a *PaymentAPI) processPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No payment data provided")
		return
	}

	res, err := a.svc.Process(r.Context(), req.OrderID, req.Amount)
	if errors.Is(err, domain.ErrInvalidPayment) {
		writeError(w, http.StatusBadRequest, "order_id and amount are required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	message := "Payment processed successfully"
	if res.PublishErr != nil {
		a.log.Error("payment completed but analytics publish failed",
			"payment_id", res.Payment.ID, "order_id", res.Payment.OrderID,
			"error", res.PublishErr)
		message = "Payment processed but failed to send analytics data"
	}

	writeJSON(w, http.StatusOK, processPaymentResponse{
		PaymentID: res.Payment.ID,
		OrderID:   res.Payment.OrderID,
		Amount:    res.Payment.Amount,
		Status:    string(res.Payment.Status),
		Message:   message,
	})
}
