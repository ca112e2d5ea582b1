package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/fusion-middleware/pkg/app/http"
	"github.com/chainsafe/fusion-middleware/pkg/deposit"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the balance endpoints on the given chi router.
// Write endpoints are mounted behind operatorAuth when it is non-nil.
func RegisterRoutes(r chi.Router, service Service, operatorAuth func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/balance", func(r chi.Router) {
		r.Get("/{domain}", apphttp.HandleError(h.balance))

		r.Group(func(r chi.Router) {
			if operatorAuth != nil {
				r.Use(operatorAuth)
			}
			r.Post("/deposit", apphttp.HandleError(h.deposit))
			r.Post("/withdraw-fees", apphttp.HandleError(h.withdrawFees))
		})
	})
}

func (h *HTTP) balance(w http.ResponseWriter, r *http.Request) error {
	balance, err := h.service.DomainBalance(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "balance": balance.String()})
	return nil
}

func (h *HTTP) deposit(w http.ResponseWriter, r *http.Request) error {
	var req deposit.CreditRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.CreditDeposit(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "receipt": receipt})
	return nil
}

func (h *HTTP) withdrawFees(w http.ResponseWriter, r *http.Request) error {
	var req deposit.WithdrawRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.WithdrawFees(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "receipt": receipt})
	return nil
}

func decodeBody(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
