package submission

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/fusion-middleware/pkg/app/http"
)

// HTTP exposes the journal read endpoint
type HTTP struct {
	store  Store
	logger *zap.Logger
}

// RegisterRoutes registers the journal endpoints on the given chi router
func RegisterRoutes(r chi.Router, store Store, logger *zap.Logger) {
	h := &HTTP{store: store, logger: logger}
	r.Get("/submissions/{domain}", apphttp.HandleError(h.list))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	domain := chi.URLParam(r, "domain")
	if domain == "" {
		return apperrors.BadRequestError(nil, "domain is required")
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return apperrors.BadRequestError(err, "limit must be a positive integer")
		}
		limit = n
	}

	records, err := h.store.ListByDomain(r.Context(), domain, limit)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"submissions": records,
	})
	return nil
}
