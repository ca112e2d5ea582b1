package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/fusion-middleware/pkg/app/http"
	"github.com/chainsafe/fusion-middleware/pkg/claim"
)

const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the deploy endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/deploy", func(r chi.Router) {
		r.Post("/{chainId}", apphttp.HandleError(h.deploy))
		r.Post("/request/{chainId}", apphttp.HandleError(h.request))
		r.Get("/getHash/{chainId}", apphttp.HandleError(h.getHash))
		r.Get("/getAddress/{domain}", apphttp.HandleError(h.getAddress))
		r.Post("/finalize/{chainId}/{domain}", apphttp.HandleError(h.finalize))
		r.Get("/verify/{domain}/{proof}", apphttp.HandleError(h.verify))
	})
}

func (h *HTTP) deploy(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}

	var req claim.DeployRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.Deploy(r.Context(), chainID, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "receipt": receipt})
	return nil
}

func (h *HTTP) request(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}

	var req claim.DeployRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.ClaimOnTarget(r.Context(), chainID, req.ChainDeployRequest, claim.ModeRequest)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "receipt": receipt})
	return nil
}

func (h *HTTP) getHash(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}

	serverHash, err := h.service.GetServerHash(r.Context(), chainID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "serverHash": serverHash})
	return nil
}

func (h *HTTP) getAddress(w http.ResponseWriter, r *http.Request) error {
	addr, err := h.service.ResolveDeployAddress(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "walletAddress": addr.Hex()})
	return nil
}

func (h *HTTP) finalize(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}

	receipt, err := h.service.Finalize(r.Context(), chainID, chi.URLParam(r, "domain"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "receipt": receipt})
	return nil
}

func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	valid, err := h.service.VerifyIdentitySignature(r.Context(), chi.URLParam(r, "domain"), chi.URLParam(r, "proof"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": valid})
	return nil
}

func chainIDParam(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "chainId")
	if raw == "" {
		return 0, apperrors.BadRequestError(nil, "chainId is required")
	}
	chainID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || chainID == 0 {
		return 0, apperrors.BadRequestError(err, "chainId must be a positive integer")
	}
	return chainID, nil
}

func decodeBody(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
