package circuits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// Hasher computes the commitment used for server hashes.
type Hasher interface {
	Hash(ctx context.Context, inputs ...[]byte) ([32]byte, error)
}

// DeployInput is the public input of a server deployment proof.
type DeployInput struct {
	Domain      string         `json:"domain"`
	ServerHash  common.Hash    `json:"serverHash"`
	ChainID     uint64         `json:"chainId"`
	BlockNumber uint64         `json:"blockNumber"`
	Factory     common.Address `json:"factory"`
}

// Prover produces server deployment proofs.
type Prover interface {
	ProveDeploy(ctx context.Context, input DeployInput) ([]byte, error)
}

// Client talks to the circuit runner over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a circuit runner client.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type verifyRequest struct {
	MessageHash common.Hash    `json:"messageHash"`
	Hash        common.Hash    `json:"hash"`
	Proof       hexutil.Bytes  `json:"proof"`
	Address     common.Address `json:"address"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

type hashRequest struct {
	Inputs []hexutil.Bytes `json:"inputs"`
}

type hashResponse struct {
	Hash common.Hash `json:"hash"`
}

type proveResponse struct {
	Proof hexutil.Bytes `json:"proof"`
}

// PasswordVerifier returns the verifier backed by the password circuit.
func (c *Client) PasswordVerifier() Verifier {
	return c.verifier("/password/verify")
}

// SignatureVerifier returns the verifier backed by the signature circuit.
func (c *Client) SignatureVerifier() Verifier {
	return c.verifier("/signature/verify")
}

func (c *Client) verifier(path string) Verifier {
	return VerifierFunc(func(ctx context.Context, messageHash, referenceHash common.Hash, proof []byte, claimant common.Address) (bool, error) {
		var resp verifyResponse
		status, err := c.post(ctx, path, verifyRequest{
			MessageHash: messageHash,
			Hash:        referenceHash,
			Proof:       proof,
			Address:     claimant,
		}, &resp)
		if err != nil {
			return false, err
		}
		if status >= 400 && status < 500 {
			// the runner rejects malformed or non-verifying proofs with a client error
			return false, nil
		}
		return resp.Verified, nil
	})
}

// Hash computes the pedersen commitment of inputs on the circuit runner.
func (c *Client) Hash(ctx context.Context, inputs ...[]byte) ([32]byte, error) {
	req := hashRequest{Inputs: make([]hexutil.Bytes, len(inputs))}
	for i, in := range inputs {
		req.Inputs[i] = in
	}

	var resp hashResponse
	status, err := c.post(ctx, "/pedersen/hash", req, &resp)
	if err != nil {
		return [32]byte{}, err
	}
	if status != http.StatusOK {
		return [32]byte{}, fmt.Errorf("pedersen hash: unexpected status %d", status)
	}
	return resp.Hash, nil
}

// ProveDeploy asks the circuit runner for a deployment proof.
func (c *Client) ProveDeploy(ctx context.Context, input DeployInput) ([]byte, error) {
	var resp proveResponse
	status, err := c.post(ctx, "/deploy/prove", input, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("deploy prove: unexpected status %d", status)
	}
	if len(resp.Proof) == 0 {
		return nil, errors.New("deploy prove: empty proof")
	}
	return resp.Proof, nil
}

// post sends body as JSON. Transport failures and 5xx responses are reported
// as ErrVerifierUnavailable; 2xx bodies are decoded into out.
func (c *Client) post(ctx context.Context, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrVerifierUnavailable, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("circuit runner call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 500 {
		return resp.StatusCode, fmt.Errorf("%w: %s returned status %d", ErrVerifierUnavailable, path, resp.StatusCode)
	}
	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return resp.StatusCode, nil
}
