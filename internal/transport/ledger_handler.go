// Package transport exposes read-only ledger queries over HTTP and the
// engine health over grpc.
package transport

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

var errBadRequest = errors.New("bad request")

type (
	tipResponse struct {
		Depth model.Depth `json:"depth"`
		Hash  string      `json:"hash"`
	}

	blockResponse struct {
		Depth        model.Depth `json:"depth"`
		Hash         string      `json:"hash"`
		PrevHash     string      `json:"prev_hash"`
		MerkleRoot   string      `json:"merkle_root"`
		Version      int32       `json:"version"`
		Timestamp    int64       `json:"timestamp"`
		Bits         uint32      `json:"bits"`
		Nonce        uint32      `json:"nonce"`
		Transactions []string    `json:"transactions"`
	}

	transactionResponse struct {
		Hash  string      `json:"hash"`
		Depth model.Depth `json:"depth"`
		Index uint32      `json:"index"`
		Raw   string      `json:"raw"`
	}

	refResponse struct {
		Hash  string `json:"hash"`
		Index uint32 `json:"index"`
	}

	spendResponse struct {
		Spent bool         `json:"spent"`
		Input *refResponse `json:"input,omitempty"`
	}

	outputsResponse struct {
		Address string        `json:"address"`
		Outputs []refResponse `json:"outputs"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

// LedgerHandler serves ledger queries as JSON.
type LedgerHandler struct {
	ledger Ledger
	params *chaincfg.Params
	logger *zap.Logger
}

func NewLedgerHandler(ledger Ledger, params *chaincfg.Params, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		params: params,
		logger: logger,
	}
}

// Register adds the query routes to mux.
func (h *LedgerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{"/v1/tip", h.tip},
		{"/v1/depths/{depth}", h.blockByDepth},
		{"/v1/blocks/{hash}", h.blockByHash},
		{"/v1/transactions/{hash}", h.transaction},
		{"/v1/outputs/{hash}/{index}/spend", h.spend},
		{"/v1/addresses/{address}/outputs", h.outputs},
	}
	for _, route := range routes {
		if err := mux.HandlePath(http.MethodGet, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s: %w", route.pattern, err)
		}
	}
	return nil
}

func (h *LedgerHandler) tip(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	depth, err := h.ledger.FetchLastDepth(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record, err := h.ledger.FetchBlockByDepth(ctx, depth)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tipResponse{Depth: record.Depth, Hash: record.Hash.String()})
}

func (h *LedgerHandler) blockByDepth(w http.ResponseWriter, r *http.Request, params map[string]string) {
	depth, err := parseUint32(params["depth"])
	if err != nil {
		h.writeError(w, r, fmt.Errorf("depth: %w", err))
		return
	}
	record, err := h.ledger.FetchBlockByDepth(r.Context(), depth)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(record))
}

func (h *LedgerHandler) blockByHash(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash, err := parseHash(params["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record, err := h.ledger.FetchBlockByHash(r.Context(), hash)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(record))
}

func (h *LedgerHandler) transaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash, err := parseHash(params["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	tx, err := h.ledger.FetchTransaction(ctx, hash)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	index, err := h.ledger.FetchTransactionIndex(ctx, hash)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var raw bytes.Buffer
	if err := tx.Serialize(&raw); err != nil {
		h.writeError(w, r, fmt.Errorf("serialize transaction: %w", err))
		return
	}
	h.writeJSON(w, http.StatusOK, transactionResponse{
		Hash:  hash.String(),
		Depth: index.Depth,
		Index: index.Index,
		Raw:   hex.EncodeToString(raw.Bytes()),
	})
}

func (h *LedgerHandler) spend(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash, err := parseHash(params["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	index, err := parseUint32(params["index"])
	if err != nil {
		h.writeError(w, r, fmt.Errorf("index: %w", err))
		return
	}
	input, err := h.ledger.FetchSpend(r.Context(), model.OutputRef{Hash: hash, Index: index})
	switch {
	case errors.Is(err, model.ErrUnspent):
		h.writeJSON(w, http.StatusOK, spendResponse{Spent: false})
	case err != nil:
		h.writeError(w, r, err)
	default:
		h.writeJSON(w, http.StatusOK, spendResponse{
			Spent: true,
			Input: &refResponse{Hash: input.Hash.String(), Index: input.Index},
		})
	}
}

func (h *LedgerHandler) outputs(w http.ResponseWriter, r *http.Request, params map[string]string) {
	address, err := btcutil.DecodeAddress(params["address"], h.params)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: address: %w", errBadRequest, err))
		return
	}
	if !address.IsForNet(h.params) {
		h.writeError(w, r, fmt.Errorf("%w: address is not for %s", errBadRequest, h.params.Name))
		return
	}
	refs, err := h.ledger.FetchOutputs(r.Context(), address)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := outputsResponse{
		Address: address.EncodeAddress(),
		Outputs: make([]refResponse, 0, len(refs)),
	}
	for _, ref := range refs {
		resp.Outputs = append(resp.Outputs, refResponse{Hash: ref.Hash.String(), Index: ref.Index})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		h.logger.Error("ledger query failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, model.ErrUnsupportedAddressType):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrServiceStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func newBlockResponse(record model.BlockRecord) blockResponse {
	txs := make([]string, 0, len(record.TxHashes))
	for _, hash := range record.TxHashes {
		txs = append(txs, hash.String())
	}
	return blockResponse{
		Depth:        record.Depth,
		Hash:         record.Hash.String(),
		PrevHash:     record.Header.PrevBlock.String(),
		MerkleRoot:   record.Header.MerkleRoot.String(),
		Version:      record.Header.Version,
		Timestamp:    record.Header.Timestamp.Unix(),
		Bits:         record.Header.Bits,
		Nonce:        record.Header.Nonce,
		Transactions: txs,
	}
}

func parseHash(s string) (chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: hash: %w", errBadRequest, err)
	}
	return *hash, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return uint32(v), nil
}
