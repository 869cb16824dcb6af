package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/security"
	"rentescrow-backend/internal/service"
)

// QueryHandler serves the read-only HTTP API used by dashboards and keepers.
// Transfer history is private to its account, as on the gRPC API.
type QueryHandler struct {
	rent         service.RentService
	ledger       service.LedgerService
	tokens       service.TokenService
	tokenManager security.TokenManager
}

func NewQueryHandler(rent service.RentService, ledger service.LedgerService, tokens service.TokenService, tm security.TokenManager) *QueryHandler {
	return &QueryHandler{rent: rent, ledger: ledger, tokens: tokens, tokenManager: tm}
}

// RegisterRoutes registers the query endpoints, the health check and, when
// metrics is non-nil, the Prometheus scrape endpoint.
func RegisterRoutes(router *mux.Router, h *QueryHandler, metrics http.Handler) {
	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	if metrics != nil {
		router.Handle("/metrics", metrics).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/items/{collection}/{tokenId:[0-9]+}", h.HandleGetItem).Methods("GET")
	api.HandleFunc("/rentals", h.HandleListRented).Methods("GET")
	api.HandleFunc("/owners/{address}/items", h.HandleListByOwner).Methods("GET")
	api.HandleFunc("/auctions/english", h.HandleListEnglishAuctions).Methods("GET")
	api.HandleFunc("/accounts/{address}", h.HandleGetAccount).Methods("GET")
	api.HandleFunc("/accounts/{address}/transfers", h.HandleListTransfers).Methods("GET")
	api.HandleFunc("/collections/{collection}/tokens/{tokenId:[0-9]+}", h.HandleGetToken).Methods("GET")
	api.HandleFunc("/events", h.HandleListEvents).Methods("GET")
}

func (h *QueryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *QueryHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := itemFromPath(w, r)
	if !ok {
		return
	}
	view, err := h.rent.DescribeItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *QueryHandler) HandleListRented(w http.ResponseWriter, r *http.Request) {
	recs, err := h.rent.ListRented(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": nonNil(recs)})
}

func (h *QueryHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	owner := domain.Address(mux.Vars(r)["address"])
	recs, err := h.rent.ListByOwner(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": nonNil(recs)})
}

func (h *QueryHandler) HandleListEnglishAuctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.rent.ListEnglishAuctions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"auctions": nonNil(auctions)})
}

func (h *QueryHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.ledger.GetAccount(r.Context(), domain.Address(mux.Vars(r)["address"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (h *QueryHandler) HandleListTransfers(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(mux.Vars(r)["address"])
	if !h.authorizeAccount(w, r, addr) {
		return
	}
	page, ok := queryInt(w, r, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := queryInt(w, r, "page_size", 20)
	if !ok {
		return
	}
	transfers, count, err := h.ledger.GetTransfers(r.Context(), addr, int32(page), int32(pageSize))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfers": nonNil(transfers), "count": count})
}

func (h *QueryHandler) HandleGetToken(w http.ResponseWriter, r *http.Request) {
	item, ok := itemFromPath(w, r)
	if !ok {
		return
	}
	owner, err := h.tokens.OwnerOf(r.Context(), item.Collection, item.TokenID)
	if err != nil {
		writeError(w, err)
		return
	}
	uri, err := h.tokens.TokenURI(r.Context(), item.Collection, item.TokenID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"collection": item.Collection,
		"token_id":   item.TokenID,
		"owner":      owner,
		"token_uri":  uri,
	})
}

func (h *QueryHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	after, ok := queryInt(w, r, "after", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 100)
	if !ok {
		return
	}
	events, err := h.rent.ListEvents(r.Context(), after, int32(limit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": nonNil(events)})
}

// authorizeAccount requires a bearer access token issued to addr.
func (h *QueryHandler) authorizeAccount(w http.ResponseWriter, r *http.Request, addr domain.Address) bool {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"reason": "Unauthenticated", "error": "bearer token required"})
		return false
	}
	claims, err := h.tokenManager.ValidateToken(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"reason": "Unauthenticated", "error": "invalid token"})
		return false
	}
	if domain.Address(claims.Address) != addr {
		writeJSON(w, http.StatusForbidden, map[string]string{"reason": "PermissionDenied", "error": "transfers are visible to their account only"})
		return false
	}
	return true
}

func itemFromPath(w http.ResponseWriter, r *http.Request) (domain.ItemKey, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["tokenId"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid token id", http.StatusBadRequest)
		return domain.ItemKey{}, false
	}
	return domain.ItemKey{Collection: domain.Address(vars["collection"]), TokenID: id}, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int64) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		http.Error(w, "Invalid "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	reason := domain.ErrorCode(err)
	switch reason {
	case "NotFound", "TokenNotFound", "CollectionNotFound":
		code = http.StatusNotFound
	case "InvalidArgument":
		code = http.StatusBadRequest
	case "Internal":
		logger.Error("query failed", "error", err)
		writeJSON(w, code, map[string]string{"reason": reason})
		return
	default:
		code = http.StatusConflict
	}
	writeJSON(w, code, map[string]string{"reason": reason, "error": err.Error()})
}
