package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/security"
	"rentescrow-backend/internal/service"
)

const secret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	rent   *MockRentService
	ledger *MockLedgerService
	tokens *MockTokenService
	tm     security.TokenManager
	router *mux.Router
}

func newFixture() *fixture {
	f := &fixture{
		rent:   new(MockRentService),
		ledger: new(MockLedgerService),
		tokens: new(MockTokenService),
		tm:     security.NewTokenManager(secret, time.Hour),
		router: mux.NewRouter(),
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "# metrics")
	})
	RegisterRoutes(f.router, NewQueryHandler(f.rent, f.ledger, f.tokens, f.tm), metrics)
	return f
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.getAs(path, "")
}

// getAs sends the request with an access token for address, if any.
func (f *fixture) getAs(path, address string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if address != "" {
		token, err := f.tm.GenerateAccessToken(address, nil)
		if err != nil {
			panic(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestQueryHandler_Health(t *testing.T) {
	f := newFixture()

	rec := f.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestQueryHandler_GetItem(t *testing.T) {
	f := newFixture()
	item := domain.ItemKey{Collection: "punks", TokenID: 7}

	t.Run("Success", func(t *testing.T) {
		view := &service.ItemView{
			Record:   &domain.RentRecord{Item: item, Owner: "alice", Rentee: "bob", StartTime: 10, WeeklyFee: 5, PaidFee: 5},
			IsRented: true,
			EndDate:  10 + domain.Week,
		}
		f.rent.On("DescribeItem", mock.Anything, item).Return(view, nil).Once()

		rec := f.get("/api/v1/items/punks/7")
		require.Equal(t, http.StatusOK, rec.Code)

		var got service.ItemView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.IsRented)
		assert.Equal(t, domain.Address("bob"), got.Record.Rentee)
		assert.Equal(t, 10+domain.Week, got.EndDate)
	})

	t.Run("BadTokenID", func(t *testing.T) {
		rec := f.get("/api/v1/items/punks/abc")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InternalErrorHidesDetail", func(t *testing.T) {
		other := domain.ItemKey{Collection: "punks", TokenID: 8}
		f.rent.On("DescribeItem", mock.Anything, other).Return(nil, fmt.Errorf("connection reset")).Once()

		rec := f.get("/api/v1/items/punks/8")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"reason":"Internal"}`, rec.Body.String())
	})
}

func TestQueryHandler_ListRented(t *testing.T) {
	f := newFixture()
	f.rent.On("ListRented", mock.Anything).Return([]domain.RentRecord(nil), nil)

	rec := f.get("/api/v1/rentals")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"records":[]}`, rec.Body.String())
}

func TestQueryHandler_Transfers(t *testing.T) {
	f := newFixture()

	t.Run("Paged", func(t *testing.T) {
		transfers := []domain.Transfer{{ID: "t1", From: "bob", To: "rent-engine", Amount: 5, Type: domain.TransferTypePayment}}
		f.ledger.On("GetTransfers", mock.Anything, domain.Address("bob"), int32(2), int32(5)).Return(transfers, int32(6), nil)

		rec := f.getAs("/api/v1/accounts/bob/transfers?page=2&page_size=5", "bob")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Transfers []domain.Transfer `json:"transfers"`
			Count     int32             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int32(6), body.Count)
		assert.Len(t, body.Transfers, 1)
	})

	t.Run("BadPage", func(t *testing.T) {
		rec := f.getAs("/api/v1/accounts/bob/transfers?page=x", "bob")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Anonymous", func(t *testing.T) {
		rec := f.get("/api/v1/accounts/bob/transfers")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/bob/transfers", nil)
		req.Header.Set("Authorization", "Bearer junk")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("OtherAccount", func(t *testing.T) {
		rec := f.getAs("/api/v1/accounts/bob/transfers", "carol")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.ledger.AssertNotCalled(t, "GetTransfers", mock.Anything, domain.Address("bob"), int32(1), int32(20))
	})

	t.Run("OversizedPage", func(t *testing.T) {
		f.ledger.On("GetTransfers", mock.Anything, domain.Address("bob"), int32(1), int32(1_000_000)).
			Return([]domain.Transfer(nil), int32(0), fmt.Errorf("page size: %w", domain.ErrInvalidArgument)).Once()

		rec := f.getAs("/api/v1/accounts/bob/transfers?page_size=1000000", "bob")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQueryHandler_GetToken(t *testing.T) {
	f := newFixture()

	t.Run("Success", func(t *testing.T) {
		f.tokens.On("OwnerOf", mock.Anything, domain.Address("punks"), int64(3)).Return(domain.Address("alice"), nil).Once()
		f.tokens.On("TokenURI", mock.Anything, domain.Address("punks"), int64(3)).Return("ipfs://punks/3", nil).Once()

		rec := f.get("/api/v1/collections/punks/tokens/3")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"collection":"punks","token_id":3,"owner":"alice","token_uri":"ipfs://punks/3"}`, rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		f.tokens.On("OwnerOf", mock.Anything, domain.Address("punks"), int64(4)).
			Return(domain.ZeroAddress, fmt.Errorf("token punks/4: %w", domain.ErrTokenNotFound)).Once()

		rec := f.get("/api/v1/collections/punks/tokens/4")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "TokenNotFound", body["reason"])
	})
}

func TestQueryHandler_Events(t *testing.T) {
	f := newFixture()
	events := []domain.Event{{Seq: 4, Type: domain.EventRentStarted}}
	f.rent.On("ListEvents", mock.Anything, int64(3), int32(100)).Return(events, nil)

	rec := f.get("/api/v1/events?after=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Events []domain.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, int64(4), body.Events[0].Seq)
}
