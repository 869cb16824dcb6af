package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"rentescrow-backend/internal/domain"
)

func TestObserveOperation(t *testing.T) {
	m := New()

	m.ObserveOperation("StartRent", nil, time.Millisecond)
	m.ObserveOperation("StartRent", fmt.Errorf("wrapped: %w", domain.ErrWrongPaymentAmount), time.Millisecond)
	m.ObserveOperation("StartRent", domain.ErrWrongPaymentAmount, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("StartRent", "OK")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("StartRent", "WrongPaymentAmount")))
}

func TestObservePayout(t *testing.T) {
	m := New()

	m.ObservePayout(domain.TransferTypeKeeperFee, 40)
	m.ObservePayout(domain.TransferTypeKeeperFee, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.payouts.WithLabelValues("KEEPER_FEE")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.payoutSum.WithLabelValues("KEEPER_FEE")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveKeeperRun("settle_expired_rentals", 3, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `rent_escrow_keeper_runs_total{job="settle_expired_rentals",success="true"} 1`))
	assert.True(t, strings.Contains(body, `rent_escrow_keeper_items_settled_total{job="settle_expired_rentals"} 3`))
}
