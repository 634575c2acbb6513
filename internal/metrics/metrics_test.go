package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/retail-store/internal/model"
)

func TestObserveBill(t *testing.T) {
	m := New()

	m.ObserveBill(&model.Bill{
		UserType: model.UserTypeAffiliate,
		Discount: decimal.RequireFromString("40"),
		AppliedDiscounts: []string{
			"AffiliateDiscountStrategy - with percentage 0.1 amount: 30.0",
			"FixedAmountDiscountStrategy -  amount: 10",
		},
	})
	m.ObserveBill(&model.Bill{
		UserType: model.UserTypeCustomer,
		Discount: decimal.Zero,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.billsTotal.WithLabelValues("AFFILIATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.billsTotal.WithLabelValues("CUSTOMER")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.discountsTotal.WithLabelValues("AffiliateDiscountStrategy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.discountsTotal.WithLabelValues("FixedAmountDiscountStrategy")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.discountedAmount.WithLabelValues("AFFILIATE")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.discountedAmount.WithLabelValues("CUSTOMER")))
}

func TestObserveBill_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveBill(&model.Bill{})

	New().ObserveBill(nil)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveBill(&model.Bill{UserType: model.UserTypeEmployee, Discount: decimal.NewFromInt(30)})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `retailstore_bills_generated_total{user_type="EMPLOYEE"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestHandler_LeavesCompressionToRouter(t *testing.T) {
	m := New()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "# HELP")
}

func TestStrategyName(t *testing.T) {
	assert.Equal(t, "EmployeeDiscountStrategy", strategyName("EmployeeDiscountStrategy - with percentage 0.3 amount: 30.0"))
	assert.Equal(t, "FixedAmountDiscountStrategy", strategyName("FixedAmountDiscountStrategy -  amount: 5"))
	assert.Equal(t, "custom", strategyName("custom"))
}
