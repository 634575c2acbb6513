package discount

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/retail-store/internal/model"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testSelector() *Selector {
	return NewSelectorWithCandidates(DefaultCandidates(), func() time.Time { return fixedNow })
}

func userBill(userType model.UserType, registered time.Time, products ...model.Product) Bill {
	return NewBill(model.User{UserType: userType, RegistrationDate: registered}, products)
}

func names(strategies []Strategy) []string {
	res := make([]string, 0, len(strategies))
	for _, s := range strategies {
		res = append(res, s.Name())
	}
	return res
}

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		name       string
		userType   model.UserType
		registered time.Time
		total      string
		want       []string
	}{
		{
			name:       "employee with fixed",
			userType:   model.UserTypeEmployee,
			registered: fixedNow,
			total:      "200",
			want:       []string{"EmployeeDiscountStrategy", "FixedAmountDiscountStrategy"},
		},
		{
			name:       "affiliate with fixed",
			userType:   model.UserTypeAffiliate,
			registered: fixedNow,
			total:      "200",
			want:       []string{"AffiliateDiscountStrategy", "FixedAmountDiscountStrategy"},
		},
		{
			name:       "loyal customer with fixed",
			userType:   model.UserTypeCustomer,
			registered: fixedNow.AddDate(-3, 0, 0),
			total:      "200",
			want:       []string{"LoyalCustomerDiscountStrategy", "FixedAmountDiscountStrategy"},
		},
		{
			name:       "customer two years and a day",
			userType:   model.UserTypeCustomer,
			registered: fixedNow.AddDate(-2, 0, -1),
			total:      "50",
			want:       []string{"LoyalCustomerDiscountStrategy"},
		},
		{
			name:       "customer exactly two years",
			userType:   model.UserTypeCustomer,
			registered: fixedNow.AddDate(-2, 0, 0),
			total:      "50",
			want:       []string{},
		},
		{
			name:       "date-only registration on anniversary",
			userType:   model.UserTypeCustomer,
			registered: time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC),
			total:      "50",
			want:       []string{},
		},
		{
			name:       "date-only registration day before anniversary",
			userType:   model.UserTypeCustomer,
			registered: time.Date(2022, time.March, 14, 0, 0, 0, 0, time.UTC),
			total:      "50",
			want:       []string{"LoyalCustomerDiscountStrategy"},
		},
		{
			name:       "new customer with fixed",
			userType:   model.UserTypeCustomer,
			registered: fixedNow.AddDate(-1, 0, 0),
			total:      "200",
			want:       []string{"FixedAmountDiscountStrategy"},
		},
		{
			name:       "new customer small bill",
			userType:   model.UserTypeCustomer,
			registered: fixedNow.AddDate(-1, 0, 0),
			total:      "50",
			want:       []string{},
		},
		{
			name:       "employee exactly threshold",
			userType:   model.UserTypeEmployee,
			registered: fixedNow,
			total:      "100",
			want:       []string{"EmployeeDiscountStrategy", "FixedAmountDiscountStrategy"},
		},
		{
			name:       "employee below threshold",
			userType:   model.UserTypeEmployee,
			registered: fixedNow,
			total:      "99.99",
			want:       []string{"EmployeeDiscountStrategy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := userBill(tt.userType, tt.registered, product(tt.total, model.ProductTypeElectronics))

			got, err := testSelector().Select(b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSelector_Idempotent(t *testing.T) {
	s := testSelector()
	b := userBill(model.UserTypeAffiliate, fixedNow, product("300", model.ProductTypeClothing))

	first, err := s.Select(b)
	require.NoError(t, err)
	second, err := s.Select(b)
	require.NoError(t, err)

	assert.Equal(t, names(first), names(second))
}

type stubStrategy struct {
	name  string
	order int
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Order() int { return s.order }

func (s stubStrategy) Calculate(Bill) Result { return Result{Amount: decimal.Zero} }

func (s stubStrategy) Describe(amount decimal.Decimal) string {
	return s.name + " " + model.PlainAmount(amount)
}

func always(Bill, time.Time) bool { return true }

func TestSelector_SameOrderFails(t *testing.T) {
	s := NewSelectorWithCandidates([]Candidate{
		{Strategy: Employee(), Eligible: always},
		{Strategy: stubStrategy{name: "Other", order: 1}, Eligible: always},
	}, func() time.Time { return fixedNow })

	got, err := s.Select(userBill(model.UserTypeEmployee, fixedNow, product("500", model.ProductTypeClothing)))

	require.ErrorIs(t, err, ErrSameOrder)
	assert.Nil(t, got)
}

func TestSelector_SortsByOrder(t *testing.T) {
	s := NewSelectorWithCandidates([]Candidate{
		{Strategy: stubStrategy{name: "Third", order: 3}, Eligible: always},
		{Strategy: FixedAmount(), Eligible: always},
		{Strategy: stubStrategy{name: "First", order: 0}, Eligible: always},
	}, func() time.Time { return fixedNow })

	got, err := s.Select(userBill(model.UserTypeCustomer, fixedNow))

	require.NoError(t, err)
	assert.Equal(t, []string{"First", "FixedAmountDiscountStrategy", "Third"}, names(got))
}
