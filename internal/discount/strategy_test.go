package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmeshcher/retail-store/internal/model"
)

func product(price string, t model.ProductType) model.Product {
	return model.Product{Price: decimal.RequireFromString(price), Type: t}
}

func billWithProducts(products ...model.Product) Bill {
	return NewBill(model.User{UserType: model.UserTypeCustomer}, products)
}

func TestPercentageStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		products []model.Product
		want     string
	}{
		{
			name:     "employee electronics",
			strategy: Employee(),
			products: []model.Product{product("100", model.ProductTypeElectronics)},
			want:     "30",
		},
		{
			name:     "employee grocery",
			strategy: Employee(),
			products: []model.Product{product("100", model.ProductTypeGrocery)},
			want:     "0",
		},
		{
			name:     "affiliate mixed",
			strategy: Affiliate(),
			products: []model.Product{
				product("200", model.ProductTypeClothing),
				product("50", model.ProductTypeGrocery),
				product("100", model.ProductTypeElectronics),
			},
			want: "30",
		},
		{
			name:     "loyal customer clothing",
			strategy: LoyalCustomer(),
			products: []model.Product{product("200", model.ProductTypeClothing)},
			want:     "10",
		},
		{
			name:     "loyal customer half grocery",
			strategy: LoyalCustomer(),
			products: []model.Product{
				product("50", model.ProductTypeElectronics),
				product("50", model.ProductTypeGrocery),
			},
			want: "2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.strategy.Calculate(billWithProducts(tt.products...))
			assert.True(t, res.Amount.Equal(decimal.RequireFromString(tt.want)),
				"amount = %s, want %s", res.Amount, tt.want)
			assert.Equal(t, 1, tt.strategy.Order())
		})
	}
}

func TestPercentageStrategy_Description(t *testing.T) {
	b := billWithProducts(product("100", model.ProductTypeElectronics))

	res := Employee().Calculate(b)

	assert.Equal(t, "EmployeeDiscountStrategy - with percentage 0.3 amount: 30.0", res.Description)
}

func TestLoyalCustomer_DescriptionKeepsScale(t *testing.T) {
	b := billWithProducts(product("200", model.ProductTypeElectronics))

	res := LoyalCustomer().Calculate(b)

	assert.Equal(t, "LoyalCustomerDiscountStrategy - with percentage 0.05 amount: 10.00", res.Description)
}

func TestFixedAmount_Boundaries(t *testing.T) {
	tests := []struct {
		net  string
		want string
	}{
		{net: "0", want: "0"},
		{net: "99", want: "0"},
		{net: "99.99", want: "0"},
		{net: "100", want: "5"},
		{net: "199", want: "5"},
		{net: "200", want: "10"},
		{net: "190.00", want: "5"},
		{net: "1050.5", want: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.net, func(t *testing.T) {
			b := billWithProducts(product(tt.net, model.ProductTypeGrocery))

			res := FixedAmount().Calculate(b)

			assert.True(t, res.Amount.Equal(decimal.RequireFromString(tt.want)),
				"amount = %s, want %s", res.Amount, tt.want)
		})
	}
}

func TestFixedAmount_UsesNetAmount(t *testing.T) {
	b := billWithProducts(product("250", model.ProductTypeElectronics))
	b.Discount = decimal.NewFromInt(75)

	res := FixedAmount().Calculate(b)

	assert.True(t, res.Amount.Equal(decimal.NewFromInt(5)), "amount = %s, want 5", res.Amount)
	assert.Equal(t, "FixedAmountDiscountStrategy -  amount: 5", res.Description)
	assert.Equal(t, 2, FixedAmount().Order())
}

func TestNewBill_Totals(t *testing.T) {
	b := billWithProducts(
		product("10.50", model.ProductTypeGrocery),
		product("0.25", model.ProductTypeClothing),
	)

	assert.True(t, b.TotalAmount.Equal(decimal.RequireFromString("10.75")))
	assert.True(t, b.Discount.IsZero())
	assert.True(t, b.NetAmount().Equal(b.TotalAmount))
	assert.True(t, DiscountableAmount(b.Products).Equal(decimal.RequireFromString("0.25")))
}
