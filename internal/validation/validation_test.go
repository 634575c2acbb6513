package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/retail-store/internal/model"
)

type testUser struct {
	UserName string         `json:"userName" validate:"required"`
	UserType model.UserType `json:"userType" validate:"required,usertype"`
}

type testProduct struct {
	Name  string            `json:"name" validate:"required"`
	Price *decimal.Decimal  `json:"price" validate:"required,gte=0"`
	Type  model.ProductType `json:"type" validate:"required,producttype"`
}

type testBill struct {
	ProductIDs []string `json:"productIdLists" validate:"required,min=1,dive,required"`
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		in        any
		wantErr   bool
		wantField string
	}{
		{name: "valid user", in: testUser{UserName: "alice", UserType: model.UserTypeCustomer}},
		{name: "missing user name", in: testUser{UserType: model.UserTypeCustomer}, wantErr: true, wantField: "userName"},
		{name: "unknown user type", in: testUser{UserName: "alice", UserType: "MANAGER"}, wantErr: true, wantField: "userType"},
		{name: "valid product", in: testProduct{Name: "Product 1", Price: price("10.0"), Type: model.ProductTypeGrocery}},
		{name: "free product", in: testProduct{Name: "Sample", Price: price("0"), Type: model.ProductTypeClothing}},
		{name: "missing price", in: testProduct{Name: "Product 1", Type: model.ProductTypeGrocery}, wantErr: true, wantField: "price"},
		{name: "negative price", in: testProduct{Name: "Product 1", Price: price("-1"), Type: model.ProductTypeGrocery}, wantErr: true, wantField: "price"},
		{name: "unknown product type", in: testProduct{Name: "Product 1", Price: price("1"), Type: "FOOD"}, wantErr: true, wantField: "type"},
		{name: "valid bill", in: testBill{ProductIDs: []string{"a", "a", "b"}}},
		{name: "empty bill", in: testBill{ProductIDs: []string{}}, wantErr: true, wantField: "productIdLists"},
		{name: "nil bill", in: testBill{}, wantErr: true, wantField: "productIdLists"},
		{name: "blank product id", in: testBill{ProductIDs: []string{"a", ""}}, wantErr: true, wantField: "productIdLists[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}
