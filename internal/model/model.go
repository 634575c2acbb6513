// Package model содержит доменные сущности сервиса розничного магазина.
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UserType описывает категорию пользователя, от которой зависят скидки.
type UserType string

const (
	UserTypeEmployee  UserType = "EMPLOYEE"
	UserTypeAffiliate UserType = "AFFILIATE"
	UserTypeCustomer  UserType = "CUSTOMER"
)

// Valid сообщает, является ли значение одним из известных типов пользователя.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeEmployee, UserTypeAffiliate, UserTypeCustomer:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя магазина.
type User struct {
	ID               string    `json:"id"`
	UserName         string    `json:"userName"`
	UserType         UserType  `json:"userType"`
	RegistrationDate time.Time `json:"registrationDate"`
	PasswordHash     []byte    `json:"-"`
}

// ProductType описывает категорию товара.
type ProductType string

const (
	ProductTypeGrocery     ProductType = "GROCERY"
	ProductTypeElectronics ProductType = "ELECTRONICS"
	ProductTypeClothing    ProductType = "CLOTHING"
)

// Valid сообщает, является ли значение одной из известных категорий товара.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeGrocery, ProductTypeElectronics, ProductTypeClothing:
		return true
	}
	return false
}

// Product описывает товар каталога. Цена хранится без потери точности.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Type  ProductType     `json:"type"`
}

// MarshalJSON сериализует цену строкой с сохранением масштаба.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price string `json:"price"`
	}{
		alias: alias(p),
		Price: PlainAmount(p.Price),
	})
}

// PlainAmount форматирует число без экспоненты, сохраняя его масштаб (30.0, а не 30).
func PlainAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Bill описывает сохранённый счёт. NetAmount всегда равен TotalAmount - Discount.
type Bill struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	UserType         UserType        `json:"userType"`
	Products         []Product       `json:"products"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Discount         decimal.Decimal `json:"discount"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	AppliedDiscounts []string        `json:"appliedDiscounts"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// MarshalJSON сериализует суммы счёта в том же формате, что и цены товаров.
func (b Bill) MarshalJSON() ([]byte, error) {
	type alias Bill
	return json.Marshal(struct {
		alias
		TotalAmount string `json:"totalAmount"`
		Discount    string `json:"discount"`
		NetAmount   string `json:"netAmount"`
	}{
		alias:       alias(b),
		TotalAmount: PlainAmount(b.TotalAmount),
		Discount:    PlainAmount(b.Discount),
		NetAmount:   PlainAmount(b.NetAmount),
	})
}
