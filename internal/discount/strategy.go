// Package discount реализует расчёт скидок для формируемого счёта.
package discount

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/retail-store/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)
	five    = decimal.NewFromInt(5)
)

// Bill описывает счёт в процессе формирования.
type Bill struct {
	User             model.User
	Products         []model.Product
	TotalAmount      decimal.Decimal
	Discount         decimal.Decimal
	AppliedDiscounts []string
}

// NewBill создаёт счёт с нулевой скидкой и общей суммой по всем товарам.
func NewBill(user model.User, products []model.Product) Bill {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return Bill{
		User:        user,
		Products:    products,
		TotalAmount: total,
		Discount:    decimal.Zero,
	}
}

// NetAmount возвращает сумму к оплате с учётом накопленной скидки.
func (b Bill) NetAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.Discount)
}

// Result содержит сумму скидки и её описание.
type Result struct {
	Amount      decimal.Decimal
	Description string
}

// Strategy описывает одно правило расчёта скидки.
// Order задаёт порядок применения: стратегии с меньшим значением применяются раньше.
// Describe формирует описание для указанной суммы скидки.
type Strategy interface {
	Name() string
	Order() int
	Calculate(b Bill) Result
	Describe(amount decimal.Decimal) string
}

const (
	percentageOrder = 1
	fixedOrder      = 2
)

type percentageStrategy struct {
	name       string
	percentage decimal.Decimal
}

// Employee возвращает скидку 30% для сотрудников.
func Employee() Strategy {
	return percentageStrategy{name: "EmployeeDiscountStrategy", percentage: decimal.RequireFromString("0.3")}
}

// Affiliate возвращает скидку 10% для партнёров.
func Affiliate() Strategy {
	return percentageStrategy{name: "AffiliateDiscountStrategy", percentage: decimal.RequireFromString("0.1")}
}

// LoyalCustomer возвращает скидку 5% для постоянных покупателей.
func LoyalCustomer() Strategy {
	return percentageStrategy{name: "LoyalCustomerDiscountStrategy", percentage: decimal.RequireFromString("0.05")}
}

func (s percentageStrategy) Name() string { return s.name }

func (s percentageStrategy) Order() int { return percentageOrder }

// Calculate применяет процент к сумме товаров, кроме продуктовых.
func (s percentageStrategy) Calculate(b Bill) Result {
	amount := DiscountableAmount(b.Products).Mul(s.percentage)
	return Result{Amount: amount, Description: s.Describe(amount)}
}

func (s percentageStrategy) Describe(amount decimal.Decimal) string {
	return fmt.Sprintf("%s - with percentage %s amount: %s", s.name, model.PlainAmount(s.percentage), model.PlainAmount(amount))
}

type fixedAmountStrategy struct{}

// FixedAmount возвращает скидку 5 за каждые полные 100 суммы к оплате.
func FixedAmount() Strategy {
	return fixedAmountStrategy{}
}

func (fixedAmountStrategy) Name() string { return "FixedAmountDiscountStrategy" }

func (fixedAmountStrategy) Order() int { return fixedOrder }

// Calculate считает скидку от текущей суммы к оплате независимо от категорий товаров.
func (s fixedAmountStrategy) Calculate(b Bill) Result {
	net := b.NetAmount()
	amount := decimal.Zero
	if net.IsPositive() {
		q, _ := net.QuoRem(hundred, 0)
		amount = q.Mul(five)
	}
	return Result{Amount: amount, Description: s.Describe(amount)}
}

// Describe сохраняет двойной пробел перед "amount": на формат описаний опираются клиенты.
func (s fixedAmountStrategy) Describe(amount decimal.Decimal) string {
	return fmt.Sprintf("%s -  amount: %s", s.Name(), model.PlainAmount(amount))
}

// DiscountableAmount возвращает сумму цен товаров, на которые действуют процентные скидки.
func DiscountableAmount(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if p.Type == model.ProductTypeGrocery {
			continue
		}
		total = total.Add(p.Price)
	}
	return total
}
