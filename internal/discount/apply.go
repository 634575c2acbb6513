package discount

// Apply последовательно применяет стратегии к счёту и возвращает новый счёт.
// Нулевые скидки пропускаются. Скидка не может превысить оставшуюся сумму к оплате,
// урезанная скидка описывается фактически применённой суммой.
func Apply(b Bill, strategies []Strategy) Bill {
	applied := make([]string, len(b.AppliedDiscounts), len(b.AppliedDiscounts)+len(strategies))
	copy(applied, b.AppliedDiscounts)
	b.AppliedDiscounts = applied

	for _, s := range strategies {
		res := s.Calculate(b)
		if !res.Amount.IsPositive() {
			continue
		}
		amount, description := res.Amount, res.Description
		if net := b.NetAmount(); amount.GreaterThan(net) {
			amount, description = net, s.Describe(net)
		}
		b.Discount = b.Discount.Add(amount)
		b.AppliedDiscounts = append(b.AppliedDiscounts, description)
	}

	return b
}

// Calculator объединяет выбор стратегий и их применение.
type Calculator struct {
	selector *Selector
}

// NewCalculator создаёт калькулятор скидок поверх селектора.
func NewCalculator(selector *Selector) *Calculator {
	if selector == nil {
		selector = NewSelector()
	}
	return &Calculator{selector: selector}
}

// Calculate выбирает применимые стратегии и применяет их к счёту.
func (c *Calculator) Calculate(b Bill) (Bill, error) {
	strategies, err := c.selector.Select(b)
	if err != nil {
		return b, err
	}
	return Apply(b, strategies), nil
}
