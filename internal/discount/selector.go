package discount

import (
	"errors"
	"sort"
	"time"

	"github.com/mmeshcher/retail-store/internal/model"
)

// ErrSameOrder возвращается, если среди выбранных стратегий две имеют одинаковый порядок.
// Это ошибка конфигурации стратегий, а не входных данных.
var ErrSameOrder = errors.New("multiple discount strategies have the same order")

// loyaltyYears задаёт минимальный срок регистрации покупателя для скидки постоянного клиента.
const loyaltyYears = 2

// Candidate связывает стратегию с условием её применимости к счёту.
type Candidate struct {
	Strategy Strategy
	Eligible func(b Bill, now time.Time) bool
}

// Selector выбирает стратегии, применимые к счёту, и упорядочивает их.
type Selector struct {
	candidates []Candidate
	now        func() time.Time
}

// NewSelector создаёт селектор со стандартным набором правил магазина.
func NewSelector() *Selector {
	return NewSelectorWithCandidates(DefaultCandidates(), time.Now)
}

// NewSelectorWithCandidates создаёт селектор с заданными правилами и источником времени.
func NewSelectorWithCandidates(candidates []Candidate, now func() time.Time) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{
		candidates: candidates,
		now:        now,
	}
}

// DefaultCandidates возвращает стандартные правила. Процентные скидки взаимоисключающие:
// условие каждой из них определяется только типом пользователя.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Strategy: Employee(), Eligible: hasUserType(model.UserTypeEmployee)},
		{Strategy: Affiliate(), Eligible: hasUserType(model.UserTypeAffiliate)},
		{Strategy: LoyalCustomer(), Eligible: isLoyalCustomer},
		{Strategy: FixedAmount(), Eligible: reachesFixedThreshold},
	}
}

// Select возвращает применимые стратегии в порядке возрастания Order.
// Проверки выполняются по состоянию счёта до применения каких-либо скидок.
func (s *Selector) Select(b Bill) ([]Strategy, error) {
	now := s.now()

	selected := make([]Strategy, 0, len(s.candidates))
	orders := make(map[int]struct{}, len(s.candidates))

	for _, c := range s.candidates {
		if !c.Eligible(b, now) {
			continue
		}
		if _, exists := orders[c.Strategy.Order()]; exists {
			return nil, ErrSameOrder
		}
		orders[c.Strategy.Order()] = struct{}{}
		selected = append(selected, c.Strategy)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Order() < selected[j].Order()
	})

	return selected, nil
}

func hasUserType(t model.UserType) func(Bill, time.Time) bool {
	return func(b Bill, _ time.Time) bool {
		return b.User.UserType == t
	}
}

func isLoyalCustomer(b Bill, now time.Time) bool {
	if b.User.UserType != model.UserTypeCustomer {
		return false
	}
	// Дата регистрации хранится без времени, поэтому сравнение идёт по календарным дням в UTC.
	u := now.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return b.User.RegistrationDate.Before(today.AddDate(-loyaltyYears, 0, 0))
}

func reachesFixedThreshold(b Bill, _ time.Time) bool {
	return b.NetAmount().GreaterThanOrEqual(hundred)
}
