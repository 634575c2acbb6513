package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/discount"
	"github.com/mmeshcher/retail-store/internal/model"
	"github.com/mmeshcher/retail-store/internal/repository"
)

// GenerateBill формирует счёт пользователя по списку товаров, рассчитывает скидки и сохраняет результат.
// Товары разрешаются в порядке списка, повторяющиеся идентификаторы учитываются каждый раз.
// При любой ошибке до сохранения счёт не создаётся.
func (s *Service) GenerateBill(ctx context.Context, userName string, productIDs []string) (*model.Bill, error) {
	user, err := s.repo.GetUserByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	products := make([]model.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, err := s.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	calculated, err := s.calculator.Calculate(discount.NewBill(*user, products))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved, err := s.repo.CreateBill(ctx, model.Bill{
		UserID:           user.ID,
		UserType:         user.UserType,
		Products:         calculated.Products,
		TotalAmount:      calculated.TotalAmount,
		Discount:         calculated.Discount,
		NetAmount:        calculated.NetAmount(),
		AppliedDiscounts: calculated.AppliedDiscounts,
	})
	if err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer.ObserveBill(saved)
	}
	s.logger.Debug("bill generated",
		zap.String("bill_id", saved.ID),
		zap.String("user", userName),
		zap.Int("products", len(saved.Products)),
		zap.String("total", model.PlainAmount(saved.TotalAmount)),
		zap.String("discount", model.PlainAmount(saved.Discount)),
		zap.String("net", model.PlainAmount(saved.NetAmount)),
	)

	return saved, nil
}

// GetBills возвращает все сохранённые счета.
func (s *Service) GetBills(ctx context.Context) ([]model.Bill, error) {
	return s.repo.GetBills(ctx)
}

// GetBill возвращает счёт по идентификатору.
func (s *Service) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	b, err := s.repo.GetBillByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			return nil, repository.ErrBillNotFound
		}
		return nil, err
	}
	return b, nil
}
