package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/model"
	"github.com/mmeshcher/retail-store/internal/repository"
)

// CreateProduct добавляет товар в каталог.
func (s *Service) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cacheProduct(ctx, created)
	return created, nil
}

// GetProducts возвращает весь каталог.
func (s *Service) GetProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.GetProducts(ctx)
}

// GetProduct возвращает товар по идентификатору, сначала проверяя кэш.
func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("product cache get failed", zap.String("product_id", id), zap.Error(err))
		}
		if ok {
			return p, nil
		}
	}

	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, repository.ErrProductNotFound
		}
		return nil, err
	}

	s.cacheProduct(ctx, p)
	return p, nil
}

// UpdateProduct обновляет товар и сбрасывает его запись в кэше.
func (s *Service) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	updated, err := s.repo.UpdateProduct(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, repository.ErrProductNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, updated.ID); err != nil {
			s.logger.Warn("product cache invalidate failed", zap.String("product_id", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *Service) cacheProduct(ctx context.Context, p *model.Product) {
	if s.cache == nil || p == nil {
		return
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("product cache set failed", zap.String("product_id", p.ID), zap.Error(err))
	}
}
