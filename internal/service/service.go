// Package service реализует бизнес-логику сервиса розничного магазина.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/discount"
	"github.com/mmeshcher/retail-store/internal/model"
)

// ErrInvalidCredentials возвращается, если пароль пользователя не совпал.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrPasswordTooLong возвращается для паролей длиннее, чем принимает bcrypt.
var ErrPasswordTooLong = errors.New("password too long")

// UserRepository описывает хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, u model.User) (*model.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
}

// ProductRepository описывает хранилище каталога товаров.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	GetProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error)
}

// BillRepository описывает хранилище счетов. Счета только добавляются.
type BillRepository interface {
	CreateBill(ctx context.Context, b model.Bill) (*model.Bill, error)
	GetBills(ctx context.Context) ([]model.Bill, error)
	GetBillByID(ctx context.Context, id string) (*model.Bill, error)
}

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	UserRepository
	ProductRepository
	BillRepository
	Ping(ctx context.Context) error
	Close() error
}

// TokenIssuer выпускает токены доступа для аутентифицированных пользователей.
type TokenIssuer interface {
	IssueToken(userName string) (string, error)
}

// ProductCache кэширует товары, запрошенные по идентификатору.
type ProductCache interface {
	Get(ctx context.Context, id string) (*model.Product, bool, error)
	Set(ctx context.Context, p *model.Product) error
	Invalidate(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// BillObserver получает уведомление о каждом сохранённом счёте.
type BillObserver interface {
	ObserveBill(b *model.Bill)
}

// Service содержит бизнес-логику сервиса магазина.
type Service struct {
	repo       Repository
	tokens     TokenIssuer
	calculator *discount.Calculator
	cache      ProductCache
	observer   BillObserver
	logger     *zap.Logger
	now        func() time.Time
}

// Option настраивает необязательные зависимости сервиса.
type Option func(*Service)

// WithProductCache включает кэширование товаров.
func WithProductCache(c ProductCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithBillObserver подключает наблюдателя за сохранёнными счетами.
func WithBillObserver(o BillObserver) Option {
	return func(s *Service) { s.observer = o }
}

// WithCalculator заменяет калькулятор скидок.
func WithCalculator(c *discount.Calculator) Option {
	return func(s *Service) { s.calculator = c }
}

// WithLogger задаёт логгер сервиса.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock задаёт источник текущего времени для даты регистрации.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService создаёт новый сервис с указанным репозиторием и выпускающим токены компонентом.
func NewService(repo Repository, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		tokens: tokens,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.calculator == nil {
		s.calculator = discount.NewCalculator(discount.NewSelector())
	}
	return s
}

// Ping проверяет готовность хранилища и кэша.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	return nil
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
