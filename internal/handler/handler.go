// Package handler содержит HTTP-обработчики API сервиса розничного магазина.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/middleware"
	"github.com/mmeshcher/retail-store/internal/model"
	"github.com/mmeshcher/retail-store/internal/repository"
	"github.com/mmeshcher/retail-store/internal/service"
	"github.com/mmeshcher/retail-store/internal/validation"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	RegisterUser(ctx context.Context, userName, password string, userType model.UserType) error
	Authenticate(ctx context.Context, userName, password string) (string, error)
	GetUsers(ctx context.Context) ([]model.User, error)

	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error)

	GenerateBill(ctx context.Context, userName string, productIDs []string) (*model.Bill, error)
	GetBills(ctx context.Context) ([]model.Bill, error)
	GetBill(ctx context.Context, id string) (*model.Bill, error)

	Ping(ctx context.Context) error
}

// Handler реализует HTTP-обработчики API сервиса магазина.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
	validator      *validation.Validator
	metrics        http.Handler
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
// metrics может быть nil, тогда маршрут /metrics не регистрируется.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware, metrics http.Handler) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
		validator:      validation.New(),
		metrics:        metrics,
	}
}

// decodeAndValidate читает JSON-тело запроса и проверяет его по тегам validate.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(validation.ErrInvalid, err)
	}
	return h.validator.Struct(dst)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

// writeError отображает ошибку сервиса в HTTP-статус. Неожиданные ошибки логируются.
func (h *Handler) writeError(w http.ResponseWriter, err error, msg string, fields ...zap.Field) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrBillNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrUserExists),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, validation.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
	}

	http.Error(w, http.StatusText(status), status)
}
