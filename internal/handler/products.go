package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/model"
)

type productRequest struct {
	Name  string            `json:"name" validate:"required"`
	Price *decimal.Decimal  `json:"price" validate:"required,gte=0"`
	Type  model.ProductType `json:"type" validate:"required,producttype"`
}

func (req productRequest) toModel(id string) model.Product {
	return model.Product{
		ID:    id,
		Name:  req.Name,
		Price: *req.Price,
		Type:  req.Type,
	}
}

type productListResponse struct {
	Products []model.Product `json:"products"`
}

// CreateProduct добавляет товар в каталог.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, err, "decode product request")
		return
	}

	p, err := h.service.CreateProduct(r.Context(), req.toModel(""))
	if err != nil {
		h.writeError(w, err, "create product error")
		return
	}

	h.writeJSON(w, http.StatusCreated, p)
}

// GetProducts возвращает весь каталог.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetProducts(r.Context())
	if err != nil {
		h.writeError(w, err, "get products error")
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	h.writeJSON(w, http.StatusOK, productListResponse{Products: products})
}

// GetProduct возвращает товар по идентификатору.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "get product error", zap.String("product_id", id))
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// UpdateProduct заменяет данные товара.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, err, "decode product request")
		return
	}

	p, err := h.service.UpdateProduct(r.Context(), req.toModel(id))
	if err != nil {
		h.writeError(w, err, "update product error", zap.String("product_id", id))
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}
