package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/middleware"
	"github.com/mmeshcher/retail-store/internal/model"
)

type billRequest struct {
	ProductIDs []string `json:"productIdLists" validate:"required,min=1,dive,required"`
}

type billListResponse struct {
	Bills []model.Bill `json:"bills"`
}

// CreateBill формирует счёт текущего пользователя по списку товаров.
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	userName, ok := middleware.GetUserNameFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req billRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, err, "decode bill request")
		return
	}

	bill, err := h.service.GenerateBill(r.Context(), userName, req.ProductIDs)
	if err != nil {
		h.writeError(w, err, "generate bill error", zap.String("user", userName), zap.Strings("products", req.ProductIDs))
		return
	}

	h.writeJSON(w, http.StatusCreated, bill)
}

// GetBills возвращает все счета.
func (h *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.GetBills(r.Context())
	if err != nil {
		h.writeError(w, err, "get bills error")
		return
	}
	if bills == nil {
		bills = []model.Bill{}
	}

	h.writeJSON(w, http.StatusOK, billListResponse{Bills: bills})
}

// GetBill возвращает счёт по идентификатору.
func (h *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	bill, err := h.service.GetBill(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "get bill error", zap.String("bill_id", id))
		return
	}

	h.writeJSON(w, http.StatusOK, bill)
}
