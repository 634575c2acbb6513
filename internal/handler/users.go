package handler

import (
	"net/http"
	"time"

	"github.com/mmeshcher/retail-store/internal/model"
)

type userResponse struct {
	ID               string         `json:"id"`
	UserName         string         `json:"userName"`
	UserType         model.UserType `json:"userType"`
	RegistrationDate string         `json:"registrationDate"`
}

type userListResponse struct {
	Users []userResponse `json:"users"`
}

// GetUsers возвращает список пользователей без паролей.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.writeError(w, err, "get users error")
		return
	}

	resp := userListResponse{Users: make([]userResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userResponse{
			ID:               u.ID,
			UserName:         u.UserName,
			UserType:         u.UserType,
			RegistrationDate: u.RegistrationDate.Format(time.DateOnly),
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}
