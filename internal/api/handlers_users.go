package api

import (
	"net/http"

	"github.com/ignite/mailbox/internal/pkg/httputil"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account.
//
//	POST /register
func (h *Handlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	if err := h.users.Register(r.Context(), req.Username, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.Created(w, map[string]string{"message": "User registered successfully."})
}
