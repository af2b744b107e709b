package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/pkg/httputil"
)

// emailDTO is the wire shape of a stored email. Field names are part of
// the public API; renaming them breaks existing clients.
type emailDTO struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"message_subject"`
	Body      string    `json:"body"`
	Sender    string    `json:"sender_username"`
	Recipient string    `json:"recipient_username"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(e domain.Email) emailDTO {
	return emailDTO{
		ID:        e.ID,
		Subject:   e.Subject,
		Body:      e.Body,
		Sender:    e.Sender,
		Recipient: e.Recipient,
		CreatedAt: e.CreatedAt,
	}
}

type sendEmailRequest struct {
	Subject   string `json:"message_subject"`
	Body      string `json:"body"`
	Sender    string `json:"sender_username"`
	Recipient string `json:"recipient_username"`
}

// HandleListInbox returns a recipient's inbox, newest first. With both
// start and stop query params present the result is the [start, stop)
// window of the inbox.
//
//	GET /emails?recipient_username=X&start=3&stop=5
func (h *Handlers) HandleListInbox(w http.ResponseWriter, r *http.Request) {
	recipient := r.URL.Query().Get("recipient_username")

	window, err := parseWindow(r)
	if err != nil {
		httputil.BadRequest(w, "Start and stop indices must be non-negative integers.")
		return
	}

	inbox, err := h.emails.ListInbox(r.Context(), recipient, window)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"emails": lo.Map(inbox, func(e domain.Email, _ int) emailDTO {
		return toDTO(e)
	})})
}

// HandleGetEmail returns a single stored email.
//
//	GET /emails/{id}
func (h *Handlers) HandleGetEmail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.BadRequest(w, "Email id must be a positive integer.")
		return
	}

	e, err := h.emails.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"email": toDTO(*e)})
}

// HandleSendEmail validates and stores a new email.
//
//	POST /emails
func (h *Handlers) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	if h.throttle != nil && req.Sender != "" {
		allowed, err := h.throttle.Allow(r.Context(), req.Sender)
		if err == nil && !allowed {
			httputil.Error(w, http.StatusTooManyRequests, "Send rate limit exceeded, try again later.")
			return
		}
	}

	id, err := h.emails.Send(r.Context(), req.Subject, req.Body, req.Sender, req.Recipient)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.Created(w, map[string]any{"message": "Email sent successfully.", "id": id})
}

// HandleDeleteEmail removes a stored email by id.
//
//	DELETE /emails/{id}
func (h *Handlers) HandleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httputil.BadRequest(w, "Email id must be a positive integer.")
		return
	}

	if err := h.emails.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	httputil.OK(w, map[string]string{"message": fmt.Sprintf("Successfully deleted email with id %d", id)})
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
