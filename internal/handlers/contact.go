package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Francobelbruno/Portafolio/internal/services"
)

const noticeIncomplete = "incomplete"

// ContactHandler handles the contact form
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// SubmitJSON handles POST /api/contact
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var form services.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.contactService.Submit(form)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteForm) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SubmitForm handles POST /contact from the page form and redirects the
// browser to the mail client link
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	result, err := h.contactService.Submit(services.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	})
	if err != nil {
		if errors.Is(err, services.ErrIncompleteForm) {
			http.Redirect(w, r, "/?notice="+noticeIncomplete+"#contact", http.StatusSeeOther)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, result.Mailto, http.StatusSeeOther)
}
