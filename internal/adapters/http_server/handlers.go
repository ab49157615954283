// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"smarthjem/internal/app"
	"smarthjem/internal/domain"
	"smarthjem/internal/validate"
)

type Handlers struct {
	Q         *app.QueryService
	Catalog   *app.CatalogService
	Inquiries *app.InquiryService
	Channel   domain.ChannelClient

	// AdminKey guards the admin routes. Empty means the admin surface is
	// not mounted at all.
	AdminKey string
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/properties", h.listProperties)
		r.Get("/properties/{id}", h.getProperty)
		r.Get("/properties/{id}/availability", h.checkAvailability)
		r.Post("/contact", h.submitContact)
		r.Post("/bookings", h.submitBooking)

		if h.AdminKey != "" {
			r.Route("/admin", func(ar chi.Router) {
				ar.Use(requireAdminKey(h.AdminKey))
				ar.Post("/properties", h.createProperty)
				ar.Put("/properties/{id}", h.updateProperty)
				ar.Delete("/properties/{id}", h.deleteProperty)
				ar.Post("/sync", h.triggerSync)
			})
		}
	})
}

func requireAdminKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeIssues(w http.ResponseWriter, issues []validate.Issue) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": issues})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"beds24Configured": h.Channel.Configured(),
	})
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.Q.ListProperties(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	writeJSON(w, http.StatusOK, props)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) checkAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Q.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}

	// Catalog-only records answer from the availability flag.
	if !p.GatewayLinked() || !h.Channel.Configured() {
		writeJSON(w, http.StatusOK, map[string]any{"available": p.Available})
		return
	}

	q := r.URL.Query()
	checkIn, checkOut := q.Get("checkIn"), q.Get("checkOut")
	if checkIn == "" || checkOut == "" {
		writeError(w, http.StatusBadRequest, "checkIn and checkOut are required")
		return
	}
	guests := 1
	if g := q.Get("guests"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "guests must be a positive integer")
			return
		}
		guests = n
	}

	offer, err := h.Channel.CheckAvailability(r.Context(), id, checkIn, checkOut, guests)
	if err != nil {
		log.Warn().Err(err).Str("property", id).Msg("availability lookup failed")
		writeJSON(w, http.StatusOK, map[string]any{"available": false})
		return
	}
	if offer == nil {
		writeJSON(w, http.StatusOK, map[string]any{"available": false})
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *Handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	var f domain.ContactForm
	if !decode(w, r, &f) {
		return
	}
	if issues := validate.Struct(f); len(issues) > 0 {
		writeIssues(w, issues)
		return
	}
	if err := h.Inquiries.SubmitContact(r.Context(), f); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message received",
	})
}

func (h *Handlers) submitBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.BookingRequest
	if !decode(w, r, &b) {
		return
	}
	if issues := validate.Struct(b); len(issues) > 0 {
		writeIssues(w, issues)
		return
	}
	ack, err := h.Inquiries.SubmitBooking(r.Context(), b)
	if err != nil {
		// Only a failed log append lands here; downstream dispatch
		// failures are folded into the ack.
		writeError(w, http.StatusInternalServerError, "Failed to record booking request")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Booking request received",
		"bookingId": ack.Ref,
	})
}

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if !decode(w, r, &p) {
		return
	}
	if p.ID == "" || p.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name are required")
		return
	}
	if err := h.Catalog.CreateProperty(r.Context(), p); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "Property already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if !decode(w, r, &p) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Catalog.UpdateProperty(r.Context(), id, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	p.ID = id
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Catalog.DeleteProperty(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handlers) triggerSync(w http.ResponseWriter, r *http.Request) {
	n, err := h.Catalog.SyncFromChannel(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "Sync failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "synced": n})
}
