package contacts

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/emergency", func(er chi.Router) {
		er.Get("/contacts", listContactsHandler(svc))
		er.Post("/contacts", addContactHandler(svc))
		er.Get("/first-aid", firstAidHandler(svc))
	})
}

type contactResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address,omitempty"`
	Distance     string      `json:"distance,omitempty"`
	Availability string      `json:"availability,omitempty"`
	Type         ContactType `json:"type"`
	CreatedAt    time.Time   `json:"created_at"`
}

func toContactResponse(c EmergencyContact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		Distance:     c.Distance,
		Availability: c.Availability,
		Type:         c.Type,
		CreatedAt:    c.CreatedAt,
	}
}

// listContactsHandler godoc
// @Summary Contactos de urgencia
// @Description Veterinarios y centros de urgencia, compartidos por todos los usuarios.
// @Tags emergency
// @Produce json
// @Success 200 {array} contactResponse
// @Failure 401 {string} string "unauthorized"
// @Router /emergency/contacts [get]
func listContactsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireUser(w, r) {
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]contactResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContactResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type addContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Distance     string `json:"distance"`
	Availability string `json:"availability"`
	Type         string `json:"type"`
}

// addContactHandler godoc
// @Summary Agregar contacto de urgencia
// @Tags emergency
// @Accept json
// @Produce json
// @Param payload body addContactRequest true "Contacto; type debe ser regular|emergency|hospital"
// @Success 201 {object} contactResponse
// @Failure 400 {string} string "invalid json / type inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /emergency/contacts [post]
func addContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireUser(w, r) {
			return
		}

		var req addContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Add(r.Context(), AddInput{
			Name:         req.Name,
			Phone:        req.Phone,
			Address:      req.Address,
			Distance:     req.Distance,
			Availability: req.Availability,
			Type:         req.Type,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toContactResponse(c))
	}
}

type firstAidStepResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// firstAidHandler godoc
// @Summary Guía de primeros auxilios
// @Tags emergency
// @Produce json
// @Success 200 {array} firstAidStepResponse
// @Router /emergency/first-aid [get]
func firstAidHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireUser(w, r) {
			return
		}

		steps := svc.FirstAidSteps()
		out := make([]firstAidStepResponse, 0, len(steps))
		for _, s := range steps {
			out = append(out, firstAidStepResponse{
				Title:       s.Title,
				Description: s.Description,
				Icon:        s.Icon,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
