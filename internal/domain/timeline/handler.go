package timeline

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-companion/internal/domain/pets"
	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/timeline", feedHandler(svc, petsSvc))
}

type itemResponse struct {
	ID       string            `json:"id"`
	Kind     Category          `json:"kind"`
	Date     string            `json:"date"`
	Title    string            `json:"title,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	URL      string            `json:"url,omitempty"`
	Caption  string            `json:"caption,omitempty"`
	Duration string            `json:"duration,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type feedResponse struct {
	PetID string         `json:"pet_id"`
	Items []itemResponse `json:"items"`
}

// feedHandler godoc
// @Summary Timeline de una mascota
// @Description Feed cronológico unificado (visitas médicas, actividades, recuerdos, eventos), orden descendente por fecha. Todos los filtros activos se combinan con AND.
// @Tags timeline
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param quick query string false "Chip rápido: all|photos|videos|notes|soins" default(all)
// @Param type query string false "Filtro de tipo: all|photos|videos|medical|activities" default(all)
// @Param q query string false "Búsqueda libre, substring case-insensitive"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param limit query int false "Máximo de items (1-200)" default(50)
// @Success 200 {object} feedResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/timeline [get]
func feedHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.RequireOwner(r.Context(), petID, claims.UserID); err != nil {
			if errors.Is(err, pets.ErrForbidden) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		q := r.URL.Query()

		quick, ok := ParseQuickFilter(q.Get("quick"))
		if !ok {
			http.Error(w, "invalid quick filter", http.StatusBadRequest)
			return
		}
		typ, ok := ParseTypeFilter(q.Get("type"))
		if !ok {
			http.Error(w, "invalid type filter", http.StatusBadRequest)
			return
		}

		limit := 0
		if raw := q.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.Feed(r.Context(), petID, quick, Filters{
			DateFrom: q.Get("from"),
			DateTo:   q.Get("to"),
			Type:     typ,
			Search:   q.Get("q"),
		}, limit)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := feedResponse{PetID: petID, Items: make([]itemResponse, 0, len(items))}
		for _, it := range items {
			out.Items = append(out.Items, itemResponse{
				ID:       it.ID,
				Kind:     it.Kind,
				Date:     it.Date,
				Title:    it.Title,
				Notes:    it.Notes,
				URL:      it.URL,
				Caption:  it.Caption,
				Duration: it.Duration,
				Fields:   it.Fields,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
