package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/breeds/{breed}/facts", factsHandler(svc))
}

// factsHandler godoc
// @Summary Ficha informativa de raza
// @Description Resuelve la ficha desde el catálogo externo si está configurado; si no, usa el contenido embebido. Razas desconocidas reciben la ficha genérica.
// @Tags breeds
// @Produce json
// @Param breed path string true "Nombre de la raza"
// @Success 200 {object} breeds.Facts
// @Failure 400 {string} string "raza vacía"
// @Failure 401 {string} string "unauthorized"
// @Router /breeds/{breed}/facts [get]
func factsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := svc.Facts(r.Context(), chi.URLParam(r, "breed"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(f)
	}
}
