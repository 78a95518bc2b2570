package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})
}

type vetContactPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createPetRequest struct {
	Name       string            `json:"name"`
	Breed      string            `json:"breed"`
	Gender     string            `json:"gender"`
	Sterilized bool              `json:"sterilized"`
	ChipNumber string            `json:"chip_number"`
	Color      string            `json:"color"`
	PhotoURL   string            `json:"photo_url"`
	BirthDate  string            `json:"birth_date"` // YYYY-MM-DD opcional
	Notes      string            `json:"notes"`
	Vet        vetContactPayload `json:"veterinarian"`
}

type petResponse struct {
	ID           string            `json:"id"`
	OwnerUserID  string            `json:"owner_user_id"`
	Name         string            `json:"name"`
	Breed        string            `json:"breed"`
	Gender       string            `json:"gender"`
	Sterilized   bool              `json:"sterilized"`
	ChipNumber   string            `json:"chip_number"`
	Color        string            `json:"color"`
	PhotoURL     string            `json:"photo_url"`
	BirthDate    *time.Time        `json:"birth_date,omitempty"`
	HealthStatus HealthStatus      `json:"health_status"`
	Notes        string            `json:"notes"`
	Vet          vetContactPayload `json:"veterinarian"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name         *string `json:"name"`
	Breed        *string `json:"breed"`
	Gender       *string `json:"gender"`
	Sterilized   *bool   `json:"sterilized"`
	ChipNumber   *string `json:"chip_number"`
	Color        *string `json:"color"`
	PhotoURL     *string `json:"photo_url"`
	BirthDate    *string `json:"birth_date"` // "" limpia la fecha
	HealthStatus *string `json:"health_status"`
	Notes        *string `json:"notes"`
	VetName      *string `json:"vet_name"`
	VetPhone     *string `json:"vet_phone"`
	VetAddress   *string `json:"vet_address"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea el perfil de una mascota para el usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Perfil de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / birth_date inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:       req.Name,
			Breed:      req.Breed,
			Gender:     req.Gender,
			Sterilized: req.Sterilized,
			ChipNumber: req.ChipNumber,
			Color:      req.Color,
			PhotoURL:   req.PhotoURL,
			BirthDate:  bd,
			Notes:      req.Notes,
			VetName:    req.Vet.Name,
			VetPhone:   req.Vet.Phone,
			VetAddress: req.Vet.Address,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if p.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar perfil de mascota
// @Description PATCH parcial: solo los campos enviados se modifican. birth_date vacío ("") limpia la fecha.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := svc.RequireOwner(r.Context(), petID, claims.UserID); err != nil {
			if err == ErrForbidden {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:         req.Name,
			Breed:        req.Breed,
			Gender:       req.Gender,
			Sterilized:   req.Sterilized,
			ChipNumber:   req.ChipNumber,
			Color:        req.Color,
			PhotoURL:     req.PhotoURL,
			HealthStatus: req.HealthStatus,
			Notes:        req.Notes,
			VetName:      req.VetName,
			VetPhone:     req.VetPhone,
			VetAddress:   req.VetAddress,
		}

		if req.BirthDate != nil {
			if strings.TrimSpace(*req.BirthDate) == "" {
				in.ClearBirth = true
			} else {
				t, err := time.Parse("2006-01-02", *req.BirthDate)
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
					return
				}
				in.BirthDate = &t
			}
		}

		p, err := svc.Update(r.Context(), petID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		OwnerUserID:  p.OwnerUserID,
		Name:         p.Name,
		Breed:        p.Breed,
		Gender:       p.Gender,
		Sterilized:   p.Sterilized,
		ChipNumber:   p.ChipNumber,
		Color:        p.Color,
		PhotoURL:     p.PhotoURL,
		BirthDate:    p.BirthDate,
		HealthStatus: p.HealthStatus,
		Notes:        p.Notes,
		Vet: vetContactPayload{
			Name:    p.Veterinarian.Name,
			Phone:   p.Veterinarian.Phone,
			Address: p.Veterinarian.Address,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
