package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-companion/internal/domain/pets"
	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Post("/pets/{petID}/activities", addActivityHandler(svc, petsSvc))
	r.Get("/pets/{petID}/activities", listActivitiesHandler(svc, petsSvc))

	r.Post("/pets/{petID}/memories", addMemoryHandler(svc, petsSvc))
	r.Get("/pets/{petID}/memories", listMemoriesHandler(svc, petsSvc))

	r.Post("/pets/{petID}/events", addEventHandler(svc, petsSvc))
	r.Get("/pets/{petID}/events", listEventsHandler(svc, petsSvc))
}

func requirePetOwner(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	petID := chi.URLParam(r, "petID")
	if _, err := petsSvc.RequireOwner(r.Context(), petID, claims.UserID); err != nil {
		if errors.Is(err, pets.ErrForbidden) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return "", false
		}
		http.Error(w, "pet not found", http.StatusNotFound)
		return "", false
	}
	return petID, true
}

type createdResponse[T any] struct {
	Message string `json:"message"`
	Record  T      `json:"record"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Duration  string    `json:"duration,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toActivityResponse(a ActivityEntry) activityResponse {
	return activityResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		Date:      a.Date,
		Type:      a.Type,
		Duration:  a.Duration,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

type addActivityRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
}

// addActivityHandler godoc
// @Summary Registrar actividad
// @Description Agrega una actividad (balade, jeu, toilettage...) al diario; aparece en el timeline como registro de actividad.
// @Tags journal
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addActivityRequest true "Actividad; date y type son obligatorios"
// @Success 201 {object} createdResponse[activityResponse]
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Router /pets/{petID}/activities [post]
func addActivityHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.AddActivity(r.Context(), petID, AddActivityInput{
			Date:     req.Date,
			Type:     req.Type,
			Duration: req.Duration,
			Notes:    req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[activityResponse]{
			Message: fmt.Sprintf("%s a été ajouté au journal.", a.Type),
			Record:  toActivityResponse(a),
		})
	}
}

// listActivitiesHandler godoc
// @Summary Listar actividades
// @Tags journal
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} activityResponse
// @Router /pets/{petID}/activities [get]
func listActivitiesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListActivities(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]activityResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toActivityResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type memoryResponse struct {
	ID        string     `json:"id"`
	PetID     string     `json:"pet_id"`
	Kind      MemoryKind `json:"kind"`
	Date      string     `json:"date"`
	URL       string     `json:"url"`
	Caption   string     `json:"caption,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toMemoryResponse(m Memory) memoryResponse {
	return memoryResponse{
		ID:        m.ID,
		PetID:     m.PetID,
		Kind:      m.Kind,
		Date:      m.Date,
		URL:       m.URL,
		Caption:   m.Caption,
		CreatedAt: m.CreatedAt,
	}
}

type addMemoryRequest struct {
	Kind    string `json:"kind"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// addMemoryHandler godoc
// @Summary Registrar recuerdo
// @Description Agrega una foto o video a la galería. kind debe ser exactamente "photo" o "video".
// @Tags journal
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addMemoryRequest true "Recuerdo; kind, date y url son obligatorios"
// @Success 201 {object} createdResponse[memoryResponse]
// @Failure 400 {string} string "invalid json / kind inválido"
// @Router /pets/{petID}/memories [post]
func addMemoryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addMemoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.AddMemory(r.Context(), petID, AddMemoryInput{
			Kind:    req.Kind,
			Date:    req.Date,
			URL:     req.URL,
			Caption: req.Caption,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[memoryResponse]{
			Message: "Le souvenir a été ajouté à la galerie.",
			Record:  toMemoryResponse(m),
		})
	}
}

// listMemoriesHandler godoc
// @Summary Galería de recuerdos
// @Tags journal
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} memoryResponse
// @Router /pets/{petID}/memories [get]
func listMemoriesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListMemories(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]memoryResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMemoryResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type eventResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		PetID:       e.PetID,
		Date:        e.Date,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		CreatedAt:   e.CreatedAt,
	}
}

type addEventRequest struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// addEventHandler godoc
// @Summary Registrar evento genérico
// @Description Agrega un evento suelto directamente a la cronología. Sin discriminante propio: el feed lo clasifica por estructura.
// @Tags journal
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addEventRequest true "Evento; date y title son obligatorios"
// @Success 201 {object} createdResponse[eventResponse]
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Router /pets/{petID}/events [post]
func addEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.AddEvent(r.Context(), petID, AddEventInput{
			Date:        req.Date,
			Title:       req.Title,
			Description: req.Description,
			Duration:    req.Duration,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[eventResponse]{
			Message: fmt.Sprintf("%s a été ajouté à la timeline.", e.Title),
			Record:  toEventResponse(e),
		})
	}
}

// listEventsHandler godoc
// @Summary Listar eventos genéricos
// @Tags journal
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} eventResponse
// @Router /pets/{petID}/events [get]
func listEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListEvents(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
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
