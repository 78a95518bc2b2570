package health

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-companion/internal/domain/pets"
	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Post("/pets/{petID}/vaccinations", addVaccinationHandler(svc, petsSvc))
	r.Get("/pets/{petID}/vaccinations", listVaccinationsHandler(svc, petsSvc))
	r.Post("/pets/{petID}/vaccinations/{id}/toggle", toggleVaccinationHandler(svc, petsSvc))

	r.Post("/pets/{petID}/treatments", addTreatmentHandler(svc, petsSvc))
	r.Get("/pets/{petID}/treatments", listTreatmentsHandler(svc, petsSvc))
	r.Post("/pets/{petID}/treatments/{id}/toggle", toggleTreatmentHandler(svc, petsSvc))

	r.Post("/pets/{petID}/visits", addVisitHandler(svc, petsSvc))
	r.Get("/pets/{petID}/visits", listVisitsHandler(svc, petsSvc))

	r.Post("/pets/{petID}/weights", addWeightHandler(svc, petsSvc))
	r.Get("/pets/{petID}/weights", listWeightsHandler(svc, petsSvc))
	r.Get("/pets/{petID}/weights/summary", weightSummaryHandler(svc, petsSvc))
}

// requirePetOwner resuelve el patrón común de estos handlers: usuario
// autenticado + mascota existente + mascota del usuario. Devuelve false si ya
// respondió el error.
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

type vaccinationResponse struct {
	ID           string            `json:"id"`
	PetID        string            `json:"pet_id"`
	Name         string            `json:"name"`
	Date         string            `json:"date"`
	NextDue      string            `json:"next_due,omitempty"`
	Veterinarian string            `json:"veterinarian,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Status       VaccinationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		Name:         v.Name,
		Date:         v.Date,
		NextDue:      v.NextDue,
		Veterinarian: v.Veterinarian,
		Notes:        v.Notes,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
}

type addVaccinationRequest struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	NextDue      string `json:"next_due"`
	Veterinarian string `json:"veterinarian"`
	Notes        string `json:"notes"`
}

type createdResponse[T any] struct {
	// Message es la confirmación lista para mostrar como toast en el cliente.
	Message string `json:"message"`
	Record  T      `json:"record"`
}

// addVaccinationHandler godoc
// @Summary Registrar vacuna
// @Description Agrega una vacuna al carnet de salud. El estado inicial es siempre "up-to-date".
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addVaccinationRequest true "Vacuna; date en formato YYYY-MM-DD"
// @Success 201 {object} createdResponse[vaccinationResponse]
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/vaccinations [post]
func addVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.AddVaccination(r.Context(), petID, AddVaccinationInput{
			Name:         req.Name,
			Date:         req.Date,
			NextDue:      req.NextDue,
			Veterinarian: req.Veterinarian,
			Notes:        req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[vaccinationResponse]{
			Message: fmt.Sprintf("%s a été ajouté au carnet de santé.", v.Name),
			Record:  toVaccinationResponse(v),
		})
	}
}

// listVaccinationsHandler godoc
// @Summary Listar vacunas
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} vaccinationResponse
// @Router /pets/{petID}/vaccinations [get]
func listVaccinationsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListVaccinations(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccinationResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// toggleVaccinationHandler godoc
// @Summary Alternar estado de vacuna
// @Description Alterna up-to-date <-> overdue y devuelve el registro actualizado.
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param id path string true "ID de la vacuna"
// @Success 200 {object} vaccinationResponse
// @Failure 404 {string} string "vaccination not found"
// @Router /pets/{petID}/vaccinations/{id}/toggle [post]
func toggleVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		v, err := svc.ToggleVaccination(r.Context(), petID, chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "vaccination not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

type treatmentResponse struct {
	ID           string          `json:"id"`
	PetID        string          `json:"pet_id"`
	Name         string          `json:"name"`
	Type         string          `json:"type,omitempty"`
	StartDate    string          `json:"start_date,omitempty"`
	EndDate      string          `json:"end_date,omitempty"`
	Frequency    string          `json:"frequency,omitempty"`
	Dosage       string          `json:"dosage,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	Veterinarian string          `json:"veterinarian,omitempty"`
	Status       TreatmentStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	return treatmentResponse{
		ID:           t.ID,
		PetID:        t.PetID,
		Name:         t.Name,
		Type:         t.Type,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Frequency:    t.Frequency,
		Dosage:       t.Dosage,
		Instructions: t.Instructions,
		Veterinarian: t.Veterinarian,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}

type addTreatmentRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Frequency    string `json:"frequency"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
	Veterinarian string `json:"veterinarian"`
}

// addTreatmentHandler godoc
// @Summary Registrar tratamiento
// @Description Agrega un tratamiento. El estado inicial es siempre "en-cours".
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addTreatmentRequest true "Tratamiento"
// @Success 201 {object} createdResponse[treatmentResponse]
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Router /pets/{petID}/treatments [post]
func addTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.AddTreatment(r.Context(), petID, AddTreatmentInput{
			Name:         req.Name,
			Type:         req.Type,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Frequency:    req.Frequency,
			Dosage:       req.Dosage,
			Instructions: req.Instructions,
			Veterinarian: req.Veterinarian,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[treatmentResponse]{
			Message: fmt.Sprintf("%s a été ajouté aux traitements en cours.", t.Name),
			Record:  toTreatmentResponse(t),
		})
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} treatmentResponse
// @Router /pets/{petID}/treatments [get]
func listTreatmentsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListTreatments(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// toggleTreatmentHandler godoc
// @Summary Alternar estado de tratamiento
// @Description Alterna en-cours <-> terminé y devuelve el registro actualizado.
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param id path string true "ID del tratamiento"
// @Success 200 {object} treatmentResponse
// @Failure 404 {string} string "treatment not found"
// @Router /pets/{petID}/treatments/{id}/toggle [post]
func toggleTreatmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		t, err := svc.ToggleTreatment(r.Context(), petID, chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toTreatmentResponse(t))
	}
}

type visitResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Date         string    `json:"date"`
	Reason       string    `json:"reason"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Treatment    string    `json:"treatment,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	FollowUp     string    `json:"follow_up,omitempty"`
	Cost         string    `json:"cost,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toVisitResponse(v MedicalVisit) visitResponse {
	return visitResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		Date:         v.Date,
		Reason:       v.Reason,
		Veterinarian: v.Veterinarian,
		Diagnosis:    v.Diagnosis,
		Treatment:    v.Treatment,
		Notes:        v.Notes,
		FollowUp:     v.FollowUp,
		Cost:         v.Cost,
		CreatedAt:    v.CreatedAt,
	}
}

type addVisitRequest struct {
	Date         string `json:"date"`
	Reason       string `json:"reason"`
	Veterinarian string `json:"veterinarian"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Notes        string `json:"notes"`
	FollowUp     string `json:"follow_up"`
	Cost         string `json:"cost"`
}

// addVisitHandler godoc
// @Summary Registrar visita médica
// @Description Agrega una visita al historial médico; la visita aparece en el timeline como registro médico.
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addVisitRequest true "Visita; date y reason son obligatorios"
// @Success 201 {object} createdResponse[visitResponse]
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Router /pets/{petID}/visits [post]
func addVisitHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.AddVisit(r.Context(), petID, AddVisitInput{
			Date:         req.Date,
			Reason:       req.Reason,
			Veterinarian: req.Veterinarian,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
			Notes:        req.Notes,
			FollowUp:     req.FollowUp,
			Cost:         req.Cost,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[visitResponse]{
			Message: fmt.Sprintf("%s a été ajouté à l'historique médical.", v.Reason),
			Record:  toVisitResponse(v),
		})
	}
}

// listVisitsHandler godoc
// @Summary Historial de visitas médicas
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} visitResponse
// @Router /pets/{petID}/visits [get]
func listVisitsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListVisits(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type weightResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toWeightResponse(e WeightEntry) weightResponse {
	return weightResponse{
		ID:        e.ID,
		PetID:     e.PetID,
		Weight:    e.Weight,
		Date:      e.Date,
		Time:      e.Time,
		Location:  e.Location,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

type addWeightRequest struct {
	Weight   float64 `json:"weight"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Location string  `json:"location"`
	Notes    string  `json:"notes"`
}

// addWeightHandler godoc
// @Summary Registrar pesada
// @Tags health
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body addWeightRequest true "Pesada; weight en kg, date en formato YYYY-MM-DD"
// @Success 201 {object} createdResponse[weightResponse]
// @Failure 400 {string} string "invalid json / peso inválido"
// @Router /pets/{petID}/weights [post]
func addWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var req addWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.AddWeight(r.Context(), petID, AddWeightInput{
			Weight:   req.Weight,
			Date:     req.Date,
			Time:     req.Time,
			Location: req.Location,
			Notes:    req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse[weightResponse]{
			Message: fmt.Sprintf("Nouveau poids de %gkg enregistré.", e.Weight),
			Record:  toWeightResponse(e),
		})
	}
}

// listWeightsHandler godoc
// @Summary Listar pesadas
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} weightResponse
// @Router /pets/{petID}/weights [get]
func listWeightsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListWeights(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toWeightResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type weightSummaryResponse struct {
	Current      float64 `json:"current"`
	Trend        float64 `json:"trend"`
	Stable       bool    `json:"stable"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Count        int     `json:"count"`
	InTargetZone *bool   `json:"in_target_zone,omitempty"`
}

// weightSummaryHandler godoc
// @Summary Resumen de la curva de peso
// @Description Calcula peso actual, tendencia (última pesada menos la anterior, estable si |trend| <= 0.1 kg), mínimo y máximo. min/max opcionales definen la zona objetivo.
// @Tags health
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param min query number false "Peso mínimo de la zona objetivo (kg)"
// @Param max query number false "Peso máximo de la zona objetivo (kg)"
// @Success 200 {object} weightSummaryResponse
// @Failure 400 {string} string "min/max inválidos"
// @Router /pets/{petID}/weights/summary [get]
func weightSummaryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := requirePetOwner(w, r, petsSvc)
		if !ok {
			return
		}

		var target *TargetZone
		q := r.URL.Query()
		if q.Get("min") != "" || q.Get("max") != "" {
			min, err1 := strconv.ParseFloat(q.Get("min"), 64)
			max, err2 := strconv.ParseFloat(q.Get("max"), 64)
			if err1 != nil || err2 != nil || min < 0 || max < min {
				http.Error(w, "min and max must form a valid range", http.StatusBadRequest)
				return
			}
			target = &TargetZone{Min: min, Max: max}
		}

		items, err := svc.ListWeights(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		sum := SummarizeWeights(items, target)
		writeJSON(w, http.StatusOK, weightSummaryResponse{
			Current:      sum.Current,
			Trend:        sum.Trend,
			Stable:       sum.Stable,
			Min:          sum.Min,
			Max:          sum.Max,
			Count:        sum.Count,
			InTargetZone: sum.InTargetZone,
		})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
