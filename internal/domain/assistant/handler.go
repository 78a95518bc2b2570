package assistant

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/assistant", func(ar chi.Router) {
		ar.Post("/messages", sendMessageHandler(svc))
		ar.Get("/messages", historyHandler(svc))
		ar.Get("/quick-questions", quickQuestionsHandler(svc))
	})
}

type messageResponse struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	Text        string    `json:"text"`
	Confidence  int       `json:"confidence,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		Role:        m.Role,
		Text:        m.Text,
		Confidence:  m.Confidence,
		Suggestions: m.Suggestions,
		CreatedAt:   m.CreatedAt,
	}
}

type sendMessageRequest struct {
	PetName string `json:"pet_name"`
	Message string `json:"message"`
}

// sendMessageHandler godoc
// @Summary Preguntar al asistente
// @Description Registra la pregunta y devuelve la respuesta del asistente con su porcentaje de confianza.
// @Tags assistant
// @Accept json
// @Produce json
// @Param payload body sendMessageRequest true "Pregunta; message es obligatorio"
// @Success 201 {object} messageResponse
// @Failure 400 {string} string "invalid json / mensaje vacío"
// @Failure 401 {string} string "unauthorized"
// @Router /assistant/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Send(r.Context(), claims.UserID, req.PetName, req.Message)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

// historyHandler godoc
// @Summary Historial de conversación
// @Tags assistant
// @Produce json
// @Success 200 {array} messageResponse
// @Failure 401 {string} string "unauthorized"
// @Router /assistant/messages [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.History(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// quickQuestionsHandler godoc
// @Summary Preguntas rápidas sugeridas
// @Tags assistant
// @Produce json
// @Success 200 {array} string
// @Router /assistant/quick-questions [get]
func quickQuestionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, svc.QuickQuestions())
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
