package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-companion/internal/router"
)

func TestHTTP_EndToEnd_TimelineAggregation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	intruderID := "intruder-1"

	// 1) Owner crea mascota
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":  "Max",
		"breed": "Golden Retriever",
		"veterinarian": map[string]any{
			"name":  "Dr. Martin",
			"phone": "01 23 45 67 89",
		},
	})

	// 2) Otro usuario no ve el perfil ni el timeline
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, intruderID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 get pet by intruder, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/timeline", intruderID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 timeline by intruder, got %d", st)
		}
	}

	// 3) Owner llena el carnet: visita, actividad, recuerdos, evento
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/visits", ownerID, map[string]any{
			"date":         "2024-01-15",
			"reason":       "Vaccins annuels",
			"veterinarian": "Dr. Martin",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Vaccins annuels a été ajouté à l'historique médical.")
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/activities", ownerID, map[string]any{
			"date":     "2024-01-22",
			"type":     "Balade",
			"duration": "45 min",
			"notes":    "Parc des Buttes-Chaumont",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create activity, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Balade a été ajouté au journal.")
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/memories", ownerID, map[string]any{
			"kind":    "photo",
			"date":    "2024-01-20",
			"url":     "https://example.com/neige.jpg",
			"caption": "Première neige!",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create memory, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Le souvenir a été ajouté à la galerie.")
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/memories", ownerID, map[string]any{
			"kind": "gif",
			"date": "2024-01-20",
			"url":  "https://example.com/x.gif",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid memory kind, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/events", ownerID, map[string]any{
			"date":  "2024-01-10",
			"title": "Anniversaire",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Anniversaire a été ajouté à la timeline.")
	}

	// 4) Timeline completo: orden descendente por fecha
	{
		items := fetchTimeline(t, ts.URL, ownerID, petID, "")
		assertOrder(t, items, "2024-01-22", "2024-01-20", "2024-01-15", "2024-01-10")
	}

	// 5) Quick filters
	{
		items := fetchTimeline(t, ts.URL, ownerID, petID, "?quick=soins")
		if len(items) != 1 || items[0]["kind"] != "medical" {
			t.Fatalf("expected only medical visit for quick=soins, got %v", items)
		}
		items = fetchTimeline(t, ts.URL, ownerID, petID, "?quick=photos")
		if len(items) != 1 || items[0]["caption"] != "Première neige!" {
			t.Fatalf("expected only photo for quick=photos, got %v", items)
		}
		// notes = todo menos recuerdos
		items = fetchTimeline(t, ts.URL, ownerID, petID, "?quick=notes")
		if len(items) != 3 {
			t.Fatalf("expected 3 items for quick=notes, got %d", len(items))
		}
	}

	// 6) Filtros combinados con AND: quick y type contradictorios => vacío
	{
		items := fetchTimeline(t, ts.URL, ownerID, petID, "?quick=soins&type=activities")
		if len(items) != 0 {
			t.Fatalf("expected empty feed for contradictory filters, got %v", items)
		}
	}

	// 7) Búsqueda libre case-insensitive sobre todos los campos
	{
		items := fetchTimeline(t, ts.URL, ownerID, petID, "?q=BUTTES")
		if len(items) != 1 || items[0]["kind"] != "activity" {
			t.Fatalf("expected activity matched by location search, got %v", items)
		}
	}

	// 8) Rango de fechas inclusivo
	{
		items := fetchTimeline(t, ts.URL, ownerID, petID, "?from=2024-01-15&to=2024-01-20")
		assertOrder(t, items, "2024-01-20", "2024-01-15")
	}

	// 9) Filtro inválido => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/timeline?quick=bogus", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid quick filter, got %d", st)
		}
	}
}

func TestHTTP_HealthRecords_Toggles(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Max"})
	otherPetID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Luna"})

	// vacuna: nace up-to-date, toggle => overdue
	var vacID string
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/vaccinations", ownerID, map[string]any{
			"name": "Rage",
			"date": "2024-01-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create vaccination, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Rage a été ajouté au carnet de santé.")

		var resp struct {
			Record struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"record"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Record.Status != "up-to-date" {
			t.Fatalf("expected up-to-date, got %s", resp.Record.Status)
		}
		vacID = resp.Record.ID
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/vaccinations/"+vacID+"/toggle", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "overdue" {
			t.Fatalf("expected overdue after toggle, got %s", resp.Status)
		}
	}

	// el id no es alcanzable a través de otra mascota
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+otherPetID+"/vaccinations/"+vacID+"/toggle", ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cross-pet toggle, got %d", st)
		}
	}

	// tratamiento: en-cours => terminé
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/treatments", ownerID, map[string]any{
			"name":      "Antiparasitaire",
			"type":      "Préventif",
			"start_date": "2024-01-20",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create treatment, got %d body=%s", st, string(body))
		}
		assertMessage(t, body, "Antiparasitaire a été ajouté aux traitements en cours.")

		var resp struct {
			Record struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"record"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Record.Status != "en-cours" {
			t.Fatalf("expected en-cours, got %s", resp.Record.Status)
		}

		st, body = doReq(t, ts.URL, "POST", "/pets/"+petID+"/treatments/"+resp.Record.ID+"/toggle", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle treatment, got %d body=%s", st, string(body))
		}
		var toggled struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &toggled)
		if toggled.Status != "terminé" {
			t.Fatalf("expected terminé, got %s", toggled.Status)
		}
	}
}

func TestHTTP_WeightSummary(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Max"})

	weights := []map[string]any{
		{"weight": 27.8, "date": "2024-01-15"},
		{"weight": 28.2, "date": "2024-01-20"},
		{"weight": 28.0, "date": "2024-01-22"},
	}
	for _, w := range weights {
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/weights", ownerID, w)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create weight, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/summary?min=25&max=34", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
	}

	var sum struct {
		Current      float64 `json:"current"`
		Stable       bool    `json:"stable"`
		Count        int     `json:"count"`
		InTargetZone *bool   `json:"in_target_zone"`
	}
	_ = json.Unmarshal(body, &sum)
	if sum.Current != 28.0 || sum.Count != 3 {
		t.Fatalf("unexpected summary: %+v body=%s", sum, string(body))
	}
	if sum.InTargetZone == nil || !*sum.InTargetZone {
		t.Fatalf("expected in target zone, got %+v", sum.InTargetZone)
	}

	// min sin max => 400
	st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/summary?min=25", ownerID, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for partial target zone, got %d", st)
	}
}

func TestHTTP_EmergencyAndBreeds(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "user-1"

	// contactos sembrados por defecto
	{
		st, body := doReq(t, ts.URL, "GET", "/emergency/contacts", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 contacts, got %d body=%s", st, string(body))
		}
		var contacts []map[string]any
		_ = json.Unmarshal(body, &contacts)
		if len(contacts) != 3 {
			t.Fatalf("expected 3 seeded contacts, got %d", len(contacts))
		}
	}

	// guía fija de primeros auxilios
	{
		st, body := doReq(t, ts.URL, "GET", "/emergency/first-aid", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 first aid, got %d body=%s", st, string(body))
		}
		var steps []map[string]any
		_ = json.Unmarshal(body, &steps)
		if len(steps) != 4 {
			t.Fatalf("expected 4 first aid steps, got %d", len(steps))
		}
	}

	// ficha de raza embebida (sin catálogo externo configurado)
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/Golden%20Retriever/facts", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 breed facts, got %d body=%s", st, string(body))
		}
		var facts struct {
			Weight   string `json:"weight"`
			Lifespan string `json:"lifespan"`
		}
		_ = json.Unmarshal(body, &facts)
		if facts.Weight != "25-34 kg" || facts.Lifespan != "10-12 ans" {
			t.Fatalf("unexpected breed facts: %s", string(body))
		}
	}
}

func TestHTTP_Assistant_FallbackConversation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "user-1"

	// sin Responder configurado: respuesta fija de cortesía
	st, body := doReq(t, ts.URL, "POST", "/assistant/messages", userID, map[string]any{
		"pet_name": "Max",
		"message":  "Comment améliorer son alimentation ?",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 send message, got %d body=%s", st, string(body))
	}

	var aiMsg struct {
		Role       string `json:"role"`
		Text       string `json:"text"`
		Confidence int    `json:"confidence"`
	}
	_ = json.Unmarshal(body, &aiMsg)
	if aiMsg.Role != "ai" || aiMsg.Text == "" {
		t.Fatalf("expected ai reply, got %s", string(body))
	}
	if aiMsg.Confidence < 80 || aiMsg.Confidence > 99 {
		t.Fatalf("expected confidence in [80,99], got %d", aiMsg.Confidence)
	}

	// historial con ambos lados de la conversación
	st, body = doReq(t, ts.URL, "GET", "/assistant/messages", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
	}
	var history []map[string]any
	_ = json.Unmarshal(body, &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 messages in history, got %d", len(history))
	}

	// preguntas rápidas
	st, body = doReq(t, ts.URL, "GET", "/assistant/quick-questions", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 quick questions, got %d body=%s", st, string(body))
	}
	var questions []string
	_ = json.Unmarshal(body, &questions)
	if len(questions) != 4 {
		t.Fatalf("expected 4 quick questions, got %d", len(questions))
	}
}

func TestHTTP_SeedDemo_PopulatesTimeline(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil, SeedDemo: true}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/pets", router.DemoUserID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
	}
	var petsList []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	_ = json.Unmarshal(body, &petsList)
	if len(petsList) != 1 || petsList[0].Name != "Max" {
		t.Fatalf("expected demo pet Max, got %s", string(body))
	}

	items := fetchTimeline(t, ts.URL, router.DemoUserID, petsList[0].ID, "")
	if len(items) == 0 {
		t.Fatalf("expected demo timeline populated")
	}
	// el item más reciente es la balade del 22/01
	if items[0]["date"] != "2024-01-22" {
		t.Fatalf("expected most recent demo item 2024-01-22, got %v", items[0]["date"])
	}
}

// -------------------------
// Helpers
// -------------------------

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func fetchTimeline(t *testing.T, baseURL, userID, petID, query string) []map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/pets/"+petID+"/timeline"+query, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 timeline, got %d body=%s", st, string(body))
	}

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.Items
}

func assertOrder(t *testing.T, items []map[string]any, dates ...string) {
	t.Helper()

	if len(items) != len(dates) {
		t.Fatalf("expected %d items, got %d: %v", len(dates), len(items), items)
	}
	for i, d := range dates {
		if items[i]["date"] != d {
			t.Fatalf("position %d: expected date %s, got %v", i, d, items[i]["date"])
		}
	}
}

func assertMessage(t *testing.T, body []byte, want string) {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Message != want {
		t.Fatalf("expected message %q, got %q", want, resp.Message)
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
