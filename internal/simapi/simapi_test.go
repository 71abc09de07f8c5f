package simapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jrpg-battle/internal/game"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	content, err := game.LoadContent("")
	if err != nil {
		t.Fatal(err)
	}
	return New(content).Router()
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCatalogSpells(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/catalog/spells", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Spells []spellJSON `json:"spells"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	var cure *spellJSON
	for i := range body.Spells {
		if body.Spells[i].ID == "CURE1" {
			cure = &body.Spells[i]
		}
	}
	if cure == nil || cure.Target != "ally" || cure.MP != 8 {
		t.Errorf("CURE1 = %+v", cure)
	}
}

func TestCatalogItems(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/catalog/items", "")
	var body struct {
		Items []itemJSON `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	found := map[string]string{}
	for _, it := range body.Items {
		found[it.ID] = it.Kind
	}
	if found["POTION"] != "consumable" || found["WOOD_SWORD"] != "equipment" {
		t.Errorf("items = %v", found)
	}
}

func TestEncountersDeterministic(t *testing.T) {
	r := newTestRouter(t)
	body := `{"seed": 11, "count": 5, "leader_class": "FIGHTER", "level": 6}`
	a := do(t, r, http.MethodPost, "/api/encounters", body)
	b := do(t, r, http.MethodPost, "/api/encounters", body)
	if a.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", a.Code, a.Body)
	}
	if a.Body.String() != b.Body.String() {
		t.Error("same seed rolled different encounters")
	}
	var resp struct {
		Encounters [][]enemyJSON `json:"encounters"`
	}
	if err := json.Unmarshal(a.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Encounters) != 5 {
		t.Fatalf("%d encounters", len(resp.Encounters))
	}
	for _, g := range resp.Encounters {
		if len(g) == 0 {
			t.Error("empty encounter")
		}
	}
}

func TestSimulations(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/simulations",
		`{"seed": 3, "battles": 2, "leader_class": "FIGHTER", "level": 10, "enemies": [{"species": "SLIME", "level": 1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var rep game.SimReport
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Battles != 2 || rep.Victories != 2 {
		t.Errorf("report = %+v", rep)
	}
}

func TestBadRequests(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name, path, body string
	}{
		{"malformed json", "/api/simulations", `{"battles":`},
		{"unknown class", "/api/simulations", `{"battles": 1, "leader_class": "BARD"}`},
		{"no battles", "/api/simulations", `{"battles": 0}`},
		{"too many battles", "/api/simulations", `{"battles": 100000}`},
		{"duplicate companions", "/api/encounters", `{"companions": ["THIEF", "THIEF"]}`},
		{"too many encounters", "/api/encounters", `{"count": 1000}`},
		{"level too high", "/api/encounters", `{"level": 1000000}`},
		{"enemy level too high", "/api/simulations", `{"battles": 1, "enemies": [{"species": "DRAGON", "level": 2305843009213693951}]}`},
		{"enemy level zero", "/api/simulations", `{"battles": 1, "enemies": [{"species": "SLIME", "level": 0}]}`},
		{"too many enemies", "/api/simulations", `{"battles": 1, "enemies": [` + strings.TrimSuffix(strings.Repeat(`{"species": "SLIME", "level": 1},`, 9), ",") + `]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, r, http.MethodPost, tt.path, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", w.Code, w.Body)
			}
		})
	}
}
