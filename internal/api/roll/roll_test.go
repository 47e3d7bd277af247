package roll

import (
	"context"
	"encoding/json"
	dto "game_roulette/internal/api/dto/roll"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	rollServ "game_roulette/internal/service/roll"
	"game_roulette/pkg/realtime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type fakeRoll struct {
	rollErr    error
	customID   string
	categories []model.Category
	games      map[string][]model.Game
	disabled   map[string]bool
	state      model.RouletteState
	bus        *realtime.Broadcaster[model.RollEvent]
}

func newFakeRoll() *fakeRoll {
	return &fakeRoll{
		categories: []model.Category{{ID: "rpg", Name: "RPG", Icon: "⚔️", Games: []string{"Gothic"}}},
		games:      map[string][]model.Game{"rpg": {{ID: "rpg-gothic", Name: "Gothic", CategoryID: "rpg"}}},
		disabled:   map[string]bool{},
		bus:        realtime.NewBroadcaster[model.RollEvent](8),
	}
}

func (f *fakeRoll) RollCategory(context.Context) error { return f.rollErr }
func (f *fakeRoll) RollGame(context.Context) error     { return f.rollErr }

func (f *fakeRoll) RollCustom(_ context.Context, wheelID string) error {
	f.customID = wheelID
	return f.rollErr
}

func (f *fakeRoll) Categories(context.Context) ([]model.Category, error) { return f.categories, nil }

func (f *fakeRoll) Games(_ context.Context, id string) ([]model.Game, error) {
	games, ok := f.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return games, nil
}

func (f *fakeRoll) SelectCategory(_ context.Context, id string) (*model.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.state.SelectedCategory = &f.categories[i]
			return &f.categories[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoll) ToggleCategory(id string) bool {
	f.disabled[id] = !f.disabled[id]
	return f.disabled[id]
}

func (f *fakeRoll) State() model.RouletteState { return f.state }

func (f *fakeRoll) Subscribe() chan model.RollEvent     { return f.bus.Subscribe() }
func (f *fakeRoll) Unsubscribe(ch chan model.RollEvent) { f.bus.Unsubscribe(ch) }
func (f *fakeRoll) Close()                              { f.bus.Close() }

func newRouter(serv *fakeRoll) chi.Router {
	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Post("/roll/category", h.RollCategory)
	r.Post("/roll/custom/{wheelID}", h.RollCustom)
	r.Get("/roll/stream", h.Stream)
	r.Get("/categories", h.Categories)
	r.Post("/categories/{id}/select", h.SelectCategory)
	r.Post("/categories/{id}/toggle", h.ToggleCategory)
	return r
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRollCategory_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{nil, http.StatusAccepted},
		{rollServ.ErrBusy, http.StatusConflict},
		{rollServ.ErrNothingToRoll, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		serv := newFakeRoll()
		serv.rollErr = c.err
		w := do(newRouter(serv), http.MethodPost, "/roll/category")
		if w.Code != c.code {
			t.Errorf("err %v: got %d, want %d", c.err, w.Code, c.code)
		}
	}
}

func TestRollCustom_PassesWheelID(t *testing.T) {
	serv := newFakeRoll()
	w := do(newRouter(serv), http.MethodPost, "/roll/custom/challenges")
	if w.Code != http.StatusAccepted {
		t.Fatalf("got %d", w.Code)
	}
	if serv.customID != "challenges" {
		t.Errorf("wheel id %q", serv.customID)
	}
}

func TestCategories_MarksDisabled(t *testing.T) {
	serv := newFakeRoll()
	serv.state.DisabledCategories = []string{"rpg"}

	w := do(newRouter(serv), http.MethodGet, "/categories")
	var got []dto.Category
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Disabled {
		t.Errorf("categories %+v", got)
	}
}

func TestSelectAndToggleCategory(t *testing.T) {
	serv := newFakeRoll()
	r := newRouter(serv)

	w := do(r, http.MethodPost, "/categories/rpg/select")
	var state dto.StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.SelectedCategory == nil || state.SelectedCategory.ID != "rpg" {
		t.Errorf("selected %+v", state.SelectedCategory)
	}

	if w := do(r, http.MethodPost, "/categories/missing/select"); w.Code != http.StatusNotFound {
		t.Errorf("unknown select: %d", w.Code)
	}

	w = do(r, http.MethodPost, "/categories/rpg/toggle")
	var toggle dto.ToggleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &toggle); err != nil {
		t.Fatal(err)
	}
	if !toggle.Disabled || toggle.ID != "rpg" {
		t.Errorf("toggle %+v", toggle)
	}

	if w := do(r, http.MethodPost, "/categories/missing/toggle"); w.Code != http.StatusNotFound {
		t.Errorf("unknown toggle: %d", w.Code)
	}
	if serv.disabled["missing"] {
		t.Error("unknown category must not be toggled")
	}
}

func TestStream_SendsStateThenEvents(t *testing.T) {
	serv := newFakeRoll()
	serv.state.GameResult = "Gothic"
	srv := httptest.NewServer(newRouter(serv))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/roll/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var hello dto.StateMessage
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read state: %v", err)
	}
	if hello.Type != "state" || hello.State.GameResult != "Gothic" {
		t.Errorf("first message %+v", hello)
	}

	item := model.WheelEntry{ID: "rpg", Name: "RPG"}
	serv.bus.Publish(model.RollEvent{
		Wheel: model.WheelCategory,
		Type:  model.EventSettled,
		Frame: model.WheelFrame{Session: 3, Index: 0, Window: []model.WheelEntry{item}, Settled: true},
		Item:  &item,
	})

	var ev dto.RollEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Wheel != "category" || ev.Type != "settled" || ev.Session != 3 || ev.Item == nil || ev.Item.ID != "rpg" {
		t.Errorf("event %+v", ev)
	}

	// Остановка рулетки закрывает поток
	serv.Close()
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("stream should be closed after shutdown")
	}
}

func TestCheckOrigin(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/roll/stream", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	if !checkOrigin(nil)(req("http://evil.example")) {
		t.Error("empty list should allow everything")
	}
	if !checkOrigin([]string{"*"})(req("http://evil.example")) {
		t.Error("* should allow everything")
	}

	allow := checkOrigin([]string{"http://party.local"})
	if !allow(req("http://party.local")) {
		t.Error("listed origin rejected")
	}
	if allow(req("http://evil.example")) {
		t.Error("unlisted origin allowed")
	}
	if !allow(req("")) {
		t.Error("non-browser client rejected")
	}
}
