package ginserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/asghar-0017/aparntment-frontend/internal/app/share"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/cache"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/config"
	ginserver "github.com/asghar-0017/aparntment-frontend/internal/infra/http/gin"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/obs"
)

// upstream fakes the external booking API and counts requests per path.
type upstream struct {
	mu      sync.Mutex
	hits    map[string]int
	bookErr string // non-empty makes /book answer 409 with this message
}

func (u *upstream) count(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[path]
}

func (u *upstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.hits[r.URL.Path]++
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/get-apparntment":
			_, _ = w.Write([]byte(`[{"_id":"a1","title":"Sea View","city":"Karachi","type":"studio","pricePerDay":5000,"amenities":["wifi"]}]`))
		case strings.HasPrefix(r.URL.Path, "/apartments/"):
			if strings.HasSuffix(r.URL.Path, "/missing") {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"apartment not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"_id":"a1","title":"Sea View","city":"Karachi","type":"studio","pricePerDay":5000,"amenities":["wifi"],"bookedDates":["2099-06-20"]}`))
		case r.URL.Path == "/book":
			if u.bookErr != "" {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"error":"` + u.bookErr + `"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true}`))
		case r.URL.Path == "/available":
			_, _ = w.Write([]byte(`[{"_id":"a1"}]`))
		case r.URL.Path == "/report":
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown endpoint"}`))
		}
	})
}

func newTestServer(t *testing.T, up *upstream) http.Handler {
	t.Helper()
	if up.hits == nil {
		up.hits = make(map[string]int)
	}
	backend := httptest.NewServer(up.handler())
	t.Cleanup(backend.Close)

	client := api.NewClient(backend.URL, time.Second, nil)
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	listings := cache.NewListings(store, time.Minute, nil)

	cfg := config.Config{Env: "test", HTTPAddr: ":0"}
	handlers := ginserver.Handlers{
		Listing: ginserver.ListingHandler{Catalog: client, Cache: listings, Availability: client},
		Booking: ginserver.BookingHandler{Catalog: client, Cache: listings, API: client},
		Share:   ginserver.ShareHandler{Catalog: client, Cache: listings, Share: share.NewService(client, "http://localhost:5173", "+923041513361")},
		Report:  ginserver.ReportHandler{API: client},
		Pages:   ginserver.PagesHandler{},
	}
	return ginserver.NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, handlers).Handler
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListApartments_CachesUpstream(t *testing.T) {
	up := &upstream{}
	h := newTestServer(t, up)

	w := doJSON(t, h, http.MethodGet, "/api/v1/apartments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("expected cache miss, got %q", got)
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/apartments", "")
	if got := w.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("expected cache hit, got %q", got)
	}
	if up.count("/get-apparntment") != 1 {
		t.Errorf("expected one upstream fetch, got %d", up.count("/get-apparntment"))
	}
}

func TestGetApartment_NotFound(t *testing.T) {
	h := newTestServer(t, &upstream{})
	w := doJSON(t, h, http.MethodGet, "/api/v1/apartments/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestBook_Success(t *testing.T) {
	up := &upstream{}
	h := newTestServer(t, up)

	body := `{"startDate":"2099-06-01","endDate":"2099-06-03","priceOption":"day","userDetails":{"name":"Ada","email":"ada@example.com","phone":"+44123"}}`
	w := doJSON(t, h, http.MethodPost, "/api/v1/apartments/a1/book", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status        string   `json:"status"`
		SelectedDates []string `json:"selectedDates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "booked" {
		t.Errorf("unexpected status %q", resp.Status)
	}
	want := []string{"2099-06-01", "2099-06-02", "2099-06-03"}
	if len(resp.SelectedDates) != len(want) {
		t.Fatalf("expected %v, got %v", want, resp.SelectedDates)
	}
	for i := range want {
		if resp.SelectedDates[i] != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], resp.SelectedDates[i])
		}
	}
	if up.count("/book") != 1 {
		t.Errorf("expected one upstream booking, got %d", up.count("/book"))
	}
}

func TestBook_IncompleteFormNeverReachesUpstream(t *testing.T) {
	up := &upstream{}
	h := newTestServer(t, up)

	body := `{"startDate":"2099-06-01","endDate":"2099-06-03","priceOption":"day","userDetails":{"name":"","email":"ada@example.com","phone":""}}`
	w := doJSON(t, h, http.MethodPost, "/api/v1/apartments/a1/book", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if up.count("/book") != 0 {
		t.Errorf("invalid draft must not reach upstream, got %d calls", up.count("/book"))
	}
}

func TestBook_TierNotOfferedRejectedLocally(t *testing.T) {
	up := &upstream{}
	h := newTestServer(t, up)

	// The listing only prices per day.
	body := `{"startDate":"2099-06-01","endDate":"2099-06-03","priceOption":"week","userDetails":{"name":"Ada","email":"ada@example.com","phone":"+44123"}}`
	w := doJSON(t, h, http.MethodPost, "/api/v1/apartments/a1/book", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if up.count("/book") != 0 {
		t.Errorf("tier mismatch must not reach upstream, got %d calls", up.count("/book"))
	}
}

func TestBook_RangeOverBookedDatesRejected(t *testing.T) {
	up := &upstream{}
	h := newTestServer(t, up)

	// 2099-06-20 is booked in the upstream fixture.
	body := `{"startDate":"2099-06-19","endDate":"2099-06-21","priceOption":"day","userDetails":{"name":"Ada","email":"ada@example.com","phone":"+44123"}}`
	w := doJSON(t, h, http.MethodPost, "/api/v1/apartments/a1/book", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "unavailable dates") {
		t.Errorf("expected unavailable-dates message, got %s", w.Body.String())
	}
	if up.count("/book") != 0 {
		t.Errorf("overlapping range must not reach upstream, got %d calls", up.count("/book"))
	}
}

func TestBook_ServerRejectionProxiesMessage(t *testing.T) {
	up := &upstream{bookErr: "dates no longer available"}
	h := newTestServer(t, up)

	body := `{"startDate":"2099-06-01","endDate":"2099-06-03","priceOption":"day","userDetails":{"name":"Ada","email":"ada@example.com","phone":"+44123"}}`
	w := doJSON(t, h, http.MethodPost, "/api/v1/apartments/a1/book", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "dates no longer available" {
		t.Errorf("expected server message, got %q", resp.Error)
	}
}

func TestAvailabilitySearch_ValidatesDates(t *testing.T) {
	h := newTestServer(t, &upstream{})

	w := doJSON(t, h, http.MethodGet, "/api/v1/apartments/availability?start_date=2099-06-01&end_date=2099-06-30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/apartments/availability?start_date=junk&end_date=2099-06-30", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPages(t *testing.T) {
	h := newTestServer(t, &upstream{})

	w := doJSON(t, h, http.MethodGet, "/api/v1/pages/faq", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Frequently Asked Questions") {
		t.Errorf("expected faq content, got %s", w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, "/api/v1/pages/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestShareLink(t *testing.T) {
	h := newTestServer(t, &upstream{})

	w := doJSON(t, h, http.MethodGet, "/api/v1/apartments/a1/share", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		URL      string `json:"url"`
		WhatsApp string `json:"whatsapp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL == "" || !strings.HasPrefix(resp.WhatsApp, "https://wa.me/") {
		t.Errorf("unexpected share payload: %+v", resp)
	}
}
