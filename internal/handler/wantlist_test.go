package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

func wantListRouter(svc *MockWantList) http.Handler {
	h := NewWantListHandler(svc)
	r := chi.NewRouter()
	r.Get("/wantlist", h.HandleList)
	r.Post("/wantlist", h.HandleAdd)
	r.Get("/wantlist/resolved", h.HandleResolved)
	r.Post("/wantlist/expand", h.HandleExpand)
	r.Delete("/wantlist/{id}", h.HandleRemove)
	return r
}

func post(t *testing.T, h http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestWantListHandler_List(t *testing.T) {
	svc := &MockWantList{}
	svc.On("List", mock.Anything).Return([]domain.WantListEntry{{ID: "e1", ItemID: "item-screw", Qty: 2}}, nil)

	w := serve(t, wantListRouter(svc), http.MethodGet, "/wantlist")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList[domain.WantListEntry](t, w)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "item-screw", resp.Data[0].ItemID)
}

func TestWantListHandler_ListEmpty(t *testing.T) {
	svc := &MockWantList{}
	svc.On("List", mock.Anything).Return(nil, nil)

	w := serve(t, wantListRouter(svc), http.MethodGet, "/wantlist")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestWantListHandler_Add(t *testing.T) {
	t.Run("stores entry", func(t *testing.T) {
		svc := &MockWantList{}
		stored := &domain.WantListEntry{ID: "e1", ItemID: "item-screw", Qty: 3, Reason: "bench", CreatedAt: time.Now()}
		svc.On("Add", mock.Anything, "Screw", 3, "bench").Return(stored, nil)

		w := post(t, wantListRouter(svc), "/wantlist", `{"item":"Screw","qty":3,"reason":"bench"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"e1"`)
		svc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &MockWantList{}

		w := post(t, wantListRouter(svc), "/wantlist", `{"item":"","qty":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"fields"`)
		svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, wantListRouter(&MockWantList{}), "/wantlist", `{"item":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := &MockWantList{}
		svc.On("Add", mock.Anything, "scerw", 1, "").
			Return(nil, fmt.Errorf("%w: scerw (did you mean item-screw?)", domain.ErrItemNotFound))

		w := post(t, wantListRouter(svc), "/wantlist", `{"item":"scerw","qty":1}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "did you mean item-screw")
	})
}

func TestWantListHandler_Remove(t *testing.T) {
	svc := &MockWantList{}
	svc.On("Remove", mock.Anything, "e1").Return(nil)
	svc.On("Remove", mock.Anything, "e2").Return(fmt.Errorf("remove: %w", domain.ErrWantListEntryNotFound))
	r := wantListRouter(svc)

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodDelete, "/wantlist/e1").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, r, http.MethodDelete, "/wantlist/e2").Code)
}

func TestWantListHandler_Resolved(t *testing.T) {
	svc := &MockWantList{}
	resolved := []domain.WantListResolvedEntry{{Entry: domain.WantListEntry{ItemID: "item-widget", Qty: 1}}}
	svc.On("Resolve", mock.Anything, []string{"Trinket", "Gadget"}).Return(resolved, nil)

	w := serve(t, wantListRouter(svc), http.MethodGet, "/wantlist/resolved?ignore=Trinket,%20Gadget,")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeList[domain.WantListResolvedEntry](t, w).Count)
	svc.AssertExpectations(t)
}

func TestWantListHandler_ResolvedWithoutIgnore(t *testing.T) {
	svc := &MockWantList{}
	svc.On("Resolve", mock.Anything, []string(nil)).Return([]domain.WantListResolvedEntry{}, nil)

	w := serve(t, wantListRouter(svc), http.MethodGet, "/wantlist/resolved")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestWantListHandler_ResolvedWithEmptyIgnore(t *testing.T) {
	svc := &MockWantList{}
	svc.On("Resolve", mock.Anything, []string{}).Return([]domain.WantListResolvedEntry{}, nil)

	w := serve(t, wantListRouter(svc), http.MethodGet, "/wantlist/resolved?ignore=")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestWantListHandler_Expand(t *testing.T) {
	t.Run("expands ad-hoc entries", func(t *testing.T) {
		svc := &MockWantList{}
		entries := []domain.WantListEntry{{ItemID: "item-widget", Qty: 2}}
		svc.On("Expand", mock.Anything, entries, []string{"Trinket"}).
			Return([]domain.WantListResolvedEntry{{Entry: entries[0]}}, nil)

		w := post(t, wantListRouter(svc), "/wantlist/expand", `{"entries":[{"itemId":"item-widget","qty":2}],"ignore":["Trinket"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"itemId":"item-widget"`)
		svc.AssertExpectations(t)
	})

	t.Run("rejects empty entries", func(t *testing.T) {
		w := post(t, wantListRouter(&MockWantList{}), "/wantlist/expand", `{"entries":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &MockWantList{}
		svc.On("Expand", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)

		w := post(t, wantListRouter(svc), "/wantlist/expand", `{"entries":[{"itemId":"item-widget","qty":2}]}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
