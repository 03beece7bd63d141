// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/core/item"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
	"github.com/taibuivan/grimoire/internal/platform/i18n"
	"github.com/taibuivan/grimoire/internal/platform/render"
)

func newRouter(t *testing.T, dataset item.Dataset) http.Handler {
	t.Helper()

	renderer, err := render.New(i18n.New(language.Portuguese), discardLogger())
	require.NoError(t, err)

	handler := item.NewHandler(item.NewService(dataset, discardLogger()), renderer)
	router := chi.NewRouter()
	router.Mount("/items", handler.Routes())
	router.Mount("/api/items", handler.APIRoutes())
	return router
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHandler_Page(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/items?q=sword")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, "Exibindo 1 item")
	assert.Contains(t, body, "Iron Sword")
	assert.NotContains(t, body, "Gold Shield")
	assert.NotContains(t, body, `id="detailModal"`)
}

func TestHandler_Page_OpensOverlay(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/items?detail=1")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `id="detailModal"`)
	assert.Contains(t, body, `data-entity="1"`)
	assert.Contains(t, body, `<a class="close-modal" href="/items"`)
	assert.Contains(t, body, "Dano")
	assert.NotContains(t, body, "Defesa")
}

func TestHandler_Page_UnknownDetailIsNoOp(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/items?detail=42")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `id="detailModal"`)
}

func TestHandler_Grid_Empty(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/items/grid?q=axe")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, "Exibindo 0 itens")
	assert.Contains(t, body, "Nenhum resultado encontrado")
}

func TestHandler_Grid_DatasetUnavailable(t *testing.T) {
	router := newRouter(t, fakeDataset{err: apperr.DatasetUnavailable(errors.New("boom"))})

	recorder := serve(router, "/items/grid")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Erro ao carregar os itens")
}

func TestHandler_Grid_EscapesEntityText(t *testing.T) {
	items := []item.Item{{ID: 7, Name: "<script>alert(1)</script>", Category: "Weapon", Rarity: "Common"}}
	router := newRouter(t, fakeDataset{items: items})

	body := serve(router, "/items/grid").Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestHandler_Detail(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/items/2?rarity=Rare")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Gold Shield")
	assert.Contains(t, recorder.Body.String(), `href="/items?rarity=Rare"`)

	assert.Equal(t, http.StatusNoContent, serve(router, "/items/99").Code)
	assert.Equal(t, http.StatusNoContent, serve(router, "/items/abc").Code)
}

func TestHandler_API(t *testing.T) {
	router := newRouter(t, fakeDataset{items: fixture()})

	recorder := serve(router, "/api/items?rarity=Rare")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data  []item.Item `json:"data"`
		Total int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Total)
	assert.Equal(t, []int{2, 3}, ids(envelope.Data))

	assert.Equal(t, http.StatusNotFound, serve(router, "/api/items/99").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, "/api/items/abc").Code)
	assert.Equal(t, http.StatusOK, serve(router, "/api/items/1").Code)
}
