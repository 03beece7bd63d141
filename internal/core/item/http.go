// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/core/entity"
	"github.com/taibuivan/grimoire/internal/platform/apperr"
	"github.com/taibuivan/grimoire/internal/platform/constants"
	"github.com/taibuivan/grimoire/internal/platform/ctxutil"
	"github.com/taibuivan/grimoire/internal/platform/render"
	requestutil "github.com/taibuivan/grimoire/internal/platform/request"
	"github.com/taibuivan/grimoire/internal/platform/respond"
	"github.com/taibuivan/grimoire/pkg/slice"
)

const (
	section  = "items"
	basePath = "/items"
	noun     = "item"
)

// # Handler Implementation

// Handler serves the item section of the UI and the item JSON API.
type Handler struct {
	service  *Service
	renderer *render.Renderer
}

// NewHandler constructs a new item [Handler].
func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// Routes returns the HTML routes, mounted at /items.
//
//   - GET /          full page, overlay open when ?detail=<id> names an item
//   - GET /grid      count + grid fragment for the current query
//   - GET /{id}      overlay fragment; 204 when the id is unknown
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.page)
	router.Get("/grid", handler.grid)
	router.Get("/{id}", handler.detail)

	return router
}

// APIRoutes returns the JSON routes, mounted at /api/items.
func (handler *Handler) APIRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)

	return router
}

// # HTML Endpoints

func (handler *Handler) page(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	lang := ctxutil.GetLanguage(ctx)

	// 1. Parse the query state from the URL
	query := QueryFromValues(request.URL.Query())

	// 2. Evaluate the grid
	grid, status := handler.buildGrid(ctx, lang, query)

	// 3. Populate the filter inputs (a failed dataset leaves the sentinel only)
	categories, rarities, _ := handler.service.Options(ctx)

	page := render.Page{
		Lang:      lang,
		Section:   section,
		Path:      basePath,
		Term:      query.Term,
		SearchKey: "search.items",
		Selects: []render.Select{
			handler.renderer.EnumSelect(lang, ParamCategory, "filter.category", entity.All, query.Category, categories),
			handler.renderer.EnumSelect(lang, ParamRarity, "filter.rarity", entity.All, query.Rarity, rarities),
		},
		ResetHref: basePath,
		Grid:      grid,
	}

	// 4. Open the overlay when ?detail= names a known item
	if id, ok := requestutil.IntQuery(request, constants.ParamDetail); ok {
		if detail, found := handler.buildDetail(ctx, lang, query, id); found {
			page.Overlay.Open(id)
			page.Detail = detail
		}
	}

	// 5. Render
	handler.renderer.HTML(writer, request, status, "page", page)
}

func (handler *Handler) grid(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	lang := ctxutil.GetLanguage(ctx)

	grid, status := handler.buildGrid(ctx, lang, QueryFromValues(request.URL.Query()))
	handler.renderer.HTML(writer, request, status, "item_grid", grid)
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.NoContent(writer)
		return
	}

	detail, found := handler.buildDetail(ctx, ctxutil.GetLanguage(ctx), QueryFromValues(request.URL.Query()), id)
	if !found {
		respond.NoContent(writer)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "overlay", detail)
}

// buildGrid evaluates query and maps the visible subset to cards. A dataset
// failure yields the error view and its status.
func (handler *Handler) buildGrid(ctx context.Context, lang language.Tag, query Query) (render.Grid, int) {
	grid := render.Grid{Lang: lang}

	items, err := handler.service.List(ctx, query)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "item_grid_unavailable", slog.Any("error", err))
		grid.Failed = true
		grid.ErrorKey = "error.items"
		return grid, statusOf(err)
	}

	grid.Count = handler.renderer.Bundle().Count(lang, noun, len(items))
	grid.Empty = len(items) == 0
	grid.Cards = slice.Map(items, func(item Item) CardView {
		return newCardView(handler.renderer, lang, basePath, query, item)
	})
	return grid, http.StatusOK
}

// buildDetail looks id up. Unknown ids and an unavailable dataset report
// not found so the caller leaves the overlay as it was.
func (handler *Handler) buildDetail(ctx context.Context, lang language.Tag, query Query, id int) (*render.Detail, bool) {
	item, err := handler.service.Get(ctx, id)
	if err != nil {
		return nil, false
	}

	return &render.Detail{
		Lang:      lang,
		Section:   section,
		CloseHref: render.Href(basePath, query.Values()),
		View:      newDetailView(handler.renderer, lang, *item),
	}, true
}

// # JSON Endpoints

/*
GET /api/items.

Request:
  - q: string (case-insensitive search over name and description)
  - category: string (exact, "all" disables)
  - rarity: string (exact, "all" disables)

Response:
  - 200: []Item: the visible subset in dataset order
  - 503: DATASET_UNAVAILABLE
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context(), QueryFromValues(request.URL.Query()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, items, len(items))
}

/*
GET /api/items/{id}.

Response:
  - 200: Item
  - 400: VALIDATION_ERROR for a non-numeric id
  - 404: NOT_FOUND
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.ValidationError("Invalid item id",
			apperr.FieldError{Field: "id", Message: "Must be an integer"}))
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func statusOf(err error) int {
	if appError := apperr.As(err); appError != nil {
		return appError.HTTPStatus
	}
	return http.StatusInternalServerError
}
