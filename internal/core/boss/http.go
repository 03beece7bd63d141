// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package boss

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
	section  = "bosses"
	basePath = "/bosses"
	noun     = "boss"
)

// # Handler Implementation

// Handler serves the boss section of the UI and the boss JSON API.
type Handler struct {
	service  *Service
	renderer *render.Renderer
}

// NewHandler constructs a new boss [Handler].
func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// Routes returns the HTML routes, mounted at /bosses.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.page)
	router.Get("/grid", handler.grid)
	router.Get("/{id}", handler.detail)

	return router
}

// APIRoutes returns the JSON routes, mounted at /api/bosses.
func (handler *Handler) APIRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBosses)
	router.Get("/{id}", handler.getBoss)

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

	// 3. Populate the filter and sort inputs
	difficulties, _ := handler.service.Difficulties(ctx)

	page := render.Page{
		Lang:      lang,
		Section:   section,
		Path:      basePath,
		Term:      query.Term,
		SearchKey: "search.bosses",
		Selects: []render.Select{
			handler.renderer.EnumSelect(lang, ParamDifficulty, "filter.difficulty", entity.All, query.Difficulty, difficulties),
			handler.renderer.ChoiceSelect(lang, ParamOrder, "sort.label", query.SortMode(),
				render.Choice{Value: SortProgression, LabelKey: "sort.progression"},
				render.Choice{Value: SortAlphabetical, LabelKey: "sort.alphabetical"},
			),
		},
		ResetHref: basePath,
		Grid:      grid,
	}

	// 4. Open the overlay when ?detail= names a known boss
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
	handler.renderer.HTML(writer, request, status, "boss_grid", grid)
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

func (handler *Handler) buildGrid(ctx context.Context, lang language.Tag, query Query) (render.Grid, int) {
	grid := render.Grid{Lang: lang}

	bosses, err := handler.service.List(ctx, query)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "boss_grid_unavailable", slog.Any("error", err))
		grid.Failed = true
		grid.ErrorKey = "error.bosses"
		return grid, statusOf(err)
	}

	grid.Count = handler.renderer.Bundle().Count(lang, noun, len(bosses))
	grid.Empty = len(bosses) == 0
	grid.Cards = slice.Map(bosses, func(boss Boss) CardView {
		return newCardView(handler.renderer, lang, basePath, query, boss)
	})
	return grid, http.StatusOK
}

func (handler *Handler) buildDetail(ctx context.Context, lang language.Tag, query Query, id int) (*render.Detail, bool) {
	boss, err := handler.service.Get(ctx, id)
	if err != nil {
		return nil, false
	}

	return &render.Detail{
		Lang:      lang,
		Section:   section,
		CloseHref: render.Href(basePath, query.Values()),
		View:      newDetailView(handler.renderer, lang, *boss),
	}, true
}

// # JSON Endpoints

/*
GET /api/bosses.

Request:
  - q: string (case-insensitive search over name, description and summon)
  - difficulty: string (exact, "all" disables)
  - order: "progression" (default) | "alphabetical"

Response:
  - 200: []Boss: the visible subset, sorted
  - 503: DATASET_UNAVAILABLE
*/
func (handler *Handler) listBosses(writer http.ResponseWriter, request *http.Request) {
	bosses, err := handler.service.List(request.Context(), QueryFromValues(request.URL.Query()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, bosses, len(bosses))
}

/*
GET /api/bosses/{id}.

Response:
  - 200: Boss
  - 400: VALIDATION_ERROR for a non-numeric id
  - 404: NOT_FOUND
*/
func (handler *Handler) getBoss(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.ValidationError("Invalid boss id",
			apperr.FieldError{Field: "id", Message: "Must be an integer"}))
		return
	}

	boss, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, boss)
}

func statusOf(err error) int {
	if appError := apperr.As(err); appError != nil {
		return appError.HTTPStatus
	}
	return http.StatusInternalServerError
}
