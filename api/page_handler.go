package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/analytics"
	"github.com/bazarche/bazarche-backend/database"
	"github.com/bazarche/bazarche-backend/errs"
	"github.com/bazarche/bazarche-backend/models"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	pageRepo  *database.PageRepo
}

func newPageHandler(pageRepo *database.PageRepo) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pageRepo:  pageRepo,
	}
}

// PageView is a page enriched with derived content analytics
type PageView struct {
	models.Page
	WordCount   int `json:"wordCount"`
	ReadingTime int `json:"readingTime"`
}

func newPageView(page models.Page) PageView {
	words, minutes := analytics.Analyze(page.Content)
	return PageView{Page: page, WordCount: words, ReadingTime: minutes}
}

func (h pageHandler) listPages(adminListing bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := h.pageRepo.FindAll(!adminListing)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find pages", "pages", err))
			return
		}

		views := make([]PageView, 0, len(pages))
		for _, p := range pages {
			views = append(views, newPageView(*p))
		}
		h.responder.WriteJSON(w, map[string]any{"pages": views, "total": len(views)})
	}
}

func (h pageHandler) getPageBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		page, err := h.pageRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find page", "page", err))
			return
		}
		if !page.Published {
			h.responder.WriteError(w, errs.NewNotFoundError("page not found"))
			return
		}

		h.responder.WriteJSON(w, newPageView(*page))
	}
}

func (h pageHandler) createPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var page models.Page
		if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if page.Title == "" || page.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title and slug are required"))
			return
		}

		if err := h.pageRepo.Add(&page); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create page", "page", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newPageView(page))
	}
}

func (h pageHandler) updatePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID, err := parseURLID(r, "pageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.pageRepo.FindByID(pageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find page", "page", err))
			return
		}

		var page models.Page
		if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		page.ID = pageID
		page.CreatedAt = existing.CreatedAt
		now := time.Now()
		page.UpdatedAt = &now

		if err := h.pageRepo.Update(&page); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update page", "page", err))
			return
		}

		h.responder.WriteJSON(w, newPageView(page))
	}
}

func (h pageHandler) deletePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID, err := parseURLID(r, "pageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.pageRepo.Delete(pageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete page", "page", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "page deleted successfully",
		})
	}
}
