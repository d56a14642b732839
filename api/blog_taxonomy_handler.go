package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/database"
	"github.com/bazarche/bazarche-backend/errs"
	"github.com/bazarche/bazarche-backend/models"
)

type blogTaxonomyHandler struct {
	responder        Responder
	logger           zerolog.Logger
	blogCategoryRepo *database.BlogCategoryRepo
	blogAuthorRepo   *database.BlogAuthorRepo
	blogTagRepo      *database.BlogTagRepo
}

func newBlogTaxonomyHandler(blogCategoryRepo *database.BlogCategoryRepo, blogAuthorRepo *database.BlogAuthorRepo, blogTagRepo *database.BlogTagRepo) blogTaxonomyHandler {
	logger := log.With().Str("handlerName", "blogTaxonomyHandler").Logger()

	return blogTaxonomyHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		blogCategoryRepo: blogCategoryRepo,
		blogAuthorRepo:   blogAuthorRepo,
		blogTagRepo:      blogTagRepo,
	}
}

func (h blogTaxonomyHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.blogCategoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog categories", "blog_categories", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"categories": categories, "total": len(categories)})
	}
}

func (h blogTaxonomyHandler) listAuthors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := h.blogAuthorRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog authors", "blog_authors", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"authors": authors, "total": len(authors)})
	}
}

// listTags returns the distinct tag values across published posts.
func (h blogTaxonomyHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := h.blogTagRepo.DistinctValues()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog tags", "blog_tags", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"tags": values, "total": len(values)})
	}
}

func (h blogTaxonomyHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.BlogCategory
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if category.Name == "" || category.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and slug are required"))
			return
		}

		if err := h.blogCategoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog category", "blog_category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

func (h blogTaxonomyHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseURLID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.blogCategoryRepo.FindByID(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog category", "blog_category", err))
			return
		}

		var category models.BlogCategory
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		category.ID = categoryID

		if err := h.blogCategoryRepo.Update(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog category", "blog_category", err))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

func (h blogTaxonomyHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseURLID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogCategoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog category", "blog_category", err))
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog category deleted successfully",
		})
	}
}

func (h blogTaxonomyHandler) createAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var author models.BlogAuthor
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if author.Name == "" || author.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and slug are required"))
			return
		}

		if err := h.blogAuthorRepo.Add(&author); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog author", "blog_author", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, author)
	}
}

func (h blogTaxonomyHandler) updateAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := parseURLID(r, "authorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.blogAuthorRepo.FindByID(authorID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog author", "blog_author", err))
			return
		}

		var author models.BlogAuthor
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		author.ID = authorID

		if err := h.blogAuthorRepo.Update(&author); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog author", "blog_author", err))
			return
		}
		h.responder.WriteJSON(w, author)
	}
}

func (h blogTaxonomyHandler) deleteAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := parseURLID(r, "authorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogAuthorRepo.Delete(authorID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog author", "blog_author", err))
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog author deleted successfully",
		})
	}
}

func parseURLID(r *http.Request, param string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + param)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}
