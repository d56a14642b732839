package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/analytics"
	"github.com/bazarche/bazarche-backend/database"
	"github.com/bazarche/bazarche-backend/errs"
	"github.com/bazarche/bazarche-backend/models"
	"github.com/bazarche/bazarche-backend/related"
)

// blogPostStore is the post storage surface the handler reads and writes,
// satisfied by *database.BlogPostRepo.
type blogPostStore interface {
	related.PostStore
	Find(ctx context.Context, filter database.PostFilter) ([]*models.BlogPost, int64, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id uuid.UUID) error
}

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo blogPostStore
	blogTagRepo  *database.BlogTagRepo
}

func newBlogPostHandler(blogPostRepo blogPostStore, blogTagRepo *database.BlogTagRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		blogTagRepo:  blogTagRepo,
	}
}

// PostView is a blog post enriched with derived content analytics
type PostView struct {
	models.BlogPost
	WordCount   int `json:"wordCount"`
	ReadingTime int `json:"readingTime"`
}

// PostCollection represents a page of blog posts
type PostCollection struct {
	Posts []PostView `json:"posts"`
	Total int64      `json:"total"`
}

// NavigationView holds the prev/next posts adjacent to a source post
type NavigationView struct {
	Previous *PostView `json:"previous"`
	Next     *PostView `json:"next"`
}

func newPostView(post models.BlogPost) PostView {
	words, minutes := analytics.Analyze(post.Content)
	return PostView{BlogPost: post, WordCount: words, ReadingTime: minutes}
}

func newPostViews(posts []models.BlogPost) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newPostView(p))
	}
	return views
}

// parsePostFilter reads the posts listing query parameters. When
// adminListing is false the status filter is pinned to published.
func parsePostFilter(r *http.Request, adminListing bool) (database.PostFilter, error) {
	q := r.URL.Query()
	filter := database.PostFilter{
		Status: models.PostStatusPublished,
		Limit:  10,
	}

	if status := q.Get("status"); status != "" {
		if !adminListing && status != models.PostStatusPublished {
			return filter, errs.NewBadRequestErrorWithField("invalid status", "status", "only published posts are listed here")
		}
		filter.Status = status
	} else if adminListing {
		filter.Status = ""
	}

	if categoryIDStr := q.Get("categoryId"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			return filter, errs.NewBadRequestErrorWithField("invalid categoryId", "categoryId", err.Error())
		}
		filter.CategoryID = &categoryID
	}

	filter.Tag = q.Get("tag")
	filter.Search = q.Get("q")

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filter, errs.NewBadRequestErrorWithField("invalid limit", "limit", "limit must be a positive integer")
		}
		if limit > 100 {
			limit = 100
		}
		filter.Limit = limit
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filter, errs.NewBadRequestErrorWithField("invalid offset", "offset", "offset must be a non-negative integer")
		}
		filter.Offset = offset
	}

	if startDateStr := q.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(time.RFC3339, startDateStr)
		if err != nil {
			return filter, errs.NewBadRequestErrorWithField("invalid startDate", "startDate", "expected an ISO-8601 timestamp")
		}
		filter.StartDate = &startDate
	}
	if endDateStr := q.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(time.RFC3339, endDateStr)
		if err != nil {
			return filter, errs.NewBadRequestErrorWithField("invalid endDate", "endDate", "expected an ISO-8601 timestamp")
		}
		filter.EndDate = &endDate
	}

	if sortBy := q.Get("sortBy"); sortBy != "" && sortBy != "publishedAt" {
		return filter, errs.NewBadRequestErrorWithField("invalid sortBy", "sortBy", "posts sort by publishedAt only")
	}
	switch order := q.Get("sortOrder"); order {
	case "", "desc":
		filter.SortOrder = "desc"
	case "asc":
		filter.SortOrder = "asc"
	default:
		return filter, errs.NewBadRequestErrorWithField("invalid sortOrder", "sortOrder", "sortOrder must be asc or desc")
	}

	return filter, nil
}

// listPosts retrieves a filtered page of published blog posts
// @Summary List blog posts
// @Description Lists published blog posts filtered by category, tag, search text and publish-date range
// @Tags Blog Posts
// @Produce json
// @Success 200 {object} PostCollection "Page of blog posts"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter parameter"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /posts [get]
func (h blogPostHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parsePostFilter(r, false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts, total, err := h.blogPostRepo.Find(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, p := range posts {
			views = append(views, newPostView(*p))
		}
		h.responder.WriteJSON(w, PostCollection{Posts: views, Total: total})
	}
}

// listAllPosts is the admin listing; drafts and archived posts included.
func (h blogPostHandler) listAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parsePostFilter(r, true)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts, total, err := h.blogPostRepo.Find(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, p := range posts {
			views = append(views, newPostView(*p))
		}
		h.responder.WriteJSON(w, PostCollection{Posts: views, Total: total})
	}
}

// getBlogPost retrieves a specific blog post by ID
// @Summary Get blog post
// @Description Retrieves a blog post by ID with its tags and derived analytics
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} PostView "Blog post details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /blog-post/{blogPostID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.postFromURL(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !post.IsPublished() {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}
		h.responder.WriteJSON(w, newPostView(*post))
	}
}

// getBlogPostBySlug retrieves a published blog post by its slug
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if !post.IsPublished() {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, newPostView(*post))
	}
}

// getRelatedPosts resolves up to N posts topically close to the source post
// @Summary Get related posts
// @Description Resolves related posts via shared category, then shared tags, sorted by publish date descending
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path string true "Blog Post ID" format(uuid)
// @Param limit query int false "Maximum related posts to return" default(3)
// @Success 200 {object} PostCollection "Related posts"
// @Router /blog-post/{blogPostID}/related [get]
func (h blogPostHandler) getRelatedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.postFromURL(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !post.IsPublished() {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		limit := related.DefaultLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid limit", "limit", "limit must be a positive integer"))
				return
			}
			limit = parsed
		}

		posts := related.Posts(r.Context(), h.blogPostRepo, *post, limit)
		views := newPostViews(posts)
		h.responder.WriteJSON(w, PostCollection{Posts: views, Total: int64(len(views))})
	}
}

// getPostNavigation resolves the posts adjacent to the source in publish-time order
// @Summary Get post navigation
// @Description Returns the previous and next published posts in publish-time order
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} NavigationView "Previous and next posts"
// @Router /blog-post/{blogPostID}/navigation [get]
func (h blogPostHandler) getPostNavigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.postFromURL(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !post.IsPublished() {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		nav := related.Navigate(r.Context(), h.blogPostRepo, *post)

		var view NavigationView
		if nav.Previous != nil {
			v := newPostView(*nav.Previous)
			view.Previous = &v
		}
		if nav.Next != nil {
			v := newPostView(*nav.Next)
			view.Next = &v
		}
		h.responder.WriteJSON(w, view)
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post; publishing immediately stamps the publish date
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body models.BlogPost true "Blog post data"
// @Success 201 {object} PostView "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Router /admin/blog-post [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if post.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("slug is required"))
			return
		}
		if post.Content == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("content is required"))
			return
		}

		switch post.Status {
		case "":
			post.Status = models.PostStatusDraft
		case models.PostStatusDraft, models.PostStatusPublished, models.PostStatusArchived:
		default:
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid status", "status", "status must be draft, published or archived"))
			return
		}

		// Publishing stamps the publish date exactly once.
		if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}

		// Extract tags before creating the blog post
		tags := post.Tags
		post.Tags = nil

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		for i := range tags {
			tags[i].BlogPostID = post.ID
			if tags[i].ID == uuid.Nil {
				tags[i].ID = uuid.New()
			}
			if err := h.blogTagRepo.Add(&tags[i]); err != nil {
				h.logger.Error().Err(err).Str("tag_value", tags[i].Value).Msg("Failed to create blog tag")
				// Continue creating other tags even if one fails
			}
		}

		createdPost, err := h.blogPostRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newPostView(*createdPost))
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Updates a blog post; a draft transitioning to published gets its publish date set
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPostID path string true "Blog Post ID" format(uuid)
// @Param blogPost body models.BlogPost true "Updated blog post data"
// @Success 200 {object} PostView "Updated blog post"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /admin/blog-post/{blogPostID} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseBlogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Ensure ID matches
		post.ID = blogPostID
		post.CreatedAt = existing.CreatedAt

		if post.Status == "" {
			post.Status = existing.Status
		}
		switch post.Status {
		case models.PostStatusDraft, models.PostStatusPublished, models.PostStatusArchived:
		default:
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid status", "status", "status must be draft, published or archived"))
			return
		}

		// A draft transitioning to published gets the publish date stamped;
		// archiving keeps it so the record preserves its timeline position.
		if post.PublishedAt == nil {
			post.PublishedAt = existing.PublishedAt
		}
		if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}

		now := time.Now()
		post.UpdatedAt = &now

		// Replace tags wholesale when the payload carries any.
		tags := post.Tags
		post.Tags = nil

		if err := h.blogPostRepo.Update(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		if tags != nil {
			if err := h.blogTagRepo.DeleteForPost(blogPostID); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("replace blog tags", "blog_tags", err))
				return
			}
			for i := range tags {
				tags[i].BlogPostID = blogPostID
				if tags[i].ID == uuid.Nil {
					tags[i].ID = uuid.New()
				}
				if err := h.blogTagRepo.Add(&tags[i]); err != nil {
					h.logger.Error().Err(err).Str("tag_value", tags[i].Value).Msg("Failed to create blog tag")
				}
			}
		}

		updatedPost, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, newPostView(*updatedPost))
	}
}

// deleteBlogPost deletes a blog post by ID
// @Summary Delete blog post
// @Description Deletes a blog post from the database by ID
// @Tags Blog Posts
// @Produce json
// @Param blogPostID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Router /admin/blog-post/{blogPostID} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseBlogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.blogPostRepo.FindByID(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

func (h blogPostHandler) postFromURL(r *http.Request) (*models.BlogPost, error) {
	blogPostID, err := parseBlogPostID(r)
	if err != nil {
		return nil, err
	}
	post, err := h.blogPostRepo.FindByID(blogPostID)
	if err != nil {
		return nil, wrapDatabaseError("find blog post", "blog_post", err)
	}
	return post, nil
}

func parseBlogPostID(r *http.Request) (uuid.UUID, error) {
	blogPostIDStr := chi.URLParam(r, "blogPostID")
	if blogPostIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing blogPostID")
	}
	blogPostID, err := uuid.Parse(blogPostIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid blogPostID")
	}
	return blogPostID, nil
}
