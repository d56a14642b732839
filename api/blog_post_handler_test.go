package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bazarche/bazarche-backend/database"
	"github.com/bazarche/bazarche-backend/models"
)

// stubPostStore backs the post handlers with an in-memory post set.
type stubPostStore struct {
	posts map[uuid.UUID]*models.BlogPost
}

func (s *stubPostStore) Find(context.Context, database.PostFilter) ([]*models.BlogPost, int64, error) {
	return nil, 0, nil
}

func (s *stubPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return post, nil
}

func (s *stubPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubPostStore) Add(*models.BlogPost) error    { return nil }
func (s *stubPostStore) Update(*models.BlogPost) error { return nil }
func (s *stubPostStore) Delete(uuid.UUID) error        { return nil }

func (s *stubPostStore) PostsByCategory(context.Context, uuid.UUID, int) ([]models.BlogPost, error) {
	return nil, nil
}

func (s *stubPostStore) PostsByTag(context.Context, string, int) ([]models.BlogPost, error) {
	return nil, nil
}

func (s *stubPostStore) PostsOnOrBefore(context.Context, time.Time, int) ([]models.BlogPost, error) {
	return nil, nil
}

func (s *stubPostStore) PostsOnOrAfter(context.Context, time.Time, int) ([]models.BlogPost, error) {
	return nil, nil
}

func requestWithPostID(id uuid.UUID) *http.Request {
	r := httptest.NewRequest("GET", "/blog-post/"+id.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("blogPostID", id.String())
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDraftPostHiddenFromPublicEndpoints(t *testing.T) {
	draft := &models.BlogPost{
		ID:     uuid.New(),
		Slug:   "unfinished",
		Title:  "Unfinished",
		Status: models.PostStatusDraft,
	}
	h := newBlogPostHandler(&stubPostStore{posts: map[uuid.UUID]*models.BlogPost{draft.ID: draft}}, nil)

	endpoints := map[string]http.HandlerFunc{
		"get":        h.getBlogPost(),
		"related":    h.getRelatedPosts(),
		"navigation": h.getPostNavigation(),
	}
	for name, endpoint := range endpoints {
		w := httptest.NewRecorder()
		endpoint(w, requestWithPostID(draft.ID))
		require.Equal(t, http.StatusNotFound, w.Code, "%s endpoint returned a draft post", name)
	}
}

func TestPublishedPostVisibleOnPublicEndpoints(t *testing.T) {
	now := time.Now()
	post := &models.BlogPost{
		ID:          uuid.New(),
		Slug:        "live",
		Title:       "Live",
		Status:      models.PostStatusPublished,
		PublishedAt: &now,
	}
	h := newBlogPostHandler(&stubPostStore{posts: map[uuid.UUID]*models.BlogPost{post.ID: post}}, nil)

	endpoints := map[string]http.HandlerFunc{
		"get":        h.getBlogPost(),
		"related":    h.getRelatedPosts(),
		"navigation": h.getPostNavigation(),
	}
	for name, endpoint := range endpoints {
		w := httptest.NewRecorder()
		endpoint(w, requestWithPostID(post.ID))
		require.Equal(t, http.StatusOK, w.Code, "%s endpoint rejected a published post", name)
	}
}

func TestParsePostFilterDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts", nil)

	filter, err := parsePostFilter(r, false)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusPublished, filter.Status)
	require.Equal(t, 10, filter.Limit)
	require.Equal(t, 0, filter.Offset)
	require.Equal(t, "desc", filter.SortOrder)
	require.Nil(t, filter.CategoryID)
	require.Nil(t, filter.StartDate)
	require.Nil(t, filter.EndDate)
}

func TestParsePostFilterFullQuery(t *testing.T) {
	categoryID := uuid.New()
	r := httptest.NewRequest("GET",
		"/posts?categoryId="+categoryID.String()+
			"&tag=golang&q=search&limit=5&offset=10"+
			"&startDate=2025-01-01T00:00:00Z&endDate=2025-02-01T00:00:00Z"+
			"&sortBy=publishedAt&sortOrder=asc", nil)

	filter, err := parsePostFilter(r, false)
	require.NoError(t, err)
	require.NotNil(t, filter.CategoryID)
	require.Equal(t, categoryID, *filter.CategoryID)
	require.Equal(t, "golang", filter.Tag)
	require.Equal(t, "search", filter.Search)
	require.Equal(t, 5, filter.Limit)
	require.Equal(t, 10, filter.Offset)
	require.Equal(t, "asc", filter.SortOrder)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), filter.StartDate.UTC())
	require.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), filter.EndDate.UTC())
}

func TestParsePostFilterPublicListingPinsStatus(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts?status=draft", nil)
	_, err := parsePostFilter(r, false)
	require.Error(t, err)

	r = httptest.NewRequest("GET", "/posts?status=published", nil)
	filter, err := parsePostFilter(r, false)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusPublished, filter.Status)
}

func TestParsePostFilterAdminListingAllowsAnyStatus(t *testing.T) {
	r := httptest.NewRequest("GET", "/admin/blog-posts?status=draft", nil)
	filter, err := parsePostFilter(r, true)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusDraft, filter.Status)

	// No status filter at all on the admin listing.
	r = httptest.NewRequest("GET", "/admin/blog-posts", nil)
	filter, err = parsePostFilter(r, true)
	require.NoError(t, err)
	require.Empty(t, filter.Status)
}

func TestParsePostFilterRejectsBadInput(t *testing.T) {
	for _, query := range []string{
		"categoryId=not-a-uuid",
		"limit=0",
		"limit=abc",
		"offset=-1",
		"startDate=yesterday",
		"endDate=2025-13-01",
		"sortBy=title",
		"sortOrder=sideways",
	} {
		r := httptest.NewRequest("GET", "/posts?"+query, nil)
		_, err := parsePostFilter(r, false)
		require.Error(t, err, "query %q should be rejected", query)
	}
}

func TestParsePostFilterCapsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/posts?limit=5000", nil)
	filter, err := parsePostFilter(r, false)
	require.NoError(t, err)
	require.Equal(t, 100, filter.Limit)
}
