// Package related resolves related-content recommendations for blog posts:
// a ranked list of topically close posts and the previous/next posts in
// publish-time order. Resolvers are pure functions over a PostStore; caching
// belongs to the store implementation, not to this package.
package related

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bazarche/bazarche-backend/models"
)

// DefaultLimit is the number of related posts resolved when the caller does
// not ask for a specific count.
const DefaultLimit = 3

// PostStore supplies published posts to the resolvers. Every method returns
// at most limit posts with status published.
type PostStore interface {
	// PostsByCategory returns posts in the category, newest first.
	PostsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.BlogPost, error)
	// PostsByTag returns posts carrying the tag, newest first.
	PostsByTag(ctx context.Context, tag string, limit int) ([]models.BlogPost, error)
	// PostsOnOrBefore returns posts with publishedAt <= t, sorted by
	// publishedAt descending then id descending.
	PostsOnOrBefore(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error)
	// PostsOnOrAfter returns posts with publishedAt >= t, sorted by
	// publishedAt ascending then id ascending.
	PostsOnOrAfter(ctx context.Context, t time.Time, limit int) ([]models.BlogPost, error)
}

// Navigation holds the posts adjacent to a source post in publish-time
// order. Either side is nil when no qualifying post exists.
type Navigation struct {
	Previous *models.BlogPost `json:"previous"`
	Next     *models.BlogPost `json:"next"`
}

// Posts returns up to limit posts related to source: same-category posts
// first, then posts sharing each of source's tags in order until the quota
// is met, deduplicated by id and sorted by publish date descending. The
// source post never appears in the result.
//
// A failed category or tag fetch contributes zero candidates and does not
// abort the remaining fetches, so a partial result is still returned.
func Posts(ctx context.Context, store PostStore, source models.BlogPost, limit int) []models.BlogPost {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Oversized pages tolerate the source post (and earlier picks) being
	// filtered out of each fetch.
	fetchLimit := 2 * limit

	seen := map[uuid.UUID]struct{}{source.ID: {}}
	var result []models.BlogPost

	if source.CategoryID != nil {
		posts, err := store.PostsByCategory(ctx, *source.CategoryID, fetchLimit)
		if err == nil {
			result = appendCandidates(result, posts, seen, limit)
		}
	}

	if len(result) < limit {
		for _, tag := range source.TagNames() {
			if len(result) >= limit {
				break
			}
			posts, err := store.PostsByTag(ctx, tag, fetchLimit)
			if err != nil {
				continue
			}
			result = appendCandidates(result, posts, seen, limit)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return publishedTime(result[i]).After(publishedTime(result[j]))
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// The boundary queries are inclusive, so a page can lead with the source
// post and any posts tied on its timestamp before the true neighbor shows
// up. scanBoundary starts small and widens; maxBoundaryWindow bounds the
// scan when an implausible number of posts share one timestamp.
const (
	boundaryWindow    = 2
	maxBoundaryWindow = 128
)

// Navigate returns the posts immediately before and after source in
// publish-time order. Unpublished posts (nil PublishedAt) have no position
// in the timeline, so both sides are nil. A failed fetch yields nil for
// that side only.
//
// Adjacency is decided by a strict (publishedAt, id) comparison so ties on
// the timestamp break deterministically by id.
func Navigate(ctx context.Context, store PostStore, source models.BlogPost) Navigation {
	if source.PublishedAt == nil {
		return Navigation{}
	}

	ts := *source.PublishedAt
	return Navigation{
		Previous: scanBoundary(ctx, store.PostsOnOrBefore, ts, func(p models.BlogPost) bool {
			return strictlyOrdered(publishedTime(p), p.ID, ts, source.ID)
		}),
		Next: scanBoundary(ctx, store.PostsOnOrAfter, ts, func(p models.BlogPost) bool {
			return strictlyOrdered(ts, source.ID, publishedTime(p), p.ID)
		}),
	}
}

// scanBoundary returns the first post from the boundary query that passes
// the adjacency filter, re-fetching with a wider window whenever a full
// page held no qualifying post.
func scanBoundary(ctx context.Context, fetch func(context.Context, time.Time, int) ([]models.BlogPost, error), ts time.Time, qualifies func(models.BlogPost) bool) *models.BlogPost {
	for limit := boundaryWindow; limit <= maxBoundaryWindow; limit *= 4 {
		posts, err := fetch(ctx, ts, limit)
		if err != nil {
			return nil
		}
		for i := range posts {
			if qualifies(posts[i]) {
				return &posts[i]
			}
		}
		if len(posts) < limit {
			return nil
		}
	}
	return nil
}

func appendCandidates(result, posts []models.BlogPost, seen map[uuid.UUID]struct{}, limit int) []models.BlogPost {
	for _, p := range posts {
		if len(result) >= limit {
			break
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}
	return result
}

// strictlyOrdered reports whether (ta, a) sorts strictly before (tb, b).
func strictlyOrdered(ta time.Time, a uuid.UUID, tb time.Time, b uuid.UUID) bool {
	if !ta.Equal(tb) {
		return ta.Before(tb)
	}
	return a.String() < b.String()
}

// publishedTime treats a missing publish date as the zero time so drafts
// sort as the oldest possible posts.
func publishedTime(p models.BlogPost) time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}
