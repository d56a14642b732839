package related

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bazarche/bazarche-backend/models"
)

// fakeStore serves canned posts and records which fetches were issued.
type fakeStore struct {
	byCategory map[uuid.UUID][]models.BlogPost
	byTag      map[string][]models.BlogPost
	timeline   []models.BlogPost

	categoryErr error
	tagErrs     map[string]error
	beforeErr   error
	afterErr    error

	categoryCalls int
	tagCalls      []string
}

func (s *fakeStore) PostsByCategory(_ context.Context, categoryID uuid.UUID, limit int) ([]models.BlogPost, error) {
	s.categoryCalls++
	if s.categoryErr != nil {
		return nil, s.categoryErr
	}
	return capped(s.byCategory[categoryID], limit), nil
}

func (s *fakeStore) PostsByTag(_ context.Context, tag string, limit int) ([]models.BlogPost, error) {
	s.tagCalls = append(s.tagCalls, tag)
	if err := s.tagErrs[tag]; err != nil {
		return nil, err
	}
	return capped(s.byTag[tag], limit), nil
}

func (s *fakeStore) PostsOnOrBefore(_ context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	if s.beforeErr != nil {
		return nil, s.beforeErr
	}
	var matches []models.BlogPost
	for _, p := range s.timeline {
		if p.PublishedAt != nil && !p.PublishedAt.After(t) {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].PublishedAt.Equal(*matches[j].PublishedAt) {
			return matches[i].PublishedAt.After(*matches[j].PublishedAt)
		}
		return matches[i].ID.String() > matches[j].ID.String()
	})
	return capped(matches, limit), nil
}

func (s *fakeStore) PostsOnOrAfter(_ context.Context, t time.Time, limit int) ([]models.BlogPost, error) {
	if s.afterErr != nil {
		return nil, s.afterErr
	}
	var matches []models.BlogPost
	for _, p := range s.timeline {
		if p.PublishedAt != nil && !p.PublishedAt.Before(t) {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].PublishedAt.Equal(*matches[j].PublishedAt) {
			return matches[i].PublishedAt.Before(*matches[j].PublishedAt)
		}
		return matches[i].ID.String() < matches[j].ID.String()
	})
	return capped(matches, limit), nil
}

func capped(posts []models.BlogPost, limit int) []models.BlogPost {
	if len(posts) > limit {
		return posts[:limit]
	}
	return posts
}

func publishedPost(slug string, t time.Time) models.BlogPost {
	return models.BlogPost{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       slug,
		Status:      models.PostStatusPublished,
		PublishedAt: &t,
	}
}

func withTags(p models.BlogPost, tags ...string) models.BlogPost {
	for _, tag := range tags {
		p.Tags = append(p.Tags, models.BlogTag{ID: uuid.New(), BlogPostID: p.ID, Value: tag})
	}
	return p
}

func day(n int) time.Time {
	return time.Date(2025, 1, n, 12, 0, 0, 0, time.UTC)
}

func TestPostsFillsQuotaFromCategory(t *testing.T) {
	categoryID := uuid.New()
	source := publishedPost("source", day(10))
	source.CategoryID = &categoryID

	var inCategory []models.BlogPost
	for i := 1; i <= 5; i++ {
		p := publishedPost(fmt.Sprintf("cat-%d", i), day(i))
		p.CategoryID = &categoryID
		inCategory = append(inCategory, p)
	}
	store := &fakeStore{
		byCategory: map[uuid.UUID][]models.BlogPost{categoryID: append([]models.BlogPost{source}, inCategory...)},
	}

	got := Posts(context.Background(), store, source, 3)

	if len(got) != 3 {
		t.Fatalf("got %d posts, want 3", len(got))
	}
	for i, p := range got {
		if p.ID == source.ID {
			t.Errorf("result[%d] is the source post", i)
		}
		if p.CategoryID == nil || *p.CategoryID != categoryID {
			t.Errorf("result[%d] not from source category", i)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].PublishedAt.Before(*got[i].PublishedAt) {
			t.Errorf("result not sorted by publish date descending at %d", i)
		}
	}
}

func TestPostsShortCircuitsRemainingTagsOnQuota(t *testing.T) {
	source := withTags(publishedPost("source", day(10)), "golang", "web")

	var tagged []models.BlogPost
	for i := 1; i <= 3; i++ {
		tagged = append(tagged, publishedPost(fmt.Sprintf("t1-%d", i), day(i)))
	}
	store := &fakeStore{
		byTag: map[string][]models.BlogPost{"golang": tagged},
	}

	got := Posts(context.Background(), store, source, 3)

	if len(got) != 3 {
		t.Fatalf("got %d posts, want 3", len(got))
	}
	if store.categoryCalls != 0 {
		t.Errorf("category queried %d times for a post without a category", store.categoryCalls)
	}
	if len(store.tagCalls) != 1 || store.tagCalls[0] != "golang" {
		t.Errorf("tag fetches = %v, want only [golang]", store.tagCalls)
	}
}

func TestPostsDeduplicatesAcrossCategoryAndTags(t *testing.T) {
	categoryID := uuid.New()
	source := withTags(publishedPost("source", day(10)), "golang")
	source.CategoryID = &categoryID

	shared := publishedPost("shared", day(5))
	onlyTag := publishedPost("only-tag", day(4))
	store := &fakeStore{
		byCategory: map[uuid.UUID][]models.BlogPost{categoryID: {shared, source}},
		byTag:      map[string][]models.BlogPost{"golang": {shared, onlyTag, source}},
	}

	got := Posts(context.Background(), store, source, 3)

	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2", len(got))
	}
	ids := map[uuid.UUID]int{}
	for _, p := range got {
		if p.ID == source.ID {
			t.Error("result contains the source post")
		}
		ids[p.ID]++
	}
	for id, n := range ids {
		if n > 1 {
			t.Errorf("post %s appears %d times", id, n)
		}
	}
}

func TestPostsWithoutCategoryOrTagsIsEmpty(t *testing.T) {
	source := publishedPost("lonely", day(1))
	store := &fakeStore{}

	if got := Posts(context.Background(), store, source, 3); len(got) != 0 {
		t.Errorf("got %d posts, want 0", len(got))
	}
}

func TestPostsFailedCategoryFetchStillUsesTags(t *testing.T) {
	categoryID := uuid.New()
	source := withTags(publishedPost("source", day(10)), "golang")
	source.CategoryID = &categoryID

	store := &fakeStore{
		categoryErr: errors.New("upstream unavailable"),
		byTag:       map[string][]models.BlogPost{"golang": {publishedPost("tagged", day(2))}},
	}

	got := Posts(context.Background(), store, source, 3)
	if len(got) != 1 || got[0].Slug != "tagged" {
		t.Errorf("got %v, want the single tag candidate", got)
	}
}

func TestPostsFailedTagFetchDoesNotAbortRemainingTags(t *testing.T) {
	source := withTags(publishedPost("source", day(10)), "broken", "golang")

	store := &fakeStore{
		tagErrs: map[string]error{"broken": errors.New("upstream unavailable")},
		byTag:   map[string][]models.BlogPost{"golang": {publishedPost("tagged", day(2))}},
	}

	got := Posts(context.Background(), store, source, 3)
	if len(got) != 1 || got[0].Slug != "tagged" {
		t.Errorf("got %v, want the candidate from the healthy tag", got)
	}
	if len(store.tagCalls) != 2 {
		t.Errorf("tag fetches = %v, want both tags attempted", store.tagCalls)
	}
}

func TestPostsDefaultLimit(t *testing.T) {
	source := withTags(publishedPost("source", day(10)), "golang")
	var tagged []models.BlogPost
	for i := 1; i <= 6; i++ {
		tagged = append(tagged, publishedPost(fmt.Sprintf("t-%d", i), day(i)))
	}
	store := &fakeStore{byTag: map[string][]models.BlogPost{"golang": tagged}}

	if got := Posts(context.Background(), store, source, 0); len(got) != DefaultLimit {
		t.Errorf("got %d posts, want DefaultLimit %d", len(got), DefaultLimit)
	}
}

func TestNavigateUnpublishedPost(t *testing.T) {
	source := models.BlogPost{ID: uuid.New(), Slug: "draft", Status: models.PostStatusDraft}
	store := &fakeStore{}

	nav := Navigate(context.Background(), store, source)
	if nav.Previous != nil || nav.Next != nil {
		t.Errorf("nav = %+v, want both sides nil for a post without a publish date", nav)
	}
}

func TestNavigateAdjacency(t *testing.T) {
	a := publishedPost("a", day(1))
	b := publishedPost("b", day(2))
	c := publishedPost("c", day(3))
	store := &fakeStore{timeline: []models.BlogPost{a, b, c}}

	ctx := context.Background()

	nav := Navigate(ctx, store, b)
	if nav.Previous == nil || nav.Previous.ID != a.ID {
		t.Errorf("Navigate(b).Previous = %v, want a", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != c.ID {
		t.Errorf("Navigate(b).Next = %v, want c", nav.Next)
	}

	nav = Navigate(ctx, store, a)
	if nav.Previous != nil {
		t.Errorf("Navigate(a).Previous = %v, want nil", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != b.ID {
		t.Errorf("Navigate(a).Next = %v, want b", nav.Next)
	}

	nav = Navigate(ctx, store, c)
	if nav.Previous == nil || nav.Previous.ID != b.ID {
		t.Errorf("Navigate(c).Previous = %v, want b", nav.Previous)
	}
	if nav.Next != nil {
		t.Errorf("Navigate(c).Next = %v, want nil", nav.Next)
	}
}

func TestNavigateNeverReturnsSource(t *testing.T) {
	only := publishedPost("only", day(1))
	store := &fakeStore{timeline: []models.BlogPost{only}}

	nav := Navigate(context.Background(), store, only)
	if nav.Previous != nil || nav.Next != nil {
		t.Errorf("nav = %+v, want both sides nil when the source is the only post", nav)
	}
}

func TestNavigateTimestampTieBreaksByID(t *testing.T) {
	tied := []models.BlogPost{
		publishedPost("t-0", day(1)),
		publishedPost("t-1", day(1)),
		publishedPost("t-2", day(1)),
	}
	// Force a known id order for the tied posts.
	sort.Slice(tied, func(i, j int) bool { return tied[i].ID.String() < tied[j].ID.String() })
	x, y, z := tied[0], tied[1], tied[2]
	store := &fakeStore{timeline: tied}

	ctx := context.Background()

	nav := Navigate(ctx, store, x)
	if nav.Previous != nil {
		t.Errorf("Navigate(x).Previous = %v, want nil", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != y.ID {
		t.Errorf("Navigate(x).Next = %v, want y", nav.Next)
	}

	nav = Navigate(ctx, store, y)
	if nav.Previous == nil || nav.Previous.ID != x.ID {
		t.Errorf("Navigate(y).Previous = %v, want x", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != z.ID {
		t.Errorf("Navigate(y).Next = %v, want z", nav.Next)
	}

	nav = Navigate(ctx, store, z)
	if nav.Previous == nil || nav.Previous.ID != y.ID {
		t.Errorf("Navigate(z).Previous = %v, want y", nav.Previous)
	}
	if nav.Next != nil {
		t.Errorf("Navigate(z).Next = %v, want nil", nav.Next)
	}
}

func TestNavigateFindsNeighborBeyondTiedPosts(t *testing.T) {
	earlier := publishedPost("earlier", day(1))
	x := publishedPost("tied-small", day(2))
	y := publishedPost("tied-large", day(2))
	if x.ID.String() > y.ID.String() {
		x, y = y, x
	}
	later := publishedPost("later", day(3))
	store := &fakeStore{timeline: []models.BlogPost{earlier, x, y, later}}

	ctx := context.Background()

	// The first boundary page holds only the source and its tied neighbor,
	// so the neighbor on the other side of the tie takes a wider fetch.
	nav := Navigate(ctx, store, x)
	if nav.Previous == nil || nav.Previous.ID != earlier.ID {
		t.Errorf("Navigate(x).Previous = %v, want earlier", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != y.ID {
		t.Errorf("Navigate(x).Next = %v, want y", nav.Next)
	}

	nav = Navigate(ctx, store, y)
	if nav.Previous == nil || nav.Previous.ID != x.ID {
		t.Errorf("Navigate(y).Previous = %v, want x", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != later.ID {
		t.Errorf("Navigate(y).Next = %v, want later", nav.Next)
	}
}

func TestNavigateFailedSideYieldsNilOnlyForThatSide(t *testing.T) {
	a := publishedPost("a", day(1))
	b := publishedPost("b", day(2))
	c := publishedPost("c", day(3))
	store := &fakeStore{
		timeline:  []models.BlogPost{a, b, c},
		beforeErr: errors.New("upstream unavailable"),
	}

	nav := Navigate(context.Background(), store, b)
	if nav.Previous != nil {
		t.Errorf("Previous = %v, want nil after failed fetch", nav.Previous)
	}
	if nav.Next == nil || nav.Next.ID != c.ID {
		t.Errorf("Next = %v, want c despite the failed previous fetch", nav.Next)
	}
}
