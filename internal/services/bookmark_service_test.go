package services

import (
	"context"
	"testing"

	"github.com/tarang07q/NewsPlus/internal/models"
)

// fakeBookmarkRepo keeps bookmarks in a map keyed by userId+url.
type fakeBookmarkRepo struct {
	data    map[string]models.Bookmark
	inserts int
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{data: map[string]models.Bookmark{}}
}

func (f *fakeBookmarkRepo) key(userID, url string) string { return userID + "|" + url }

func (f *fakeBookmarkRepo) List(_ context.Context, userID string) ([]models.Bookmark, error) {
	var out []models.Bookmark
	for _, b := range f.data {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) Get(_ context.Context, userID, url string) (*models.Bookmark, error) {
	if b, ok := f.data[f.key(userID, url)]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeBookmarkRepo) Insert(_ context.Context, b models.Bookmark) error {
	f.inserts++
	f.data[f.key(b.UserID, b.Article.URL)] = b
	return nil
}

func (f *fakeBookmarkRepo) Delete(_ context.Context, userID, url string) error {
	delete(f.data, f.key(userID, url))
	return nil
}

func sampleArticle(url string) models.Article {
	return models.Article{
		Source: models.Source{Name: "BBC News"},
		Title:  "Title",
		URL:    url,
	}
}

func TestBookmarkAddIsIdempotent(t *testing.T) {
	repo := newFakeBookmarkRepo()
	svc := NewBookmarkService(repo)
	ctx := context.Background()

	first, created, err := svc.Add(ctx, "u1", sampleArticle("https://a"))
	if err != nil || !created {
		t.Fatalf("first add: created=%v err=%v", created, err)
	}

	second, created, err := svc.Add(ctx, "u1", sampleArticle("https://a"))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if created {
		t.Error("second add must not create a duplicate")
	}
	if second.ID != first.ID {
		t.Errorf("second add returned a different bookmark: %v vs %v", second.ID, first.ID)
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
}

func TestBookmarkUniquenessIsPerUser(t *testing.T) {
	repo := newFakeBookmarkRepo()
	svc := NewBookmarkService(repo)
	ctx := context.Background()

	if _, created, _ := svc.Add(ctx, "u1", sampleArticle("https://a")); !created {
		t.Fatal("u1 add should create")
	}
	if _, created, _ := svc.Add(ctx, "u2", sampleArticle("https://a")); !created {
		t.Error("same article for another user must still create")
	}
}

func TestBookmarkRemoveIsIdempotent(t *testing.T) {
	repo := newFakeBookmarkRepo()
	svc := NewBookmarkService(repo)
	ctx := context.Background()

	svc.Add(ctx, "u1", sampleArticle("https://a"))

	if err := svc.Remove(ctx, "u1", "https://a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, "u1", "https://a"); err != nil {
		t.Errorf("removing a missing bookmark must not error: %v", err)
	}

	list, _ := svc.List(ctx, "u1")
	if len(list) != 0 {
		t.Errorf("bookmarks left after remove: %v", list)
	}
}
