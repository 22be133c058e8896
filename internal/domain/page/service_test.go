package page_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/page"
	pagerepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/page"
)

type fakeGraph struct {
	details map[string]*page.Details
	err     error
}

func (f *fakeGraph) PageDetails(ctx context.Context, pageID, accessToken string) (*page.Details, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[pageID]
	if !ok {
		return nil, errors.New("unknown page")
	}
	return d, nil
}

func newService(t *testing.T, graph page.GraphAPI) (page.Service, *pagerepo.InMemoryRepository) {
	t.Helper()
	repo := pagerepo.NewInMemoryRepository()
	return page.NewService(repo, graph, zerolog.Nop()), repo
}

func TestConnectValidation(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	cases := []page.ConnectInput{
		{Name: "Shop"},
		{FacebookPageID: "fb-1"},
		{FacebookPageID: "  ", Name: "Shop"},
	}
	for _, in := range cases {
		if _, err := svc.Connect(ctx, "user-1", in); !errors.Is(err, page.ErrInvalidInput) {
			t.Errorf("Connect(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestConnectDuplicateRefreshesInPlace(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	first, err := svc.Connect(ctx, "user-1", page.ConnectInput{
		FacebookPageID: "fb-1",
		Name:           "Shop",
		AccessToken:    "tok-old",
		Followers:      10,
	})
	if err != nil {
		t.Fatalf("first connect: %v", err)
	}

	second, err := svc.Connect(ctx, "user-1", page.ConnectInput{
		FacebookPageID: "fb-1",
		Name:           "Shop Renamed",
		AccessToken:    "tok-new",
		Followers:      25,
	})
	if err != nil {
		t.Fatalf("second connect: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("reconnect created a new row: %s vs %s", second.ID, first.ID)
	}
	if second.Name != "Shop Renamed" || second.AccessToken != "tok-new" || second.Followers != 25 {
		t.Errorf("reconnect did not refresh fields: %+v", second)
	}

	all, _ := svc.List(ctx, "user-1")
	if len(all) != 1 {
		t.Errorf("stored %d pages, want 1", len(all))
	}
}

// racingRepo hides the row from the first existence check so Connect takes
// the insert path and collides with the unique constraint.
type racingRepo struct {
	*pagerepo.InMemoryRepository
	misses int
}

func (r *racingRepo) GetByFacebookID(ctx context.Context, facebookPageID string) (*page.Page, error) {
	if r.misses > 0 {
		r.misses--
		return nil, page.ErrNotFound
	}
	return r.InMemoryRepository.GetByFacebookID(ctx, facebookPageID)
}

func TestConnectRaceFallsBackToUpdate(t *testing.T) {
	ctx := context.Background()
	repo := &racingRepo{InMemoryRepository: pagerepo.NewInMemoryRepository(), misses: 1}
	svc := page.NewService(repo, nil, zerolog.Nop())

	if _, err := repo.InMemoryRepository.Create(ctx, &page.Page{
		ID:             "pg-1",
		UserID:         "user-1",
		FacebookPageID: "fb-1",
		Name:           "Shop",
		AccessToken:    "tok-old",
	}); err != nil {
		t.Fatalf("seed page: %v", err)
	}

	connected, err := svc.Connect(ctx, "user-1", page.ConnectInput{
		FacebookPageID: "fb-1",
		Name:           "Shop Renamed",
		AccessToken:    "tok-new",
		Followers:      30,
	})
	if err != nil {
		t.Fatalf("Connect after losing the race: %v", err)
	}
	if connected.ID != "pg-1" {
		t.Errorf("row id = %q, want the existing pg-1", connected.ID)
	}
	if connected.Name != "Shop Renamed" || connected.AccessToken != "tok-new" || connected.Followers != 30 {
		t.Errorf("race loser did not refresh fields: %+v", connected)
	}

	all, _ := svc.List(ctx, "user-1")
	if len(all) != 1 {
		t.Errorf("stored %d pages, want 1", len(all))
	}
}

func TestUpdateForeignPageHidden(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	p, err := svc.Connect(ctx, "user-1", page.ConnectInput{FacebookPageID: "fb-1", Name: "Shop"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	name := "Hijacked"
	if _, err := svc.Update(ctx, "intruder", p.ID, page.UpdateInput{Name: &name}); !errors.Is(err, page.ErrNotFound) {
		t.Errorf("foreign update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "intruder", p.ID); !errors.Is(err, page.ErrNotFound) {
		t.Errorf("foreign delete err = %v, want ErrNotFound", err)
	}
}

func TestSyncWithoutGraphReturnsStored(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	if _, err := svc.Connect(ctx, "user-1", page.ConnectInput{FacebookPageID: "fb-1", Name: "Shop", Followers: 5}); err != nil {
		t.Fatalf("connect: %v", err)
	}

	pages, err := svc.SyncFromFacebook(ctx, "user-1")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(pages) != 1 || pages[0].Followers != 5 {
		t.Errorf("pages = %+v, want stored values untouched", pages)
	}
}

func TestSyncRefreshesFromGraph(t *testing.T) {
	graph := &fakeGraph{details: map[string]*page.Details{
		"fb-1": {FacebookPageID: "fb-1", Name: "Shop Updated", Followers: 120, ProfileImageURL: "https://img/1.png"},
	}}
	svc, _ := newService(t, graph)
	ctx := context.Background()

	if _, err := svc.Connect(ctx, "user-1", page.ConnectInput{FacebookPageID: "fb-1", Name: "Shop", Followers: 5}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := svc.Connect(ctx, "user-1", page.ConnectInput{FacebookPageID: "fb-2", Name: "Other", Followers: 9}); err != nil {
		t.Fatalf("connect: %v", err)
	}

	pages, err := svc.SyncFromFacebook(ctx, "user-1")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	byFacebookID := map[string]page.Page{}
	for _, p := range pages {
		byFacebookID[p.FacebookPageID] = p
	}
	if p := byFacebookID["fb-1"]; p.Name != "Shop Updated" || p.Followers != 120 || p.ProfileImageURL != "https://img/1.png" {
		t.Errorf("fb-1 not refreshed: %+v", p)
	}
	// fb-2 is unknown to the graph fake; its stored values survive.
	if p := byFacebookID["fb-2"]; p.Name != "Other" || p.Followers != 9 {
		t.Errorf("fb-2 should keep stored values: %+v", p)
	}
}
