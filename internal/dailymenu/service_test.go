package dailymenu

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/restaurant"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

const (
	ownerID    = "owner-1"
	intruderID = "intruder"
)

var fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

type fakeCards struct {
	calls int
	err   error
	last  DailyMenu
}

func (f *fakeCards) PublishCard(_ context.Context, m *DailyMenu) (string, error) {
	f.calls++
	f.last = *m
	if f.err != nil {
		return "", f.err
	}
	return "https://cards.example.com/cards/" + m.RestaurantID + "/" + m.Date + ".json", nil
}

type fixture struct {
	restRepo     *restaurant.InMemoryRepository
	restaurants  *restaurant.Service
	repo         *InMemoryRepository
	cards        *fakeCards
	service      *Service
	restaurantID string
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	restRepo := restaurant.NewInMemoryRepository()
	restaurants := restaurant.NewService(restRepo)
	repo := NewInMemoryRepository(restRepo)
	restRepo.OnDelete(repo.DeleteForRestaurant)
	cards := &fakeCards{}

	res, err := restaurants.CreateRestaurant(context.Background(), ownerID, restaurant.CreateInput{
		Name:    "U Fucone",
		Cuisine: []string{"Corse"},
	})
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}

	return &fixture{
		restRepo:    restRepo,
		restaurants: restaurants,
		repo:        repo,
		cards:       cards,
		service: NewService(repo, restaurants, quietLogger(),
			WithCardPublisher(cards),
			WithClock(func() time.Time { return fixedNow }),
		),
		restaurantID: res.ID,
	}
}

func items(course suggestion.Course, names ...string) []suggestion.MenuItem {
	out := make([]suggestion.MenuItem, 0, len(names))
	for _, n := range names {
		out = append(out, suggestion.MenuItem{
			ID:       uuid.New().String(),
			Name:     n,
			Price:    10,
			Category: course,
		})
	}
	return out
}

func (f *fixture) input(date string) SaveInput {
	price := 28.0
	return SaveInput{
		RestaurantID: f.restaurantID,
		Date:         date,
		Starters:     items(suggestion.Starter, "Soupe corse", "Beignets de brocciu"),
		Mains:        items(suggestion.Main, "Civet de sanglier", "Veau aux olives"),
		Desserts:     items(suggestion.Dessert, "Fiadone"),
		Price:        &price,
	}
}

func TestSavePublishList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.IsPublished || saved.Status() != StatusDraft {
		t.Fatalf("expected a draft, got %+v", saved)
	}

	published, err := f.service.Publish(ctx, ownerID, saved.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil || !published.PublishedAt.Equal(fixedNow) {
		t.Fatalf("unexpected published menu %+v", published)
	}
	if published.CardURL == nil || !strings.HasSuffix(*published.CardURL, "/2024-01-15.json") {
		t.Errorf("expected card url, got %v", published.CardURL)
	}

	list, err := f.service.ListForUser(ctx, ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(list))
	}
	if list[0].RestaurantName != "U Fucone" || !list[0].IsPublished {
		t.Errorf("unexpected listed menu %+v", list[0])
	}
}

func TestPublishIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, _ := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	first, err := f.service.Publish(ctx, ownerID, saved.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	writes := f.repo.Writes()

	second, err := f.service.Publish(ctx, ownerID, saved.ID)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if !second.IsPublished || !second.PublishedAt.Equal(*first.PublishedAt) {
		t.Errorf("expected unchanged publication, got %+v", second)
	}
	if f.repo.Writes() != writes {
		t.Error("second publish should not write")
	}
	if f.cards.calls != 1 {
		t.Errorf("expected one card upload, got %d", f.cards.calls)
	}
}

func TestMembershipGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// a global role does not grant access, only membership does
	if _, err := f.service.Save(ctx, intruderID, f.input("2024-01-15")); !apperr.Is(err, apperr.KindAuthorization) {
		t.Fatalf("save: expected authorization error, got %v", err)
	}

	saved, err := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// a non-member cannot tell an existing menu from an unknown id
	_, unknownErr := f.service.Publish(ctx, intruderID, uuid.New().String())
	if !apperr.Is(unknownErr, apperr.KindNotFound) {
		t.Fatalf("unknown menu: expected not found, got %v", unknownErr)
	}
	if _, err := f.service.Publish(ctx, intruderID, saved.ID); !apperr.Is(err, apperr.KindNotFound) || err.Error() != unknownErr.Error() {
		t.Errorf("publish: expected %v, got %v", unknownErr, err)
	}
	if err := f.service.Delete(ctx, intruderID, saved.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("delete: expected not found, got %v", err)
	}
	if _, err := f.service.Get(ctx, intruderID, saved.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("get: expected not found, got %v", err)
	}
	if _, err := f.service.Get(ctx, ownerID, saved.ID); err != nil {
		t.Errorf("owner get after intruder attempts: %v", err)
	}

	list, _ := f.service.ListForUser(ctx, intruderID)
	if len(list) != 0 {
		t.Errorf("intruder should see nothing, got %d menus", len(list))
	}

	// a second member gets access
	f.restRepo.AddMember(f.restaurantID, "staff-1", "STAFF")
	if _, err := f.service.Publish(ctx, "staff-1", saved.ID); err != nil {
		t.Errorf("member publish: %v", err)
	}
}

func TestPublishedMenuIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, _ := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	in := UpdateInput{
		Date:     "2024-01-15",
		Starters: items(suggestion.Starter, "Salade"),
		Mains:    items(suggestion.Main, "Daube"),
		Desserts: items(suggestion.Dessert, "Canistrelli"),
	}

	updated, err := f.service.Update(ctx, ownerID, saved.ID, in)
	if err != nil {
		t.Fatalf("update draft: %v", err)
	}
	if len(updated.Starters) != 1 || updated.Starters[0].Name != "Salade" {
		t.Fatalf("draft not updated: %+v", updated.Starters)
	}

	if _, err := f.service.Publish(ctx, ownerID, saved.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}

	_, err = f.service.Update(ctx, ownerID, saved.ID, in)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDuplicateDateConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Save(ctx, ownerID, f.input("2024-01-15")); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if _, err := f.service.Save(ctx, ownerID, f.input("2024-01-16")); err != nil {
		t.Fatalf("another date should be accepted: %v", err)
	}
}

func TestSaveValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]struct {
		mutate func(*SaveInput)
		want   string
	}{
		"missing starters": {func(in *SaveInput) { in.Starters = nil }, "starters is required"},
		"empty mains":      {func(in *SaveInput) { in.Mains = []suggestion.MenuItem{} }, "mains must not be empty"},
		"bad date":         {func(in *SaveInput) { in.Date = "15/01/2024" }, "date must be a YYYY-MM-DD date"},
		"bad restaurant":   {func(in *SaveInput) { in.RestaurantID = "abc" }, "restaurantId must be a valid id"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := f.input("2024-01-15")
			tc.mutate(&in)

			_, err := f.service.Save(ctx, ownerID, in)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestSaveAsPublishedGoesThroughPublish(t *testing.T) {
	f := newFixture(t)

	in := f.input("2024-01-15")
	in.IsPublished = true

	saved, err := f.service.Save(context.Background(), ownerID, in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !saved.IsPublished || saved.PublishedAt == nil {
		t.Fatalf("expected published menu, got %+v", saved)
	}
	if f.cards.calls != 1 {
		t.Errorf("expected card upload, got %d calls", f.cards.calls)
	}
	if f.cards.last.RestaurantName != "U Fucone" {
		t.Errorf("card should carry the restaurant name, got %q", f.cards.last.RestaurantName)
	}
	if saved.RestaurantName != "U Fucone" {
		t.Errorf("expected restaurant name on the result, got %q", saved.RestaurantName)
	}
}

// failingPublishRepo stores drafts but cannot mark them published.
type failingPublishRepo struct {
	*InMemoryRepository
}

func (failingPublishRepo) MarkPublished(context.Context, string, time.Time, *string) error {
	return apperr.Persistence("mark published", errors.New("connection reset"))
}

func TestSaveAsPublishedFailureLeavesNoDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	service := NewService(failingPublishRepo{f.repo}, f.restaurants, quietLogger(),
		WithClock(func() time.Time { return fixedNow }),
	)

	in := f.input("2024-01-15")
	in.IsPublished = true
	if _, err := service.Save(ctx, ownerID, in); !apperr.Is(err, apperr.KindPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	list, err := service.ListForUser(ctx, ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no leftover draft, got %d menus", len(list))
	}

	// the date is free again
	if _, err := f.service.Save(ctx, ownerID, f.input("2024-01-15")); err != nil {
		t.Fatalf("retry save: %v", err)
	}
}

func TestCardFailureDoesNotBlockPublish(t *testing.T) {
	f := newFixture(t)
	f.cards.err = errors.New("bucket unavailable")
	ctx := context.Background()

	saved, _ := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	published, err := f.service.Publish(ctx, ownerID, saved.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.CardURL != nil {
		t.Fatalf("expected published menu without card, got %+v", published)
	}

	stored, _ := f.service.Get(ctx, ownerID, saved.ID)
	if !stored.IsPublished {
		t.Error("expected stored menu to be published")
	}
}

func TestListMostRecentFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, d := range []string{"2024-01-14", "2024-01-16", "2024-01-15"} {
		if _, err := f.service.Save(ctx, ownerID, f.input(d)); err != nil {
			t.Fatalf("save %s: %v", d, err)
		}
	}

	list, err := f.service.ListForUser(ctx, ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{list[0].Date, list[1].Date, list[2].Date}
	want := []string{"2024-01-16", "2024-01-15", "2024-01-14"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDeleteAndRestaurantCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _ := f.service.Save(ctx, ownerID, f.input("2024-01-15"))
	if _, err := f.service.Save(ctx, ownerID, f.input("2024-01-16")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := f.service.Delete(ctx, ownerID, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.service.Get(ctx, ownerID, first.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := f.restaurants.DeleteRestaurant(ctx, ownerID, f.restaurantID); err != nil {
		t.Fatalf("delete restaurant: %v", err)
	}
	list, _ := f.service.ListForUser(ctx, ownerID)
	if len(list) != 0 {
		t.Errorf("expected cascade to remove daily menus, got %d", len(list))
	}
}

func TestTransitions(t *testing.T) {
	to, err := Next(StatusDraft, EventPublish)
	if err != nil || to != StatusPublished {
		t.Fatalf("draft should publish, got %s %v", to, err)
	}
	if _, err := Next(StatusPublished, EventPublish); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("published is terminal, got %v", err)
	}
}
