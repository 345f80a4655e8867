package restaurant

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

func TestCreateRestaurant_Success(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	restaurant, err := service.CreateRestaurant(context.Background(), "owner-123", CreateInput{
		Name:    "U Fucone",
		Cuisine: []string{"Corse"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if restaurant.ID == "" {
		t.Errorf("expected ID to be set")
	}
	if restaurant.Role != RoleOwner {
		t.Errorf("expected role %s, got %s", RoleOwner, restaurant.Role)
	}

	ok, _ := service.IsMember(context.Background(), restaurant.ID, "owner-123")
	if !ok {
		t.Error("expected creator to be a member")
	}
}

func TestCreateRestaurant_MissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.CreateRestaurant(context.Background(), "owner", CreateInput{Name: "   "})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJSONFieldsRoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	in := CreateInput{
		Name:    "A Casa",
		Cuisine: []string{"Corse", "Méditerranéenne"},
		Address: Address{Street: "1 quai", City: "Bastia", Country: "FR"},
		Hours: Hours{Days: []DayHours{
			{Day: "monday", Closed: true},
			{Day: "tuesday", Open: "12:00", Close: "22:30"},
		}},
		Settings: Settings{Currency: "EUR", ShowAllergens: true},
		Features: Features{Terrace: true},
	}
	created, err := service.CreateRestaurant(ctx, "owner-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := service.GetRestaurant(ctx, "owner-1", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got.Cuisine, []string{"Corse", "Méditerranéenne"}) {
		t.Errorf("cuisine not preserved in order: %v", got.Cuisine)
	}
	if got.Address != in.Address {
		t.Errorf("address mismatch: %+v", got.Address)
	}
	if !reflect.DeepEqual(got.Hours, in.Hours) {
		t.Errorf("hours mismatch: %+v", got.Hours)
	}
	if got.Settings != in.Settings || got.Features != in.Features {
		t.Errorf("settings/features mismatch: %+v %+v", got.Settings, got.Features)
	}
}

func TestGetRestaurant_NonMember(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	created, _ := service.CreateRestaurant(ctx, "owner-1", CreateInput{Name: "Chez Nous"})

	_, err := service.GetRestaurant(ctx, "intruder", created.ID)
	if !apperr.Is(err, apperr.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	_, err = service.GetRestaurant(ctx, "owner-1", "00000000-0000-0000-0000-000000000000")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRestaurant_Cascades(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	var cascaded []string
	repo.OnDelete(func(id string) { cascaded = append(cascaded, id) })

	created, _ := service.CreateRestaurant(ctx, "owner-1", CreateInput{Name: "Chez Nous"})

	if err := service.DeleteRestaurant(ctx, "intruder", created.ID); !apperr.Is(err, apperr.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	if err := service.DeleteRestaurant(ctx, "owner-1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cascaded) != 1 || cascaded[0] != created.ID {
		t.Errorf("expected cascade hook for %s, got %v", created.ID, cascaded)
	}
	if ok, _ := service.IsMember(ctx, created.ID, "owner-1"); ok {
		t.Error("expected membership to be removed")
	}
	if _, err := repo.GetByID(ctx, created.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected restaurant to be gone, got %v", err)
	}
}

func TestListMyRestaurants(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	service.CreateRestaurant(ctx, "owner-123", CreateInput{Name: "Taj Palace"})
	service.CreateRestaurant(ctx, "owner-123", CreateInput{Name: "Dragon Court"})
	service.CreateRestaurant(ctx, "owner-456", CreateInput{Name: "Pasta House"})

	restaurants, err := service.ListMyRestaurants(ctx, "owner-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}

	empty, err := service.ListMyRestaurants(ctx, "no-restaurants")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty list, got %d", len(empty))
	}
}

func TestHandlerRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := NewHandler(NewService(NewInMemoryRepository()), log)
	r := gin.New()
	r.GET("/restaurants/:id", func(c *gin.Context) {
		c.Set("userID", "owner-1")
		h.GetRestaurant(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/not-a-uuid", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid id") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
