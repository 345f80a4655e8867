package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/keysaw7/MenuMaster-sub000/internal/dailymenu"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

type fakePutter struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	f.contentType = aws.ToString(in.ContentType)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestPublishCard(t *testing.T) {
	putter := &fakePutter{}
	publisher := NewCardPublisher(NewR2ClientWith(putter, "menus", "https://cdn.example.com/"))

	published := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	price := 29.0
	m := &dailymenu.DailyMenu{
		ID:             "m-1",
		RestaurantID:   "r-1",
		RestaurantName: "U Fucone",
		Date:           "2024-01-15",
		Starters:       []suggestion.MenuItem{{Name: "Soupe corse", Category: suggestion.Starter}},
		Mains:          []suggestion.MenuItem{{Name: "Civet", Category: suggestion.Main}},
		Desserts:       []suggestion.MenuItem{{Name: "Fiadone", Category: suggestion.Dessert}},
		Price:          &price,
		IsPublished:    true,
		PublishedAt:    &published,
	}

	url, err := publisher.PublishCard(context.Background(), m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "https://cdn.example.com/cards/r-1/2024-01-15.json" {
		t.Errorf("unexpected url %s", url)
	}
	if putter.bucket != "menus" || putter.key != "cards/r-1/2024-01-15.json" || putter.contentType != "application/json" {
		t.Errorf("unexpected put %+v", putter)
	}

	var card Card
	if err := json.Unmarshal(putter.body, &card); err != nil {
		t.Fatalf("card is not JSON: %v", err)
	}
	if card.RestaurantName != "U Fucone" || len(card.Starters) != 1 || *card.Price != 29 {
		t.Errorf("unexpected card %+v", card)
	}
}

func TestPublishCardUploadError(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	publisher := NewCardPublisher(NewR2ClientWith(putter, "menus", "https://cdn.example.com"))

	_, err := publisher.PublishCard(context.Background(), &dailymenu.DailyMenu{RestaurantID: "r-1", Date: "2024-01-15"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewR2ClientDefaultsPublicURL(t *testing.T) {
	client, err := NewR2Client(context.Background(), R2Config{
		Endpoint:  "https://account.r2.cloudflarestorage.com",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "menus",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://account.r2.cloudflarestorage.com/menus" {
		t.Errorf("unexpected base url %s", client.baseURL)
	}
}
