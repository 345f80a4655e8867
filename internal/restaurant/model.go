package restaurant

import (
	"encoding/json"
	"fmt"
	"time"
)

const RoleOwner = "OWNER"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cuisine     []string  `json:"cuisine"`
	Address     Address   `json:"address"`
	Contact     Contact   `json:"contact"`
	Hours       Hours     `json:"hours"`
	Settings    Settings  `json:"settings"`
	Features    Features  `json:"features"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type DayHours struct {
	Day    string `json:"day"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

type Hours struct {
	Days []DayHours `json:"days,omitempty"`
}

type Settings struct {
	Currency      string `json:"currency,omitempty"`
	Language      string `json:"language,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	ShowAllergens bool   `json:"showAllergens"`
}

type Features struct {
	Delivery     bool `json:"delivery"`
	Takeaway     bool `json:"takeaway"`
	Terrace      bool `json:"terrace"`
	Reservations bool `json:"reservations"`
}

// blobs is the JSONB projection of a restaurant.
type blobs struct {
	cuisine  []byte
	address  []byte
	contact  []byte
	hours    []byte
	settings []byte
	features []byte
}

func encodeBlobs(r *Restaurant) (blobs, error) {
	var (
		b   blobs
		err error
	)
	cuisine := r.Cuisine
	if cuisine == nil {
		cuisine = []string{}
	}
	if b.cuisine, err = json.Marshal(cuisine); err != nil {
		return b, fmt.Errorf("encode cuisine: %w", err)
	}
	if b.address, err = json.Marshal(r.Address); err != nil {
		return b, fmt.Errorf("encode address: %w", err)
	}
	if b.contact, err = json.Marshal(r.Contact); err != nil {
		return b, fmt.Errorf("encode contact: %w", err)
	}
	if b.hours, err = json.Marshal(r.Hours); err != nil {
		return b, fmt.Errorf("encode hours: %w", err)
	}
	if b.settings, err = json.Marshal(r.Settings); err != nil {
		return b, fmt.Errorf("encode settings: %w", err)
	}
	if b.features, err = json.Marshal(r.Features); err != nil {
		return b, fmt.Errorf("encode features: %w", err)
	}
	return b, nil
}

func decodeBlobs(b blobs, r *Restaurant) error {
	fields := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"cuisine", b.cuisine, &r.Cuisine},
		{"address", b.address, &r.Address},
		{"contact", b.contact, &r.Contact},
		{"hours", b.hours, &r.Hours},
		{"settings", b.settings, &r.Settings},
		{"features", b.features, &r.Features},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	if r.Cuisine == nil {
		r.Cuisine = []string{}
	}
	return nil
}
