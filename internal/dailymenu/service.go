package dailymenu

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/core"
)

// CardPublisher uploads the customer-facing card of a published menu and
// returns its public URL.
type CardPublisher interface {
	PublishCard(ctx context.Context, m *DailyMenu) (string, error)
}

type Service struct {
	repo     Repository
	members  core.MembershipChecker
	cards    CardPublisher
	validate *validator.Validate
	now      func() time.Time
	log      logrus.FieldLogger
}

type Option func(*Service)

// WithCardPublisher enables card upload on publish.
func WithCardPublisher(p CardPublisher) Option {
	return func(s *Service) { s.cards = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, members core.MembershipChecker, log logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		members:  members,
		validate: newValidator(),
		now:      time.Now,
		log:      log.WithField("component", "dailymenu"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --------------------------------------------------
// Save (always lands as a draft first; a failed
// publish removes the draft again)
// --------------------------------------------------
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (*DailyMenu, error) {
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}
	if err := core.RequireMember(ctx, s.members, in.RestaurantID, userID); err != nil {
		return nil, err
	}

	m := &DailyMenu{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		Date:         in.Date,
		Starters:     in.Starters,
		Mains:        in.Mains,
		Desserts:     in.Desserts,
		Price:        in.Price,
		Weather:      in.Weather,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"daily_menu_id": m.ID,
		"restaurant_id": m.RestaurantID,
		"date":          m.Date,
	}).Info("daily menu saved")

	if !in.IsPublished {
		return m, nil
	}

	// reload so the card sees the joined restaurant name
	stored, err := s.repo.GetByID(ctx, m.ID)
	if err == nil {
		err = s.publish(ctx, stored)
	}
	if err != nil {
		s.discardDraft(ctx, m.ID)
		return nil, err
	}
	return stored, nil
}

// discardDraft removes a draft whose save-and-publish failed half way.
func (s *Service) discardDraft(ctx context.Context, id string) {
	log := s.log.WithField("daily_menu_id", id)
	if err := s.repo.Delete(context.WithoutCancel(ctx), id); err != nil {
		log.WithError(err).Error("could not discard draft after failed publish")
		return
	}
	log.Warn("publish failed, draft discarded")
}

// --------------------------------------------------
// Update (drafts only)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (*DailyMenu, error) {
	m, err := s.authorized(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !m.Editable() {
		return nil, apperr.Conflict(msgPublished)
	}
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}

	m.Date = in.Date
	m.Starters = in.Starters
	m.Mains = in.Mains
	m.Desserts = in.Desserts
	m.Price = in.Price
	m.Weather = in.Weather

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// Publish (idempotent)
// --------------------------------------------------
func (s *Service) Publish(ctx context.Context, userID, id string) (*DailyMenu, error) {
	m, err := s.authorized(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if m.Status() == StatusPublished {
		return m, nil
	}
	if err := s.publish(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) publish(ctx context.Context, m *DailyMenu) error {
	if _, err := Next(m.Status(), EventPublish); err != nil {
		return err
	}

	at := s.now().UTC()
	m.IsPublished = true
	m.PublishedAt = &at

	log := s.log.WithFields(logrus.Fields{
		"daily_menu_id": m.ID,
		"restaurant_id": m.RestaurantID,
	})

	if s.cards != nil {
		url, err := s.cards.PublishCard(ctx, m)
		if err != nil {
			log.WithError(err).Warn("card upload failed, publishing without card")
		} else {
			m.CardURL = &url
		}
	}

	if err := s.repo.MarkPublished(ctx, m.ID, at, m.CardURL); err != nil {
		return err
	}
	log.Info("daily menu published")
	return nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.authorized(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*DailyMenu, error) {
	return s.authorized(ctx, userID, id)
}

// ListForUser returns the daily menus of every restaurant the user belongs
// to, most recent date first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]*DailyMenu, error) {
	return s.repo.ListForUser(ctx, userID)
}

// authorized loads the menu and checks membership on its restaurant.
// Non-members get the same NotFound as an unknown id.
func (s *Service) authorized(ctx context.Context, userID, id string) (*DailyMenu, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := core.RequireMember(ctx, s.members, m.RestaurantID, userID); err != nil {
		if apperr.Is(err, apperr.KindAuthorization) {
			return nil, apperr.NotFound(msgNotFound)
		}
		return nil, err
	}
	return m, nil
}
