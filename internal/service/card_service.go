package service

import (
	"context"
	"errors"
	"strings"

	"petslife-service/internal/adapters/kafka"
	"petslife-service/internal/models"
	"petslife-service/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrNotOwner     = errors.New("card does not belong to this user")
	ErrVetOwnedCard = errors.New("veterinarians cannot publish cards")
)

// CardService is the catalog of published pet cards.
type CardService struct {
	cardRepo repository.CardRepository
	userRepo repository.UserRepository
	events   EventPublisher
}

func NewCardService(cardRepo repository.CardRepository, userRepo repository.UserRepository, events EventPublisher) *CardService {
	return &CardService{cardRepo: cardRepo, userRepo: userRepo, events: events}
}

// ListVisible enumerates the catalog, keeps the cards owned by someone in
// the friend group, then keeps those whose animal name contains searchTerm
// case-insensitively. An empty term matches everything. Order is whatever
// the store returns.
func (s *CardService) ListVisible(ctx context.Context, friendGroup []string, searchTerm string) ([]models.Card, error) {
	cards, err := s.cardRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]bool, len(friendGroup))
	for _, id := range friendGroup {
		owners[id] = true
	}
	term := strings.ToLower(searchTerm)

	visible := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if !owners[card.UserUUID] {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(card.AnimalName), term) {
			continue
		}
		visible = append(visible, card)
	}
	return visible, nil
}

// Create publishes a new card for ownerID. Only regular users own cards;
// veterinarian accounts browse, they do not publish.
func (s *CardService) Create(ctx context.Context, ownerID string, attrs *models.CardAttributes) (*models.Card, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, userLookupErr(err)
	}
	if owner.IsVet() {
		return nil, ErrVetOwnedCard
	}

	card := models.Card{
		ID:                   uuid.NewString(),
		UserUUID:             ownerID,
		AnimalName:           attrs.AnimalName,
		AnimalSpecies:        attrs.AnimalSpecies,
		AnimalBreed:          attrs.AnimalBreed,
		AnimalSex:            attrs.AnimalSex,
		AnimalAge:            attrs.AnimalAge,
		AnimalColor:          attrs.AnimalColor,
		IsNeutered:           attrs.IsNeutered,
		PreExistingIllnesses: attrs.PreExistingIllnesses,
	}
	if err := s.cardRepo.Create(ctx, &card); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, kafka.EventCardCreated, card.ID, ownerID)
	return &card, nil
}

// Update overwrites the owner-editable attributes. The photo URL is managed
// by the attachment pipeline and is never touched here.
func (s *CardService) Update(ctx context.Context, viewerID, cardID string, attrs *models.CardAttributes) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, cardLookupErr(err)
	}
	if !s.IsOwner(card, viewerID) {
		return nil, ErrNotOwner
	}

	card.AnimalName = attrs.AnimalName
	card.AnimalSpecies = attrs.AnimalSpecies
	card.AnimalBreed = attrs.AnimalBreed
	card.AnimalSex = attrs.AnimalSex
	card.AnimalAge = attrs.AnimalAge
	card.AnimalColor = attrs.AnimalColor
	card.IsNeutered = attrs.IsNeutered
	card.PreExistingIllnesses = attrs.PreExistingIllnesses

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, cardLookupErr(err)
	}
	publishEvent(ctx, s.events, kafka.EventCardUpdated, card.ID, viewerID)
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, viewerID, cardID string) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return cardLookupErr(err)
	}
	if !s.IsOwner(card, viewerID) {
		return ErrNotOwner
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		return cardLookupErr(err)
	}
	publishEvent(ctx, s.events, kafka.EventCardDeleted, cardID, viewerID)
	return nil
}

// AttachPhoto merges the uploaded photo address into the card, leaving every
// other attribute untouched. Called by the upload pipeline.
func (s *CardService) AttachPhoto(ctx context.Context, cardID, photoURL string) error {
	if err := s.cardRepo.AttachPhoto(ctx, cardID, photoURL); err != nil {
		return cardLookupErr(err)
	}
	publishEvent(ctx, s.events, kafka.EventCardPhotoAttached, cardID, "")
	return nil
}

func (s *CardService) Get(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, cardLookupErr(err)
	}
	return card, nil
}

func (s *CardService) IsOwner(card *models.Card, viewerID string) bool {
	return card.UserUUID == viewerID
}

func cardLookupErr(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrCardNotFound
	}
	return err
}
