package repository

import (
	"context"
	"errors"

	"petslife-service/internal/models"

	"gorm.io/gorm"
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id string) (*models.Card, error)
	ListAll(ctx context.Context) ([]models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
	AttachPhoto(ctx context.Context, id, photoURL string) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepository) FindByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) ListAll(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.WithContext(ctx).Find(&cards).Error
	return cards, err
}

func (r *cardRepository) Update(ctx context.Context, card *models.Card) error {
	result := r.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"animal_name":            card.AnimalName,
			"animal_species":         card.AnimalSpecies,
			"animal_breed":           card.AnimalBreed,
			"animal_sex":             card.AnimalSex,
			"animal_age":             card.AnimalAge,
			"animal_color":           card.AnimalColor,
			"is_neutered":            card.IsNeutered,
			"pre_existing_illnesses": card.PreExistingIllnesses,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// AttachPhoto merges the photo URL into the card without touching the other
// attributes.
func (r *cardRepository) AttachPhoto(ctx context.Context, id, photoURL string) error {
	result := r.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ?", id).
		Update("photo_url", photoURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
