package models

import (
	"time"
)

// Card is a published record describing one animal, owned by exactly one
// regular user. UserUUID is a weak reference: deleting a user does not
// cascade to their cards.
type Card struct {
	ID                   string `gorm:"primaryKey;type:uuid" json:"id"`
	UserUUID             string `gorm:"index;not null;type:uuid" json:"userUUID"`
	AnimalName           string `gorm:"not null" json:"animalName"`
	AnimalSpecies        string `json:"animalSpecies"`
	AnimalBreed          string `json:"animalBreed"`
	AnimalSex            string `json:"animalSex"`
	AnimalAge            string `json:"animalAge"`
	AnimalColor          string `json:"animalColor"`
	IsNeutered           bool   `json:"isNeutered"`
	PreExistingIllnesses string `json:"preExistingIllnesses"`
	PhotoURL             string `json:"photoUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CardAttributes carries the owner-editable fields shared by the create and
// update payloads.
type CardAttributes struct {
	AnimalName           string `json:"animalName" binding:"required"`
	AnimalSpecies        string `json:"animalSpecies"`
	AnimalBreed          string `json:"animalBreed"`
	AnimalSex            string `json:"animalSex"`
	AnimalAge            string `json:"animalAge"`
	AnimalColor          string `json:"animalColor"`
	IsNeutered           bool   `json:"isNeutered"`
	PreExistingIllnesses string `json:"preExistingIllnesses"`
}
