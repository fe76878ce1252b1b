package service

import (
	"context"
	"testing"

	"petslife-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardFixture(t *testing.T) (*CardService, *fakeCardRepo, *fakeUserRepo) {
	t.Helper()
	cardRepo := newFakeCardRepo()
	userRepo := newFakeUserRepo()
	seedUsers(t, userRepo)
	return NewCardService(cardRepo, userRepo, nil), cardRepo, userRepo
}

func seedCards(t *testing.T, repo *fakeCardRepo) {
	t.Helper()
	cards := []models.Card{
		{ID: "card-1", UserUUID: "owner-a", AnimalName: "Rex", AnimalSpecies: "dog", AnimalBreed: "labrador"},
		{ID: "card-2", UserUUID: "owner-b", AnimalName: "Mimi", AnimalSpecies: "cat"},
		{ID: "card-3", UserUUID: "owner-c", AnimalName: "Rexona", AnimalSpecies: "dog"},
	}
	for i := range cards {
		require.NoError(t, repo.Create(context.Background(), &cards[i]))
	}
}

func cardIDs(cards []models.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	return ids
}

func TestListVisibleEmptyTermReturnsWholeGroup(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)

	visible, err := svc.ListVisible(context.Background(), []string{"owner-a", "owner-b"}, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"card-1", "card-2"}, cardIDs(visible))
}

func TestListVisibleExcludesOutsideGroup(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)

	visible, err := svc.ListVisible(context.Background(), []string{"owner-a"}, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"card-1"}, cardIDs(visible))
}

func TestListVisibleSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)
	group := []string{"owner-a", "owner-b", "owner-c"}

	visible, err := svc.ListVisible(context.Background(), group, "rex")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"card-1", "card-3"}, cardIDs(visible))

	visible, err = svc.ListVisible(context.Background(), group, "REX")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"card-1", "card-3"}, cardIDs(visible))
}

func TestListVisibleFilterIsIdempotent(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)
	group := []string{"owner-a", "owner-b", "owner-c"}

	once, err := svc.ListVisible(context.Background(), group, "rex")
	require.NoError(t, err)
	twice, err := svc.ListVisible(context.Background(), group, "rex")
	require.NoError(t, err)
	assert.ElementsMatch(t, cardIDs(once), cardIDs(twice))
}

func TestCreateCardForVetRejected(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)

	_, err := svc.Create(context.Background(), "vet-1", &models.CardAttributes{AnimalName: "Rex"})
	assert.ErrorIs(t, err, ErrVetOwnedCard)

	cards, err := cardRepo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCreateCardAssignsOwner(t *testing.T) {
	svc, _, _ := newCardFixture(t)

	card, err := svc.Create(context.Background(), "owner-a", &models.CardAttributes{
		AnimalName:    "Thor",
		AnimalSpecies: "dog",
		IsNeutered:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, "owner-a", card.UserUUID)
	assert.True(t, card.IsNeutered)
}

func TestUpdateCardNotOwner(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)

	_, err := svc.Update(context.Background(), "owner-b", "card-1", &models.CardAttributes{AnimalName: "Stolen"})
	assert.ErrorIs(t, err, ErrNotOwner)

	card, _ := cardRepo.get("card-1")
	assert.Equal(t, "Rex", card.AnimalName)
}

func TestDeleteCardNotOwner(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)

	assert.ErrorIs(t, svc.Delete(context.Background(), "owner-b", "card-1"), ErrNotOwner)
	_, ok := cardRepo.get("card-1")
	assert.True(t, ok)
}

func TestDeleteCard(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)

	require.NoError(t, svc.Delete(context.Background(), "owner-a", "card-1"))
	_, ok := cardRepo.get("card-1")
	assert.False(t, ok)
}

func TestAttachPhotoPreservesOtherAttributes(t *testing.T) {
	svc, cardRepo, _ := newCardFixture(t)
	seedCards(t, cardRepo)
	before, _ := cardRepo.get("card-1")

	require.NoError(t, svc.AttachPhoto(context.Background(), "card-1", "http://store/cards/card-1"))

	after, _ := cardRepo.get("card-1")
	assert.Equal(t, "http://store/cards/card-1", after.PhotoURL)
	after.PhotoURL = before.PhotoURL
	assert.Equal(t, before, after)
}

func TestAttachPhotoUnknownCard(t *testing.T) {
	svc, _, _ := newCardFixture(t)

	assert.ErrorIs(t, svc.AttachPhoto(context.Background(), "missing", "http://x"), ErrCardNotFound)
}

func TestIsOwner(t *testing.T) {
	svc, _, _ := newCardFixture(t)
	card := &models.Card{ID: "card-1", UserUUID: "owner-a"}

	assert.True(t, svc.IsOwner(card, "owner-a"))
	assert.False(t, svc.IsOwner(card, "owner-b"))
}
