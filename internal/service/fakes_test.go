package service

import (
	"context"
	"io"
	"sync"

	"petslife-service/internal/models"
	"petslife-service/internal/repository"
)

// In-memory fakes for the repository and object-store boundaries.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repository.ErrRecordNotFound
	}
	user.Name = name
	user.Username = username
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) UpdatePhotoURL(ctx context.Context, id, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repository.ErrRecordNotFound
	}
	user.PhotoURL = photoURL
	r.users[id] = user
	return nil
}

type pairKey struct {
	sender   string
	receiver string
}

type fakeFriendRepo struct {
	mu       sync.Mutex
	requests map[pairKey]models.FriendRequest
	subs     map[string][]chan struct{}
}

func newFakeFriendRepo() *fakeFriendRepo {
	return &fakeFriendRepo{
		requests: make(map[pairKey]models.FriendRequest),
		subs:     make(map[string][]chan struct{}),
	}
}

func (r *fakeFriendRepo) notify(receiverID string) {
	for _, ch := range r.subs[receiverID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (r *fakeFriendRepo) Create(ctx context.Context, request *models.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[pairKey{request.SenderID, request.ReceiverID}] = *request
	r.notify(request.ReceiverID)
	return nil
}

func (r *fakeFriendRepo) Find(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[pairKey{senderID, receiverID}]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &request, nil
}

func (r *fakeFriendRepo) UpdateStatus(ctx context.Context, senderID, receiverID string, status models.FriendRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{senderID, receiverID}
	request, ok := r.requests[key]
	if !ok {
		return repository.ErrRecordNotFound
	}
	request.Status = status
	r.requests[key] = request
	r.notify(receiverID)
	return nil
}

func (r *fakeFriendRepo) ListPending(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FriendRequest
	for _, request := range r.requests {
		if request.ReceiverID == receiverID && request.Status == models.FriendRequestStatusPending {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeFriendRepo) ListAcceptedBySender(ctx context.Context, senderID string) ([]models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FriendRequest
	for _, request := range r.requests {
		if request.SenderID == senderID && request.Status == models.FriendRequestStatusAccepted {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeFriendRepo) ListAcceptedByReceiver(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FriendRequest
	for _, request := range r.requests {
		if request.ReceiverID == receiverID && request.Status == models.FriendRequestStatusAccepted {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeFriendRepo) SubscribeChanges(ctx context.Context, receiverID string) (<-chan struct{}, error) {
	r.mu.Lock()
	ch := make(chan struct{}, 1)
	r.subs[receiverID] = append(r.subs[receiverID], ch)
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		defer r.mu.Unlock()
		chans := r.subs[receiverID]
		for i, c := range chans {
			if c == ch {
				r.subs[receiverID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

func (r *fakeFriendRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

type fakeCardRepo struct {
	mu    sync.Mutex
	cards map[string]models.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]models.Card)}
}

func (r *fakeCardRepo) Create(ctx context.Context, card *models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[card.ID] = *card
	return nil
}

func (r *fakeCardRepo) FindByID(ctx context.Context, id string) (*models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &card, nil
}

func (r *fakeCardRepo) ListAll(ctx context.Context) ([]models.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Card, 0, len(r.cards))
	for _, card := range r.cards {
		out = append(out, card)
	}
	return out, nil
}

func (r *fakeCardRepo) Update(ctx context.Context, card *models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.cards[card.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	existing.AnimalName = card.AnimalName
	existing.AnimalSpecies = card.AnimalSpecies
	existing.AnimalBreed = card.AnimalBreed
	existing.AnimalSex = card.AnimalSex
	existing.AnimalAge = card.AnimalAge
	existing.AnimalColor = card.AnimalColor
	existing.IsNeutered = card.IsNeutered
	existing.PreExistingIllnesses = card.PreExistingIllnesses
	r.cards[card.ID] = existing
	return nil
}

func (r *fakeCardRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.cards, id)
	return nil
}

func (r *fakeCardRepo) AttachPhoto(ctx context.Context, id, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	if !ok {
		return repository.ErrRecordNotFound
	}
	card.PhotoURL = photoURL
	r.cards[id] = card
	return nil
}

func (r *fakeCardRepo) get(id string) (models.Card, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[id]
	return card, ok
}

type fakeObjectStore struct {
	mu      sync.Mutex
	url     string
	err     error
	objects map[string][]byte
}

func newFakeObjectStore(url string, err error) *fakeObjectStore {
	return &fakeObjectStore{url: url, err: err, objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.objects[objectName] = data
	s.mu.Unlock()
	return s.url + "/" + objectName, nil
}
