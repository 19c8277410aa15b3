package services

import (
	"context"
	"fmt"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/github"
	"github.com/Francobelbruno/Portafolio/internal/models"
)

// User-facing messages for a failed load
const (
	RateLimitMessage = "The GitHub API rate limit for unauthenticated requests was reached. Try again later."
	GenericMessage   = "The projects could not be loaded. Please try again later."
)

// LoadState is the outcome of the latest load
type LoadState int

const (
	StateLoading LoadState = iota
	StateSuccess
	StateFailure
)

func (s LoadState) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "loading"
	}
}

// Snapshot is a consistent view of the service state
type Snapshot struct {
	State   LoadState
	Gallery *models.Gallery
	Err     error
}

// Cards builds display cards for the snapshot gallery, or nil if none loaded
func (s Snapshot) Cards() []models.Card {
	if s.Gallery == nil {
		return nil
	}
	return BuildCards(s.Gallery)
}

// ProjectService handles project-related operations
type ProjectService struct {
	loader *ProjectLoader

	mu      sync.RWMutex
	state   LoadState
	gallery *models.Gallery
	lastErr error
}

// NewProjectService creates a new ProjectService
func NewProjectService(loader *ProjectLoader) *ProjectService {
	return &ProjectService{loader: loader, state: StateLoading}
}

// Account returns the account projects are loaded from
func (s *ProjectService) Account() string {
	return s.loader.Account()
}

// Reload runs the loader. The gallery is replaced only when the load
// succeeds; a failure leaves the previous gallery in place.
func (s *ProjectService) Reload(ctx context.Context) (*models.Gallery, error) {
	gallery, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailure
		s.lastErr = err
		logger.WithFields(logger.Fields{
			"account":    s.Account(),
			"rate_limit": github.IsRateLimit(err),
		}).Errorf("Failed to load projects: %v", err)
		return nil, err
	}

	s.state = StateSuccess
	s.gallery = gallery
	s.lastErr = nil
	return gallery, nil
}

// Snapshot returns the current state
func (s *ProjectService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, Gallery: s.gallery, Err: s.lastErr}
}

// GetAll returns all cards of the current gallery
func (s *ProjectService) GetAll() []models.Card {
	return s.Snapshot().Cards()
}

// GetByID returns a specific card by repository ID
func (s *ProjectService) GetByID(id int64) (*models.Card, error) {
	for _, card := range s.GetAll() {
		if card.ID == id {
			return &card, nil
		}
	}
	return nil, fmt.Errorf("project not found: %d", id)
}

// UserMessage returns the message shown to visitors for a load failure
func UserMessage(err error) string {
	if github.IsRateLimit(err) {
		return RateLimitMessage
	}
	return GenericMessage
}
