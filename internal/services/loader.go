package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/models"
)

// RepositoryFetcher retrieves the raw repository list of an account
type RepositoryFetcher interface {
	Account() string
	FetchRepositories(ctx context.Context) ([]models.RemoteRepository, error)
}

// ProjectLoader turns an account's repositories into a gallery
type ProjectLoader struct {
	fetcher RepositoryFetcher
	now     func() time.Time
}

// NewProjectLoader creates a new ProjectLoader
func NewProjectLoader(f RepositoryFetcher) *ProjectLoader {
	return &ProjectLoader{fetcher: f, now: time.Now}
}

// Account returns the account the loader reads from
func (l *ProjectLoader) Account() string {
	return l.fetcher.Account()
}

// Load fetches, filters, sorts and maps the repositories. The returned
// gallery is owned by the caller; nothing is kept between calls.
func (l *ProjectLoader) Load(ctx context.Context) (*models.Gallery, error) {
	repos, err := l.fetcher.FetchRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	relevant := SelectRelevantRepositories(repos)
	SortByUpdated(relevant)

	projects := make([]models.Project, 0, len(relevant))
	for _, repo := range relevant {
		projects = append(projects, ToViewModel(repo))
	}

	logger.WithFields(logger.Fields{
		"account":  l.Account(),
		"fetched":  len(repos),
		"selected": len(projects),
	}).Info("Loaded projects")

	return &models.Gallery{
		Account:  l.Account(),
		Projects: projects,
		LoadedAt: l.now(),
	}, nil
}

type repoFilter func(models.RemoteRepository) bool

// relevanceTiers are tried in order; the first tier that keeps anything wins
var relevanceTiers = []repoFilter{
	func(r models.RemoteRepository) bool {
		return !r.Fork && r.Description != nil && strings.TrimSpace(*r.Description) != ""
	},
	func(r models.RemoteRepository) bool { return !r.Fork },
	func(models.RemoteRepository) bool { return true },
}

func isReadme(r models.RemoteRepository) bool {
	return strings.Contains(strings.ToLower(r.Name), "readme")
}

// SelectRelevantRepositories prefers described original work and degrades
// towards showing anything that is not a profile readme repository.
func SelectRelevantRepositories(all []models.RemoteRepository) []models.RemoteRepository {
	for _, keep := range relevanceTiers {
		var selected []models.RemoteRepository
		for _, repo := range all {
			if !isReadme(repo) && keep(repo) {
				selected = append(selected, repo)
			}
		}
		if len(selected) > 0 {
			return selected
		}
	}
	return []models.RemoteRepository{}
}

// SortByUpdated orders repositories newest first. Ties and unparsable
// timestamps keep their input order; unparsable values sort as oldest.
func SortByUpdated(repos []models.RemoteRepository) {
	slices.SortStableFunc(repos, func(a, b models.RemoteRepository) int {
		return parseTimestamp(b.UpdatedAt).Compare(parseTimestamp(a.UpdatedAt))
	})
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ToViewModel maps a repository record to a project
func ToViewModel(repo models.RemoteRepository) models.Project {
	description := models.DefaultDescription
	if repo.Description != nil && *repo.Description != "" {
		description = *repo.Description
	}

	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return models.Project{
		ID:          repo.ID,
		Name:        repo.Name,
		Description: description,
		Language:    repo.Language,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		URL:         repo.HTMLURL,
		Homepage:    repo.Homepage,
		Topics:      slices.Clone(topics),
		Updated:     repo.UpdatedAt,
	}
}
