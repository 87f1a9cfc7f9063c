// Package query serves read-only conference search and suggestions. It never
// mutates and takes per-record snapshots from the inventory store, so it runs
// without the coordinator's exclusion.
package query

import (
	"context"
	"strings"

	"confbook/internal/inventory"
	"confbook/pkg/config"
	apperrors "confbook/pkg/errors"
	"confbook/pkg/model"
)

type Service struct {
	store *inventory.Store
}

func NewService(store *inventory.Store) *Service {
	return &Service{store: store}
}

// Search filters conferences by optional location substring and topic
// membership. Filters are AND-combined; an empty filter matches everything.
func (s *Service) Search(ctx context.Context, location string, topics []string) []*model.Conference {
	results := make([]*model.Conference, 0)
	for _, conf := range s.store.Conferences() {
		if location != "" && !strings.Contains(conf.Location, location) {
			continue
		}
		if len(topics) > 0 && !intersects(conf.Topics, topics) {
			continue
		}
		results = append(results, conf)
	}
	return results
}

// Suggest returns up to DefaultSuggestionLimit conferences sharing a topic
// with the user's interests, in the store's registration order.
func (s *Service) Suggest(ctx context.Context, userID string) ([]*model.Conference, error) {
	user, err := s.store.User(userID)
	if err != nil {
		return nil, apperrors.NotFoundWithID("User", userID)
	}

	suggestions := make([]*model.Conference, 0, config.DefaultSuggestionLimit)
	for _, conf := range s.store.Conferences() {
		if !intersects(conf.Topics, user.InterestedTopics) {
			continue
		}
		suggestions = append(suggestions, conf)
		if len(suggestions) == config.DefaultSuggestionLimit {
			break
		}
	}
	return suggestions, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
