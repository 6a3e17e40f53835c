package queries

import (
	"context"

	"github.com/google/uuid"
)

type SuggestionQueries interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID, onlyPending bool) ([]*SuggestionView, error)
}

type SuggestionViewRepo interface {
	FindByProperty(ctx context.Context, propertyID uuid.UUID, onlyPending bool) ([]*SuggestionView, error)
}

type suggestionQueriesImpl struct {
	repo SuggestionViewRepo
}

func NewSuggestionQueries(repo SuggestionViewRepo) SuggestionQueries {
	return &suggestionQueriesImpl{repo: repo}
}

func (q *suggestionQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, onlyPending bool) ([]*SuggestionView, error) {
	return q.repo.FindByProperty(ctx, propertyID, onlyPending)
}
