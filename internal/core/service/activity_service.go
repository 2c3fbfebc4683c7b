package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists events to the
// audit collection. Recording is best-effort; callers never block on it.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Record(ctx context.Context, event domain.ActivityEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("type", string(event.Type)).
		Str("article_id", event.ArticleID).
		Str("actor_id", event.ActorID).
		Msg("activity recorded")
	return nil
}
