package usecase

import (
	"context"

	"github.com/shandysiswandi/gonotif/internal/notification/entity"
)

// Health reports static service information. It performs no network call.
func (s *Usecase) Health(ctx context.Context) entity.ServiceInfo {
	_, span := s.startSpan(ctx, "Health")
	defer span.End()

	provider := s.settings.Provider
	if provider == "" {
		provider = s.repoMail.Provider().String()
	}

	return entity.ServiceInfo{
		Service:     s.settings.ServiceName,
		Environment: s.settings.Environment,
		Provider:    provider,
		Backend:     s.repoMail.Provider().String(),
	}
}
