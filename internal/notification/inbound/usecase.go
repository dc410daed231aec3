package inbound

import (
	"context"

	"github.com/shandysiswandi/gonotif/internal/notification/entity"
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
)

type uc interface {
	SendEmail(ctx context.Context, in usecase.SendEmailInput) (*entity.EmailResult, error)
	Health(ctx context.Context) entity.ServiceInfo
}
