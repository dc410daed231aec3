package inbound

import (
	"github.com/shandysiswandi/gonotif/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/health", end.Health)
	r.POST("/api/v1/notifications/send", end.SendEmail)
}
