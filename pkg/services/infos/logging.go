package infos

import (
	"context"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "infos"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) GetBadge(ctx context.Context, params BadgeParams) (markup string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "GetBadge", err, devopsapi.ErrBuildNotFound) }()

	return s.Service.GetBadge(ctx, params)
}

func (s *loggingService) GetFieldTypes(ctx context.Context) (fieldTypes []string) {
	return s.Service.GetFieldTypes(ctx)
}

func (s *loggingService) ClearAgentNameCache(ctx context.Context) {
	s.Service.ClearAgentNameCache(ctx)
}
