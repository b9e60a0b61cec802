package infos

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "infos"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) GetBadge(ctx context.Context, params BadgeParams) (markup string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "GetBadge"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.GetBadge(ctx, params)
}

func (s *tracingService) GetFieldTypes(ctx context.Context) (fieldTypes []string) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "GetFieldTypes"))
	defer func() { api.FinishSpan(span) }()

	return s.Service.GetFieldTypes(ctx)
}

func (s *tracingService) ClearAgentNameCache(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ClearAgentNameCache"))
	defer func() { api.FinishSpan(span) }()

	s.Service.ClearAgentNameCache(ctx)
}
