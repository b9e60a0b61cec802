package infos

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) GetBadge(ctx context.Context, params BadgeParams) (markup string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "GetBadge", begin) }(time.Now())

	return s.Service.GetBadge(ctx, params)
}

func (s *metricsService) GetFieldTypes(ctx context.Context) (fieldTypes []string) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "GetFieldTypes", begin) }(time.Now())

	return s.Service.GetFieldTypes(ctx)
}

func (s *metricsService) ClearAgentNameCache(ctx context.Context) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "ClearAgentNameCache", begin) }(time.Now())

	s.Service.ClearAgentNameCache(ctx)
}
