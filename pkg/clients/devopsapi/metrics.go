package devopsapi

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetBuild(ctx context.Context, project string, definitionID int) (build *Build, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuild", begin)
	}(time.Now())

	return c.Client.GetBuild(ctx, project, definitionID)
}

func (c *metricsClient) GetTimeline(ctx context.Context, project string, buildID int) (records []TimelineRecord, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTimeline", begin)
	}(time.Now())

	return c.Client.GetTimeline(ctx, project, buildID)
}

func (c *metricsClient) GetCoverageSummary(ctx context.Context, project string, buildID int) (stats []CoverageStat, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetCoverageSummary", begin)
	}(time.Now())

	return c.Client.GetCoverageSummary(ctx, project, buildID)
}

func (c *metricsClient) GetAgents(ctx context.Context, poolID int, agentName string) (agents []Agent, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetAgents", begin)
	}(time.Now())

	return c.Client.GetAgents(ctx, poolID, agentName)
}
