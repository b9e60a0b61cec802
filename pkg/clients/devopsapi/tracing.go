package devopsapi

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "devopsapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetBuild(ctx context.Context, project string, definitionID int) (build *Build, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBuild(ctx, project, definitionID)
}

func (c *tracingClient) GetTimeline(ctx context.Context, project string, buildID int) (records []TimelineRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTimeline"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTimeline(ctx, project, buildID)
}

func (c *tracingClient) GetCoverageSummary(ctx context.Context, project string, buildID int) (stats []CoverageStat, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetCoverageSummary"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetCoverageSummary(ctx, project, buildID)
}

func (c *tracingClient) GetAgents(ctx context.Context, poolID int, agentName string) (agents []Agent, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetAgents"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetAgents(ctx, poolID, agentName)
}
