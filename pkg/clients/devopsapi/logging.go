package devopsapi

import (
	"context"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "devopsapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetBuild(ctx context.Context, project string, definitionID int) (build *Build, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuild", err, ErrBuildNotFound) }()

	return c.Client.GetBuild(ctx, project, definitionID)
}

func (c *loggingClient) GetTimeline(ctx context.Context, project string, buildID int) (records []TimelineRecord, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTimeline", err) }()

	return c.Client.GetTimeline(ctx, project, buildID)
}

func (c *loggingClient) GetCoverageSummary(ctx context.Context, project string, buildID int) (stats []CoverageStat, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetCoverageSummary", err) }()

	return c.Client.GetCoverageSummary(ctx, project, buildID)
}

func (c *loggingClient) GetAgents(ctx context.Context, poolID int, agentName string) (agents []Agent, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetAgents", err) }()

	return c.Client.GetAgents(ctx, poolID, agentName)
}
