package devopsapi

import "time"

// BuildResult is the outcome the build server reports for a finished
// build.
type BuildResult string

const (
	BuildResultSucceeded          BuildResult = "succeeded"
	BuildResultPartiallySucceeded BuildResult = "partiallySucceeded"
	BuildResultFailed             BuildResult = "failed"
	BuildResultCanceled           BuildResult = "canceled"
	BuildResultNone               BuildResult = "none"
)

// DisplayName returns the human word shown on result badges.
func (r BuildResult) DisplayName() string {
	switch r {
	case BuildResultSucceeded:
		return "succeeded"
	case BuildResultPartiallySucceeded:
		return "partially succeeded"
	case BuildResultFailed:
		return "failed"
	case BuildResultCanceled:
		return "canceled"
	case BuildResultNone:
		return "none"
	}

	return "none"
}

// Build is a single execution of a build definition. It is fetched once
// per badge request and never mutated afterwards.
type Build struct {
	ID            int         `json:"id"`
	BuildNumber   string      `json:"buildNumber"`
	Status        string      `json:"status"`
	Result        BuildResult `json:"result,omitempty"`
	QueuePosition *int        `json:"queuePosition,omitempty"`
	StartTime     *time.Time  `json:"startTime,omitempty"`
	FinishTime    *time.Time  `json:"finishTime,omitempty"`
	SourceBranch  string      `json:"sourceBranch"`
	SourceVersion string      `json:"sourceVersion"`
	Queue         BuildQueue  `json:"queue"`
	Links         BuildLinks  `json:"_links"`
}

// PoolID returns the id of the agent pool the build was queued to, or
// zero when the queue carries no pool.
func (b *Build) PoolID() int {
	if b.Queue.Pool == nil {
		return 0
	}
	return b.Queue.Pool.ID
}

// WebURL returns the url of the build's own page on the build server.
func (b *Build) WebURL() string {
	return b.Links.Web.Href
}

// BuildQueue is the queue a build was submitted to.
type BuildQueue struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Pool *AgentPool `json:"pool,omitempty"`
}

// AgentPool is a pool of build agents.
type AgentPool struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BuildLinks carries the reference links of a build.
type BuildLinks struct {
	Web Link `json:"web"`
}

// Link is a single reference link.
type Link struct {
	Href string `json:"href"`
}

// TimelineRecord is one entry of a build timeline; job records carry
// the name of the worker they ran on.
type TimelineRecord struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	WorkerName string `json:"workerName,omitempty"`
}

// CoverageStat is a single labelled code coverage figure of a build.
type CoverageStat struct {
	Label   string `json:"label"`
	Covered int    `json:"covered"`
	Total   int    `json:"total"`
}

// Agent is a worker registered in an agent pool.
type Agent struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	SystemCapabilities map[string]string `json:"systemCapabilities,omitempty"`
}

// AgentCapabilityComputerName is the capability key under which agents
// report the name of the machine they run on.
const AgentCapabilityComputerName = "Agent.ComputerName"
