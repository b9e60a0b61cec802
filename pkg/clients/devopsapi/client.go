package devopsapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/sethgrid/pester"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
)

const apiVersion = "6.0"

var (
	// ErrBuildNotFound is returned when a build definition has no builds yet
	ErrBuildNotFound = errors.New("The build can't be found")
)

// Client communicates with the upstream build server api
//
//go:generate mockgen -package=devopsapi -destination ./mock.go -source=client.go
type Client interface {
	GetBuild(ctx context.Context, project string, definitionID int) (build *Build, err error)
	GetTimeline(ctx context.Context, project string, buildID int) (records []TimelineRecord, err error)
	GetCoverageSummary(ctx context.Context, project string, buildID int) (stats []CoverageStat, err error)
	GetAgents(ctx context.Context, poolID int, agentName string) (agents []Agent, err error)
}

// NewClient returns a new devopsapi.Client
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// GetBuild returns the most recently queued build of a build definition
func (c *client) GetBuild(ctx context.Context, project string, definitionID int) (build *Build, err error) {

	getBuildsURL := fmt.Sprintf("%v/%v/_apis/build/builds?definitions=%v&$top=1&queryOrder=queueTimeDescending&api-version=%v", c.config.DevOps.ServerBaseURL, url.PathEscape(project), definitionID, apiVersion)

	var listResponse struct {
		Count int      `json:"count"`
		Value []*Build `json:"value"`
	}

	err = c.getFromURL(ctx, getBuildsURL, &listResponse)
	if err != nil {
		return
	}

	if len(listResponse.Value) == 0 {
		return nil, errors.Wrapf(ErrBuildNotFound, "build definition %v has no builds", definitionID)
	}

	return listResponse.Value[0], nil
}

// GetTimeline returns the timeline records of a build
func (c *client) GetTimeline(ctx context.Context, project string, buildID int) (records []TimelineRecord, err error) {

	getTimelineURL := fmt.Sprintf("%v/%v/_apis/build/builds/%v/timeline?api-version=%v", c.config.DevOps.ServerBaseURL, url.PathEscape(project), buildID, apiVersion)

	var timelineResponse struct {
		Records []TimelineRecord `json:"records"`
	}

	err = c.getFromURL(ctx, getTimelineURL, &timelineResponse)
	if err != nil {
		return
	}

	return timelineResponse.Records, nil
}

// GetCoverageSummary returns all code coverage stats recorded for a
// build, flattened across coverage entries
func (c *client) GetCoverageSummary(ctx context.Context, project string, buildID int) (stats []CoverageStat, err error) {

	getCoverageURL := fmt.Sprintf("%v/%v/_apis/test/codecoverage?buildId=%v&api-version=%v-preview.1", c.config.DevOps.ServerBaseURL, url.PathEscape(project), buildID, apiVersion)

	var coverageResponse struct {
		CoverageData []struct {
			CoverageStats []CoverageStat `json:"coverageStats"`
		} `json:"coverageData"`
	}

	err = c.getFromURL(ctx, getCoverageURL, &coverageResponse)
	if err != nil {
		return
	}

	for _, entry := range coverageResponse.CoverageData {
		stats = append(stats, entry.CoverageStats...)
	}

	return stats, nil
}

// GetAgents returns the agents in a pool matching a name, including
// their capabilities
func (c *client) GetAgents(ctx context.Context, poolID int, agentName string) (agents []Agent, err error) {

	getAgentsURL := fmt.Sprintf("%v/_apis/distributedtask/pools/%v/agents?agentName=%v&includeCapabilities=true&api-version=%v", c.config.DevOps.ServerBaseURL, poolID, url.QueryEscape(agentName), apiVersion)

	var agentsResponse struct {
		Count int     `json:"count"`
		Value []Agent `json:"value"`
	}

	err = c.getFromURL(ctx, getAgentsURL, &agentsResponse)
	if err != nil {
		return
	}

	return agentsResponse.Value, nil
}

func (c *client) getFromURL(ctx context.Context, requestURL string, target interface{}) (err error) {

	// create client, in order to add headers
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 10

	request, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return
	}
	request = request.WithContext(ctx)

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// add tracing context
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	// add headers
	if c.config.DevOps.Token != "" {
		request.Header.Add("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(":"+c.config.DevOps.Token)))
	}
	request.Header.Add("Accept", "application/json")

	// perform actual request
	response, err := client.Do(request)
	if err != nil {
		return
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%v responded with status code %v", requestURL, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return
	}

	// unmarshal json body
	err = json.Unmarshal(body, target)
	if err != nil {
		return errors.Wrapf(err, "failed unmarshalling response from %v", requestURL)
	}

	return
}
