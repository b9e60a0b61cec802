package infos

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

type fieldKey struct {
	fieldType string
	subType   string
}

type resolvedField struct {
	title string
	value string
}

// fieldResolver computes the title and value of a badge field against
// one build. It lives for a single badge request; resolved fields and
// upstream coverage/timeline responses are memoized on the resolver so
// the primary field and tooltip placeholders never repeat a fetch.
type fieldResolver struct {
	devopsapiClient devopsapi.Client
	agentNameCache  *AgentNameCache

	project       string
	build         *devopsapi.Build
	overrideValue string

	resolved map[fieldKey]resolvedField

	coverageFetched bool
	coverageStats   []devopsapi.CoverageStat
	timelineFetched bool
	timelineRecords []devopsapi.TimelineRecord
}

func newFieldResolver(devopsapiClient devopsapi.Client, agentNameCache *AgentNameCache, project string, build *devopsapi.Build, overrideValue string) *fieldResolver {
	return &fieldResolver{
		devopsapiClient: devopsapiClient,
		agentNameCache:  agentNameCache,
		project:         project,
		build:           build,
		overrideValue:   overrideValue,
		resolved:        map[fieldKey]resolvedField{},
	}
}

// resolve dispatches on the lowercased field type and returns the title
// and value for it. Results are cached per (type, subType); upstream
// errors propagate uncached so a retry within the request is possible.
func (r *fieldResolver) resolve(ctx context.Context, fieldType, subType string) (title, value string, err error) {

	key := fieldKey{fieldType: strings.ToLower(fieldType), subType: subType}
	if cached, ok := r.resolved[key]; ok {
		return cached.title, cached.value, nil
	}

	switch key.fieldType {
	case fieldTypeBuildNumber:
		title, value = "number", r.build.BuildNumber

	case fieldTypeResultAge:
		title, value = r.resolveResultAge(key.subType)

	case fieldTypeDuration:
		title = "duration"
		if r.build.StartTime != nil && r.build.FinishTime != nil {
			value = fmt.Sprintf("%.2f min", r.build.FinishTime.Sub(*r.build.StartTime).Minutes())
		} else {
			value = r.build.Status
		}

	case fieldTypeFinishDate:
		title = "finished"
		if r.build.FinishTime != nil {
			value = r.build.FinishTime.Format("2006-01-02")
		} else {
			value = r.build.Status
		}

	case fieldTypeBestCoverage:
		title = "coverage"
		value, err = r.resolveBestCoverage(ctx)

	case fieldTypeCoverage:
		title = "coverage"
		value, err = r.resolveCoverage(ctx, key.subType)

	case fieldTypeQueueName:
		title = "queue"
		value = r.build.Queue.Name
		if value == "" {
			value = "-"
		}

	case fieldTypeQueuePosition:
		title = "queue position"
		if r.build.QueuePosition != nil {
			value = strconv.Itoa(*r.build.QueuePosition)
		} else {
			value = "-"
		}

	case fieldTypeAgentComputer:
		title = "agent"
		value, err = r.resolveAgentComputer(ctx)

	case fieldTypeSourceVersion:
		title, value = "source version", r.build.SourceVersion

	case fieldTypeSourceBranch:
		title, value = "source branch", r.build.SourceBranch

	default:
		// unrecognized types pass the caller-supplied value through, the
		// title stays unset for the caller to fill
		value = r.overrideValue
		if value == "" {
			value = "-"
		}
	}

	if err != nil {
		return "", "", err
	}

	r.resolved[key] = resolvedField{title: title, value: value}

	return title, value, nil
}

func (r *fieldResolver) resolveResultAge(subType string) (title, value string) {

	title = "build"

	if r.build.FinishTime == nil {
		if r.build.StartTime != nil {
			value = "started " + ago(time.Since(*r.build.StartTime))
		} else {
			value = "in progress"
		}
	} else {
		value = ago(time.Since(*r.build.FinishTime))
	}

	for _, flag := range strings.Split(subType, ",") {
		switch strings.ToLower(strings.TrimSpace(flag)) {
		case flagResultValue:
			if r.build.FinishTime != nil {
				value = r.build.Result.DisplayName() + " " + value
			}
		case flagBuildNumberTitle:
			title = r.build.BuildNumber
		}
	}

	return
}

func (r *fieldResolver) resolveBestCoverage(ctx context.Context) (value string, err error) {

	stats, err := r.getCoverageStats(ctx)
	if err != nil {
		return
	}

	best := -1.0
	for _, stat := range stats {
		if stat.Total == 0 {
			continue
		}
		if pct := percentage(stat); pct > best {
			best = pct
		}
	}

	if best < 0 {
		return "n.a.", nil
	}

	return fmt.Sprintf("%.1f%%", best), nil
}

func (r *fieldResolver) resolveCoverage(ctx context.Context, subType string) (value string, err error) {

	stats, err := r.getCoverageStats(ctx)
	if err != nil {
		return
	}

	var parts []string
	for _, stat := range stats {
		if stat.Total == 0 {
			continue
		}
		if subType != "" && !strings.EqualFold(stat.Label, subType) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%v  %.1f%%", strings.ToLower(stat.Label), percentage(stat)))
	}

	if len(parts) == 0 {
		return "n.a.", nil
	}

	return strings.Join(parts, " "), nil
}

func (r *fieldResolver) resolveAgentComputer(ctx context.Context) (computerName string, err error) {

	records, err := r.getTimelineRecords(ctx)
	if err != nil {
		return
	}

	workerName := ""
	for _, record := range records {
		if record.WorkerName != "" {
			workerName = record.WorkerName
			break
		}
	}
	if workerName == "" {
		return "", nil
	}

	return r.agentNameCache.Lookup(ctx, r.build.PoolID(), workerName)
}

func (r *fieldResolver) getCoverageStats(ctx context.Context) (stats []devopsapi.CoverageStat, err error) {

	if r.coverageFetched {
		return r.coverageStats, nil
	}

	stats, err = r.devopsapiClient.GetCoverageSummary(ctx, r.project, r.build.ID)
	if err != nil {
		return
	}

	r.coverageFetched = true
	r.coverageStats = stats

	return
}

func (r *fieldResolver) getTimelineRecords(ctx context.Context) (records []devopsapi.TimelineRecord, err error) {

	if r.timelineFetched {
		return r.timelineRecords, nil
	}

	records, err = r.devopsapiClient.GetTimeline(ctx, r.project, r.build.ID)
	if err != nil {
		return
	}

	r.timelineFetched = true
	r.timelineRecords = records

	return
}

// percentage assumes stat.Total > 0, callers skip zero-total stats
func percentage(stat devopsapi.CoverageStat) float64 {
	return float64(stat.Covered) / float64(stat.Total) * 100
}
