package infos

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
	"github.com/devopsinfo/devops-badge-api/pkg/badge"
	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

// Service renders build info badges
//
//go:generate mockgen -package=infos -destination ./mock.go -source=service.go
type Service interface {
	GetBadge(ctx context.Context, params BadgeParams) (markup string, err error)
	GetFieldTypes(ctx context.Context) (fieldTypes []string)
	ClearAgentNameCache(ctx context.Context)
}

// NewService returns a new infos.Service
func NewService(config *api.APIConfig, devopsapiClient devopsapi.Client, agentNameCache *AgentNameCache) Service {
	return &service{
		devopsapiClient: devopsapiClient,
		agentNameCache:  agentNameCache,
		measurer:        badge.NewFontMeasurer(config.Badge.FontFamily, config.Badge.FontSize),
	}
}

type service struct {
	devopsapiClient devopsapi.Client
	agentNameCache  *AgentNameCache
	measurer        badge.TextMeasurer
}

func (s *service) GetBadge(ctx context.Context, params BadgeParams) (markup string, err error) {

	var build *devopsapi.Build
	if fieldNeedsBuild(params.FieldType) || params.ToolTip != "" || params.Href == linkBuildResult {
		build, err = s.devopsapiClient.GetBuild(ctx, params.Project, params.DefinitionID)
		if err != nil {
			return
		}
	}

	resolver := newFieldResolver(s.devopsapiClient, s.agentNameCache, params.Project, build, params.Value)

	title, value, err := resolver.resolve(ctx, params.FieldType, params.SubType)
	if err != nil {
		return
	}

	b := badge.Badge{
		Title:           title,
		TitleColor:      badge.DefaultTitleColor,
		TitleBackground: badge.DefaultTitleBackground,
		Value:           value,
		ValueColor:      badge.DefaultValueColor,
		ValueBackground: badge.DefaultValueBackground,
	}

	if strings.EqualFold(params.FieldType, fieldTypeResultAge) {
		b.ValueBackground, b.ValueColor = resultColors(build)
	}

	// caller overrides win over resolved and computed values
	if params.Title != "" {
		b.Title = params.Title
	}
	if params.TitleColor != "" {
		b.TitleColor = params.TitleColor
	}
	if params.TitleBackground != "" {
		b.TitleBackground = params.TitleBackground
	}
	if params.ValueColor != "" {
		b.ValueColor = params.ValueColor
	}
	if params.ValueBackground != "" {
		b.ValueBackground = params.ValueBackground
	}

	if params.ToolTip != "" {
		expanded, expandErr := expandTemplate(ctx, resolver, params.ToolTip)
		if expandErr != nil {
			if !isTemplateError(expandErr) {
				return "", expandErr
			}
			log.Warn().Err(expandErr).Str("project", params.Project).Msg("Falling back to unexpanded tooltip template")
			expanded = params.ToolTip
		}
		b.ToolTip = expanded
	}

	switch {
	case params.Href == linkBuildResult:
		b.Link = build.WebURL()
	case params.Href != "":
		b.Link = params.Href
	}

	return badge.Render(b, s.measurer), nil
}

func (s *service) GetFieldTypes(ctx context.Context) (fieldTypes []string) {
	return []string{
		fieldTypeResultAge,
		fieldTypeBuildNumber,
		fieldTypeDuration,
		fieldTypeFinishDate,
		fieldTypeCoverage,
		fieldTypeBestCoverage,
		fieldTypeQueueName,
		fieldTypeQueuePosition,
		fieldTypeAgentComputer,
		fieldTypeSourceVersion,
		fieldTypeSourceBranch,
		fieldTypeCustom,
	}
}

func (s *service) ClearAgentNameCache(ctx context.Context) {
	s.agentNameCache.Clear()
}

// fieldNeedsBuild reports whether a field type reads build metadata;
// unrecognized types render from caller overrides alone
func fieldNeedsBuild(fieldType string) bool {
	switch strings.ToLower(fieldType) {
	case fieldTypeResultAge, fieldTypeBuildNumber, fieldTypeDuration, fieldTypeFinishDate,
		fieldTypeCoverage, fieldTypeBestCoverage, fieldTypeQueueName, fieldTypeQueuePosition,
		fieldTypeAgentComputer, fieldTypeSourceVersion, fieldTypeSourceBranch:
		return true
	}

	return false
}
