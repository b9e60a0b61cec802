package infos

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

func getAPIConfig() *api.APIConfig {
	config := &api.APIConfig{
		DevOps: &api.DevOpsConfig{
			ServerBaseURL: "https://devops.example.com/DefaultCollection",
			Token:         "pat-token",
		},
	}
	config.SetDefaults()

	return config
}

func TestGetBadge(t *testing.T) {

	project := "c4f86f26-1bf4-4452-bd7e-67db7a5c1486"

	t.Run("RendersInProgressBadgeForBuildWithoutTimestamps", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(&devopsapi.Build{ID: 7016, Status: "notStarted"}, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "result-age"})

		assert.Nil(t, err)
		assert.Contains(t, markup, ">in progress</text>")
		assert.Contains(t, markup, `fill="#2E64FE"`)
	})

	t.Run("RendersResultAndAgeForFinishedBuild", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 10*time.Minute)
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "result-age", SubType: "result-value"})

		assert.Nil(t, err)
		assert.Contains(t, markup, ">succeeded 1 hour ago</text>")
		assert.Contains(t, markup, `fill="#4BAE4F"`)
	})

	t.Run("RendersCustomBadgeWithoutFetchingABuild", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "custom", Title: "release"})

		assert.Nil(t, err)
		assert.Contains(t, markup, ">release</text>")
		assert.Contains(t, markup, ">-</text>")
	})

	t.Run("AppliesCallerColorOverrides", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 10*time.Minute)
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "result-age", ValueBackground: "#123456"})

		assert.Nil(t, err)
		assert.Contains(t, markup, `fill="#123456"`)
		assert.NotContains(t, markup, `fill="#4BAE4F"`)
	})

	t.Run("ExpandsTooltipTemplateThroughTheResolver", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 12*time.Minute+30*time.Second)
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "buildnumber", ToolTip: "Build {buildnumber} took {duration}"})

		assert.Nil(t, err)
		assert.Contains(t, markup, "<title>Build 20240501.1 took 12.50 min</title>")
	})

	t.Run("FallsBackToRawTooltipOnMalformedTemplate", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 10*time.Minute)
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "buildnumber", ToolTip: "oops {buildnumber"})

		assert.Nil(t, err)
		assert.Contains(t, markup, "<title>oops {buildnumber</title>")
	})

	t.Run("LinksToTheBuildPageForTheBuildResultSentinel", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 10*time.Minute)
		build.Links.Web.Href = "https://devops.example.com/p/_build/results?buildId=7016"
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "buildnumber", Href: "build-result"})

		assert.Nil(t, err)
		assert.Contains(t, markup, `<a href="https://devops.example.com/p/_build/results?buildId=7016">`)
	})

	t.Run("UsesOtherHrefValuesVerbatim", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		build := aFinishedBuild(devopsapi.BuildResultSucceeded, 90*time.Minute, 10*time.Minute)
		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(build, nil).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		markup, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "buildnumber", Href: "https://example.com/dashboard"})

		assert.Nil(t, err)
		assert.Contains(t, markup, `<a href="https://example.com/dashboard">`)
	})

	t.Run("PropagatesBuildNotFound", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetBuild(gomock.Any(), project, 435).Return(nil, errors.Wrap(devopsapi.ErrBuildNotFound, "build definition 435 has no builds")).Times(1)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		_, err := service.GetBadge(context.Background(), BadgeParams{Project: project, DefinitionID: 435, FieldType: "result-age"})

		assert.True(t, errors.Is(err, devopsapi.ErrBuildNotFound))
	})
}

func TestGetFieldTypes(t *testing.T) {

	t.Run("ListsAllRecognizedFieldTypes", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		service := NewService(getAPIConfig(), devopsapiClient, NewAgentNameCache(devopsapiClient))

		// act
		fieldTypes := service.GetFieldTypes(context.Background())

		assert.Equal(t, []string{"result-age", "buildnumber", "duration", "finishdate", "coverage", "best-coverage", "queue-name", "queue-position", "agent-computer", "source-version", "source-branch", "custom"}, fieldTypes)
	})
}

func TestClearAgentNameCache(t *testing.T) {

	t.Run("ForcesARefetchOnTheNextLookup", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetAgents(gomock.Any(), 3, "agent-07").Return([]devopsapi.Agent{
			{ID: 12, Name: "agent-07", SystemCapabilities: map[string]string{devopsapi.AgentCapabilityComputerName: "BUILDHOST-07"}},
		}, nil).Times(2)

		agentNameCache := NewAgentNameCache(devopsapiClient)
		service := NewService(getAPIConfig(), devopsapiClient, agentNameCache)

		_, err := agentNameCache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)

		// act
		service.ClearAgentNameCache(context.Background())

		_, err = agentNameCache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
	})
}
