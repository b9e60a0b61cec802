package infos

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

func TestAgentNameCacheLookup(t *testing.T) {

	t.Run("FetchesOnFirstLookupAndServesRepeatsFromCache", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetAgents(gomock.Any(), 3, "agent-07").Return([]devopsapi.Agent{
			{ID: 12, Name: "agent-07", SystemCapabilities: map[string]string{devopsapi.AgentCapabilityComputerName: "BUILDHOST-07"}},
		}, nil).Times(1)

		cache := NewAgentNameCache(devopsapiClient)

		// act
		name, err := cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
		assert.Equal(t, "BUILDHOST-07", name)

		name, err = cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
		assert.Equal(t, "BUILDHOST-07", name)
	})

	t.Run("DoesNotCacheMisses", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetAgents(gomock.Any(), 3, "agent-07").Return([]devopsapi.Agent{
			{ID: 12, Name: "agent-07"},
		}, nil).Times(2)

		cache := NewAgentNameCache(devopsapiClient)

		// act
		name, err := cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
		assert.Equal(t, "", name)

		name, err = cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
		assert.Equal(t, "", name)
	})

	t.Run("ClearDropsCachedNames", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetAgents(gomock.Any(), 3, "agent-07").Return([]devopsapi.Agent{
			{ID: 12, Name: "agent-07", SystemCapabilities: map[string]string{devopsapi.AgentCapabilityComputerName: "BUILDHOST-07"}},
		}, nil).Times(2)

		cache := NewAgentNameCache(devopsapiClient)

		_, err := cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)

		// act
		cache.Clear()

		name, err := cache.Lookup(context.Background(), 3, "agent-07")
		assert.Nil(t, err)
		assert.Equal(t, "BUILDHOST-07", name)
	})

	t.Run("PropagatesUpstreamErrors", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devopsapiClient := devopsapi.NewMockClient(ctrl)

		devopsapiClient.EXPECT().GetAgents(gomock.Any(), 3, "agent-07").Return(nil, assert.AnError)

		cache := NewAgentNameCache(devopsapiClient)

		// act
		_, err := cache.Lookup(context.Background(), 3, "agent-07")

		assert.NotNil(t, err)
	})
}
