package infos

import (
	"context"
	"sync"

	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

type agentKey struct {
	poolID     int
	workerName string
}

// AgentNameCache memoizes the computer name of build agents per pool
// and worker name. Agent names are stable, so entries live until an
// explicit Clear. Misses are not cached, a later request retries them.
type AgentNameCache struct {
	devopsapiClient devopsapi.Client

	mu    sync.RWMutex
	names map[agentKey]string
}

// NewAgentNameCache returns an empty cache fetching through the passed
// client on misses
func NewAgentNameCache(devopsapiClient devopsapi.Client) *AgentNameCache {
	return &AgentNameCache{
		devopsapiClient: devopsapiClient,
		names:           map[agentKey]string{},
	}
}

// Lookup returns the computer name of the agent registered in poolID
// under workerName, fetching and caching it on first use. It returns
// empty without error when no matching agent exposes a computer name.
func (c *AgentNameCache) Lookup(ctx context.Context, poolID int, workerName string) (computerName string, err error) {

	key := agentKey{poolID: poolID, workerName: workerName}

	c.mu.RLock()
	computerName, ok := c.names[key]
	c.mu.RUnlock()
	if ok {
		return computerName, nil
	}

	agents, err := c.devopsapiClient.GetAgents(ctx, poolID, workerName)
	if err != nil {
		return "", err
	}

	for _, agent := range agents {
		if name := agent.SystemCapabilities[devopsapi.AgentCapabilityComputerName]; name != "" {
			c.mu.Lock()
			c.names[key] = name
			c.mu.Unlock()

			return name, nil
		}
	}

	return "", nil
}

// Clear drops all cached names; it is safe to call at any time
func (c *AgentNameCache) Clear() {
	c.mu.Lock()
	c.names = map[agentKey]string{}
	c.mu.Unlock()
}
