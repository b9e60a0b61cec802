package api

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// HandleLogError logs errors intercepted by the logging decorators,
// skipping errors the caller handles itself
func HandleLogError(packageName, interfaceName, funcName string, err error, ignoredErrors ...error) {
	if err == nil {
		return
	}

	for _, e := range ignoredErrors {
		if errors.Is(err, e) {
			return
		}
	}

	log.Debug().Err(err).Msgf("%v.%v.%v decorator intercepted error", packageName, interfaceName, funcName)
}
