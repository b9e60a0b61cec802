package infos

import (
	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
)

// resultColors returns the background and foreground of the value cell
// for a result-age badge. Builds without a finish time render blue,
// finished builds render by result.
func resultColors(build *devopsapi.Build) (background, foreground string) {

	if build == nil || build.FinishTime == nil {
		return "#2E64FE", "#fff"
	}

	switch build.Result {
	case devopsapi.BuildResultSucceeded:
		return "#4BAE4F", "#fff"
	case devopsapi.BuildResultPartiallySucceeded:
		return "#FEC006", "#000"
	case devopsapi.BuildResultFailed, devopsapi.BuildResultCanceled:
		return "#F34235", "#fff"
	case devopsapi.BuildResultNone:
		return "#BBBBBB", "#fff"
	}

	return "#BBBBBB", "#fff"
}
