package infos

// field types the resolver dispatches on, compared after lowercasing
const (
	fieldTypeResultAge     = "result-age"
	fieldTypeBuildNumber   = "buildnumber"
	fieldTypeDuration      = "duration"
	fieldTypeFinishDate    = "finishdate"
	fieldTypeCoverage      = "coverage"
	fieldTypeBestCoverage  = "best-coverage"
	fieldTypeQueueName     = "queue-name"
	fieldTypeQueuePosition = "queue-position"
	fieldTypeAgentComputer = "agent-computer"
	fieldTypeSourceVersion = "source-version"
	fieldTypeSourceBranch  = "source-branch"
	fieldTypeCustom        = "custom"
)

// subType modifier flags of the result-age field
const (
	flagResultValue      = "result-value"
	flagBuildNumberTitle = "buildnumber-title"
)

// linkBuildResult makes the badge link to the build's own page on the
// build server instead of a caller-supplied url
const linkBuildResult = "build-result"

// BadgeParams carries everything a caller can set on a badge request
type BadgeParams struct {
	Project      string
	DefinitionID int
	FieldType    string
	SubType      string

	// caller overrides, empty means unset
	Title           string
	TitleColor      string
	TitleBackground string
	Value           string
	ValueColor      string
	ValueBackground string
	ToolTip         string
	Href            string
}
