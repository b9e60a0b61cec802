package badge

// Badge describes the two cells of a status badge plus its optional
// tooltip and hyperlink. Colors are css color strings.
type Badge struct {
	Title           string
	TitleColor      string
	TitleBackground string
	Value           string
	ValueColor      string
	ValueBackground string
	ToolTip         string
	Link            string
}

// colors applied when the caller supplies none
const (
	DefaultTitleColor      = "#000"
	DefaultTitleBackground = "#f1f1f1"
	DefaultValueColor      = "#fff"
	DefaultValueBackground = "#08298A"
)
