package cli

// Column widths for formatted table output.
const (
	// AppColumnWidth is the width of the app name column.
	AppColumnWidth = 30
	// VersionColumnWidth is the width of the version column.
	VersionColumnWidth = 15
	// PlanRuleWidth is the width of the separator line under plan tables.
	PlanRuleWidth = 70
	// ListRuleWidth is the width of the separator line under list tables.
	ListRuleWidth = 60
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)
