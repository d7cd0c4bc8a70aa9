package moderationgorm

// Severity tiers, derived at read time from the true report count.
const (
	SeverityAutoHide  = "auto_hide"
	SeverityCritical  = "critical"
	SeverityAttention = "attention"
	SeverityFlagged   = "flagged"
)

// Severity classifies a true report count. Monotonic: a higher count never
// maps to a lower tier.
func Severity(trueReports int) string {
	switch {
	case trueReports >= 10:
		return SeverityAutoHide
	case trueReports >= 5:
		return SeverityCritical
	case trueReports >= 2:
		return SeverityAttention
	default:
		return SeverityFlagged
	}
}

// Status is the queue-facing state label. Hidden overrides the severity
// tiers; deleted comments never reach the queue at all.
func Status(isHidden bool, trueReports int) string {
	if isHidden {
		return "hidden"
	}
	return Severity(trueReports)
}
