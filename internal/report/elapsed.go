package report

import (
	"math"
	"time"
)

const (
	// NoRecordSentinel stands in for "no activity ever recorded". It is a
	// magic value the presentation layer renders as "no record", so it must
	// survive round trips unchanged.
	NoRecordSentinel = 999

	// OverdueThresholdDays is the fixed business rule for flagging a client
	// as needing attention.
	OverdueThresholdDays = 90

	// WarningThresholdDays marks the middle badge tier.
	WarningThresholdDays = 60
)

// Tier is the badge severity for a client's elapsed days.
type Tier string

const (
	TierNoData  Tier = "no_data"
	TierOverdue Tier = "overdue"
	TierWarning Tier = "warning"
	TierNormal  Tier = "normal"
)

// DaysElapsed returns whole days between the last activity and today, via
// floor division of the wall-clock difference. DST shifts are not treated
// specially. A nil last date yields NoRecordSentinel.
func DaysElapsed(lastActivity *time.Time, today time.Time) int {
	if lastActivity == nil {
		return NoRecordSentinel
	}
	return int(math.Floor(today.Sub(*lastActivity).Hours() / 24))
}

// IsOverdue applies the raw >90 rule. Note the sentinel also satisfies it;
// callers that need to tell "never visited" apart from "overdue" must check
// the sentinel first, which is what ElapsedTier does.
func IsOverdue(days int) bool {
	return days > OverdueThresholdDays
}

// ElapsedTier classifies elapsed days for badge display. Precedence: the
// sentinel wins over every threshold, then overdue, then warning.
func ElapsedTier(days int) Tier {
	switch {
	case days == NoRecordSentinel:
		return TierNoData
	case days > OverdueThresholdDays:
		return TierOverdue
	case days > WarningThresholdDays:
		return TierWarning
	default:
		return TierNormal
	}
}
