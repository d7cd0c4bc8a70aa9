package analytics

import (
	"encoding/json"
	"time"
)

// Snapshot is one user's cumulative counter state as of a calendar date.
// Counters are non-negative and cumulative within a user's history; the
// ingestion side owns writes and this layer only ever reads.
type Snapshot struct {
	UserID                string
	Date                  time.Time
	CumulativePlaySeconds float64
	Metrics               MetricBag
}

// MetricBag is the per-snapshot JSON counter bag. Scalar counters sit next
// to per-game maps keyed by dynamic game ids, so aggregation iterates
// observed keys instead of assuming a fixed game set.
type MetricBag struct {
	Pseudo               string             `json:"pseudo,omitempty"`
	SessionCount         float64            `json:"sessionCount,omitempty"`
	TotalSessionDuration float64            `json:"totalSessionDuration,omitempty"`
	PurchaseAttempts     float64            `json:"purchaseAttempts,omitempty"`
	PurchaseSuccesses    float64            `json:"purchaseSuccesses,omitempty"`
	PurchaseCancels      float64            `json:"purchaseCancels,omitempty"`
	PurchaseTypes        map[string]float64 `json:"purchaseTypes,omitempty"`
	GameLaunches         map[string]float64 `json:"gameLaunches,omitempty"`
	GamePlayTime         map[string]float64 `json:"gamePlayTime,omitempty"`
	GameSwipes           map[string]float64 `json:"gameSwipes,omitempty"`
	GameExits            map[string]float64 `json:"gameExits,omitempty"`
	Likes                map[string]float64 `json:"likes,omitempty"`
	Bookmarks            map[string]float64 `json:"bookmarks,omitempty"`
	Shares               map[string]float64 `json:"shares,omitempty"`
	Comments             map[string]float64 `json:"comments,omitempty"`
	ScoreAttempts        map[string]float64 `json:"scoreAttempts,omitempty"`
	Top10Attempts        map[string]float64 `json:"top10Attempts,omitempty"`
}

// ParseMetricBag decodes a raw metrics JSON blob. Unknown keys are ignored;
// an empty or nil blob yields a zero bag rather than an error so a single
// malformed snapshot cannot poison a whole window.
func ParseMetricBag(raw []byte) MetricBag {
	var bag MetricBag
	if len(raw) == 0 {
		return bag
	}
	_ = json.Unmarshal(raw, &bag)
	return bag
}

// MetricType classifies a cost sample.
type MetricType string

const (
	MetricDBRequest   MetricType = "db_request"
	MetricBandwidth   MetricType = "bandwidth"
	MetricAuthSession MetricType = "auth_session"
)

// CostEvent is one infrastructure cost sample. Bandwidth values are bytes,
// the other types are counts. GameID is empty for platform-wide samples.
type CostEvent struct {
	Type   MetricType
	Value  float64
	GameID string
	At     time.Time
}

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string { return t.Format(dateLayout) }
