package analytics

import (
	"testing"
	"time"
)

func ev(t MetricType, v float64, game string, at time.Time) CostEvent {
	return CostEvent{Type: t, Value: v, GameID: game, At: at}
}

func TestCostOverviewTrendScenario(t *testing.T) {
	current := []CostEvent{
		ev(MetricDBRequest, 60000, "", day(7)),
		ev(MetricDBRequest, 50000, "", day(8)),
		ev(MetricBandwidth, 1000, "", day(7)),
	}
	previous := []CostEvent{
		ev(MetricDBRequest, 40000, "", day(0)),
	}
	got := ComputeCostOverview(current, previous, 4)
	if got.TotalDBRequests != 110000 {
		t.Fatalf("total db = %d, want 110000", got.TotalDBRequests)
	}
	if got.TrendDBRequests == nil || *got.TrendDBRequests != 175.00 {
		t.Fatalf("trend db = %v, want 175.00", got.TrendDBRequests)
	}
	// Bandwidth has current samples but a zero baseline: nil, not +Inf.
	if got.TrendBandwidth != nil {
		t.Fatalf("trend bandwidth = %v, want nil on zero baseline", *got.TrendBandwidth)
	}
	// Auth has no current samples at all: nil.
	if got.TrendAuth != nil {
		t.Fatalf("trend auth = %v, want nil when type absent", *got.TrendAuth)
	}
	if got.AvgCostPerPlayer != 27500 {
		t.Fatalf("avg cost per player = %v, want 27500", got.AvgCostPerPlayer)
	}
}

func TestCostOverviewNoPlayers(t *testing.T) {
	got := ComputeCostOverview([]CostEvent{ev(MetricDBRequest, 500, "", day(0))}, nil, 0)
	if got.AvgCostPerPlayer != 0 {
		t.Fatalf("avg cost with zero players = %v, want 0", got.AvgCostPerPlayer)
	}
}

func TestGameEfficiencyInnerJoin(t *testing.T) {
	events := []CostEvent{
		ev(MetricDBRequest, 2000, "snake", day(0)),
		ev(MetricBandwidth, 4<<20, "snake", day(0)),
		ev(MetricDBRequest, 9999, "ghost", day(0)), // no snapshot side
	}
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches:      map[string]float64{"snake": 5},
			GamePlayTime:      map[string]float64{"snake": 600},
			PurchaseAttempts:  2,
			PurchaseSuccesses: 1,
		}, 600),
		snap("u2", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 5},
		}, 0),
	}
	rows := GameEfficiency(events, snaps)
	if len(rows) != 1 || rows[0].GameID != "snake" {
		t.Fatalf("want only the joined game, got %+v", rows)
	}
	r := rows[0]
	if r.UniquePlayers != 2 || r.DBRequestsPerPlayer != 1000 {
		t.Fatalf("players/db-per-player = %d/%v", r.UniquePlayers, r.DBRequestsPerPlayer)
	}
	if r.MBPerPlayer != 2 {
		t.Fatalf("mb per player = %v, want 2", r.MBPerPlayer)
	}
	if r.ConversionRate != 50.00 {
		t.Fatalf("conversion = %v, want 50.00", r.ConversionRate)
	}
	// u1 purchased and plays snake: 1 purchaser over (2000 + 4MiB) total cost.
	wantPPM := ratio2(1e6, 2000+float64(4<<20))
	if r.PurchasesPerMillionCost != wantPPM {
		t.Fatalf("ppm = %v, want %v", r.PurchasesPerMillionCost, wantPPM)
	}
}

func TestBandwidthIntensityTopTen(t *testing.T) {
	events := make([]CostEvent, 0, 12)
	snaps := make([]Snapshot, 0, 12)
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for n, id := range ids {
		events = append(events, ev(MetricBandwidth, float64((n+1)<<20), id, day(0)))
		snaps = append(snaps, snap("u"+id, day(0), MetricBag{
			GamePlayTime: map[string]float64{id: 3600},
		}, 3600))
	}
	rows := BandwidthIntensity(events, snaps)
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want capped at 10", len(rows))
	}
	if rows[0].GameID != "l" || rows[0].MBPerHour != 12 {
		t.Fatalf("top row = %+v, want game l at 12 MB/h", rows[0])
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].MBPerHour > rows[i-1].MBPerHour {
			t.Fatalf("rows not sorted desc at %d", i)
		}
	}
}

func TestChurnCostHardFilter(t *testing.T) {
	events := []CostEvent{
		ev(MetricDBRequest, 10000, "sticky", day(0)),
		ev(MetricDBRequest, 10000, "leaky", day(0)),
	}
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches: map[string]float64{"sticky": 100, "leaky": 100},
			GameExits:    map[string]float64{"sticky": 10, "leaky": 11},
		}, 0),
	}
	rows := ChurnCost(events, snaps)
	if len(rows) != 1 || rows[0].GameID != "leaky" {
		t.Fatalf("exit rate exactly 10%% must be excluded, got %+v", rows)
	}
	if rows[0].ExitRatePercent != 11.00 {
		t.Fatalf("exit rate = %v, want 11.00", rows[0].ExitRatePercent)
	}
	if rows[0].ChurnCostIndex != 1100 {
		t.Fatalf("index = %v, want 10000*11/100", rows[0].ChurnCostIndex)
	}
}

func TestAuthEfficiencyJoinByDate(t *testing.T) {
	events := []CostEvent{
		ev(MetricAuthSession, 1, "", day(0)),
		ev(MetricAuthSession, 1, "", day(0)),
		ev(MetricAuthSession, 1, "", day(1)), // no snapshots that day
	}
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{SessionCount: 5}, 0),
	}
	rows := AuthEfficiency(events, snaps)
	if len(rows) != 1 || rows[0].Date != "2025-11-01" {
		t.Fatalf("want the single joined day, got %+v", rows)
	}
	// Auth sessions count events, not values.
	if rows[0].TotalAuthSessions != 2 || rows[0].SessionsPerAuth != 2.5 {
		t.Fatalf("auth/ratio = %d/%v, want 2/2.5", rows[0].TotalAuthSessions, rows[0].SessionsPerAuth)
	}
}

func TestDailyCostTrendLagSkipsMissingDates(t *testing.T) {
	events := []CostEvent{
		ev(MetricDBRequest, 100, "", day(0)),
		// day(1) has no samples; day(2) lags against day(0).
		ev(MetricDBRequest, 150, "", day(2)),
		ev(MetricBandwidth, 10, "", day(2)),
	}
	rows := DailyCostTrend(events)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// Output is date desc, type asc.
	if rows[0].Type != MetricBandwidth || rows[1].Type != MetricDBRequest || rows[2].Date != "2025-11-01" {
		t.Fatalf("ordering wrong: %+v", rows)
	}
	db := rows[1]
	if db.PreviousValue == nil || *db.PreviousValue != 100 {
		t.Fatalf("previous = %v, want the last present date's total", db.PreviousValue)
	}
	if db.Difference == nil || *db.Difference != 50 {
		t.Fatalf("difference = %v, want 50", db.Difference)
	}
	if db.PercentChange == nil || *db.PercentChange != 50.00 {
		t.Fatalf("pct change = %v, want 50.00", db.PercentChange)
	}
	// First date of a series, and a series with a single date, carry nils.
	if rows[0].PreviousValue != nil || rows[2].PreviousValue != nil {
		t.Fatalf("series heads must carry nil lag fields")
	}
}

func TestCostAlertsStrictThreshold(t *testing.T) {
	events := []CostEvent{
		ev(MetricDBRequest, 100000, "", day(0)),         // exactly at threshold
		ev(MetricDBRequest, 150000, "", day(1)),         // 50% over
		ev(MetricAuthSession, 12000, "", day(1)),        // 20% over
		ev(MetricBandwidth, float64(1<<29), "", day(1)), // half the byte threshold
	}
	rows := CostAlerts(events)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Type != MetricDBRequest || rows[0].OveragePercent != 50.00 {
		t.Fatalf("worst first: %+v", rows[0])
	}
	if rows[1].Type != MetricAuthSession || rows[1].OveragePercent != 20.00 {
		t.Fatalf("second row: %+v", rows[1])
	}
}
