package analytics

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func snap(user string, d time.Time, bag MetricBag, playSeconds float64) Snapshot {
	return Snapshot{UserID: user, Date: d, CumulativePlaySeconds: playSeconds, Metrics: bag}
}

func TestKPIsZeroAttemptsConversion(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{SessionCount: 3}, 7200),
		snap("u2", day(1), MetricBag{SessionCount: 2}, 1800),
	}
	got := KPIs(snaps)
	if got.UniquePlayers != 2 {
		t.Fatalf("unique players = %d, want 2", got.UniquePlayers)
	}
	if got.TotalPlayTimeHours != 2.5 {
		t.Fatalf("play hours = %v, want 2.5", got.TotalPlayTimeHours)
	}
	if got.TotalSessions != 5 {
		t.Fatalf("sessions = %d, want 5", got.TotalSessions)
	}
	if got.ConversionRatePercent != 0 {
		t.Fatalf("conversion with zero attempts = %v, want exactly 0", got.ConversionRatePercent)
	}
}

func TestKPIsEmptyWindow(t *testing.T) {
	got := KPIs(nil)
	if got.UniquePlayers != 0 || got.TotalPlayTimeHours != 0 || got.ConversionRatePercent != 0 {
		t.Fatalf("empty window must be zeroed, got %+v", got)
	}
}

func TestUserRollupConversionScenario(t *testing.T) {
	// Three consecutive days for one user: attempts 1,0,1 and successes 1,0,0.
	snaps := []Snapshot{
		snap("U1", day(0), MetricBag{PurchaseAttempts: 1, PurchaseSuccesses: 1}, 100),
		snap("U1", day(1), MetricBag{}, 100),
		snap("U1", day(2), MetricBag{PurchaseAttempts: 1}, 100),
	}
	rows := UserRollups(snaps, nil, 10)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	u := rows[0]
	if u.TotalPurchaseAttempts != 2 || u.TotalPurchaseSuccesses != 1 {
		t.Fatalf("attempts/successes = %d/%d, want 2/1", u.TotalPurchaseAttempts, u.TotalPurchaseSuccesses)
	}
	if u.ConversionRatePercent != 50.00 {
		t.Fatalf("conversion = %v, want 50.00", u.ConversionRatePercent)
	}
	if u.SnapshotCount != 3 || u.UserLifetimeDays != 2 {
		t.Fatalf("count/lifetime = %d/%d, want 3/2", u.SnapshotCount, u.UserLifetimeDays)
	}
	if u.FirstSnapshotDate != "2025-11-01" || u.LastSnapshotDate != "2025-11-03" {
		t.Fatalf("dates = %s..%s", u.FirstSnapshotDate, u.LastSnapshotDate)
	}
}

func TestUserRollupNamePrecedence(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{Pseudo: "old"}, 0),
		snap("u1", day(2), MetricBag{Pseudo: "fresh"}, 0),
		snap("u2", day(1), MetricBag{}, 0),
		snap("u3", day(1), MetricBag{}, 0),
	}
	rows := UserRollups(snaps, map[string]string{"u2": "commenter"}, 10)
	byID := map[string]UserRollup{}
	for _, r := range rows {
		byID[r.UserID] = r
	}
	if byID["u1"].Pseudo != "fresh" {
		t.Fatalf("u1 pseudo = %q, want latest snapshot pseudo", byID["u1"].Pseudo)
	}
	if byID["u2"].Pseudo != "commenter" {
		t.Fatalf("u2 pseudo = %q, want comment username fallback", byID["u2"].Pseudo)
	}
	if byID["u3"].Pseudo != "u3" {
		t.Fatalf("u3 pseudo = %q, want raw user id fallback", byID["u3"].Pseudo)
	}
}

func TestUserRollupLimit(t *testing.T) {
	snaps := []Snapshot{
		snap("a", day(0), MetricBag{}, 7200),
		snap("b", day(0), MetricBag{}, 3600),
		snap("c", day(0), MetricBag{}, 10800),
	}
	rows := UserRollups(snaps, nil, 2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want limit 2", len(rows))
	}
	if rows[0].UserID != "c" || rows[1].UserID != "a" {
		t.Fatalf("order = %s,%s, want c,a (play hours desc)", rows[0].UserID, rows[1].UserID)
	}
}

func TestGameRollupsOrderingAndGuards(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 10, "tetris": 4},
			GamePlayTime: map[string]float64{"snake": 3600, "tetris": 0},
			GameExits:    map[string]float64{"snake": 2},
		}, 0),
		snap("u2", day(1), MetricBag{
			GameLaunches:  map[string]float64{"snake": 10},
			GamePlayTime:  map[string]float64{"snake": 1800},
			ScoreAttempts: map[string]float64{"snake": 8},
			Top10Attempts: map[string]float64{"snake": 2},
		}, 0),
	}
	rows := GameRollups(snaps)
	if len(rows) != 2 || rows[0].GameID != "snake" {
		t.Fatalf("want snake first by launches, got %+v", rows)
	}
	s := rows[0]
	if s.UniquePlayers != 2 || s.TotalLaunches != 20 {
		t.Fatalf("players/launches = %d/%d", s.UniquePlayers, s.TotalLaunches)
	}
	if s.TotalPlayTimeHours != 1.5 {
		t.Fatalf("play hours = %v, want 1.5", s.TotalPlayTimeHours)
	}
	// 5400s / 20 launches / 60 = 4.5 minutes per launch.
	if s.AvgPlayTimeMinutes != 4.5 {
		t.Fatalf("avg minutes = %v, want 4.5", s.AvgPlayTimeMinutes)
	}
	if s.ExitRatePercent != 10.00 {
		t.Fatalf("exit rate = %v, want 10.00", s.ExitRatePercent)
	}
	if s.Top10AttemptRatePercent != 25.00 {
		t.Fatalf("top10 rate = %v, want 25.00", s.Top10AttemptRatePercent)
	}
	// tetris has zero score attempts and zero exits: all ratios 0-guarded.
	tz := rows[1]
	if tz.ExitRatePercent != 0 || tz.Top10AttemptRatePercent != 0 || tz.AvgPlayTimeMinutes != 0 {
		t.Fatalf("tetris guards broke: %+v", tz)
	}
}

func TestExitRateMatchesFrustrationIndex(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 7, "pong": 3},
			GameExits:    map[string]float64{"snake": 3, "pong": 1},
		}, 0),
	}
	games := GameRollups(snaps)
	flow := GameFlow(snaps)
	rates := map[string]float64{}
	for _, g := range games {
		rates[g.GameID] = g.ExitRatePercent
	}
	for _, f := range flow {
		if rates[f.GameID] != f.FrustrationIndexPercent {
			t.Fatalf("game %s: exit rate %v != frustration %v", f.GameID, rates[f.GameID], f.FrustrationIndexPercent)
		}
	}
}

func TestGameFlowIntensityGuard(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches: map[string]float64{"idle": 5},
			GameSwipes:   map[string]float64{"idle": 40},
		}, 0),
	}
	flow := GameFlow(snaps)
	if len(flow) != 1 || flow[0].IntensitySwipesPerHour != 0 {
		t.Fatalf("zero play time must 0-guard intensity, got %+v", flow)
	}
}

func TestDailyRollupsNewestFirst(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{SessionCount: 1, TotalSessionDuration: 600}, 3600),
		snap("u2", day(0), MetricBag{SessionCount: 2, TotalSessionDuration: 1200}, 3600),
		snap("u1", day(1), MetricBag{SessionCount: 4}, 7200),
	}
	rows := DailyRollups(snaps)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Date != "2025-11-02" || rows[1].Date != "2025-11-01" {
		t.Fatalf("order = %s,%s, want newest first", rows[0].Date, rows[1].Date)
	}
	d := rows[1]
	if d.UniquePlayers != 2 || d.TotalSessions != 3 {
		t.Fatalf("players/sessions = %d/%d", d.UniquePlayers, d.TotalSessions)
	}
	// (600+1200)/2 rows = 900s = 15 minutes.
	if d.AvgSessionDurationMinutes != 15 {
		t.Fatalf("avg session minutes = %v, want 15", d.AvgSessionDurationMinutes)
	}
}

func TestSocialRollupsFourDecimals(t *testing.T) {
	snaps := []Snapshot{
		snap("u1", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 1},
			Likes:        map[string]float64{"snake": 1},
			Comments:     map[string]float64{"snake": 1},
		}, 0),
		snap("u2", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 1},
		}, 0),
		snap("u3", day(0), MetricBag{
			GameLaunches: map[string]float64{"snake": 1},
		}, 0),
	}
	rows := SocialRollups(snaps)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].SocialEngagementRate != 0.6667 {
		t.Fatalf("engagement = %v, want 0.6667", rows[0].SocialEngagementRate)
	}
	if rows[0].CommentsToPlayersRatio != 0.3333 {
		t.Fatalf("comments ratio = %v, want 0.3333", rows[0].CommentsToPlayersRatio)
	}
}

func TestMonetizationBucketsAndAttribution(t *testing.T) {
	snaps := []Snapshot{
		// Buyer who mostly plays snake; cumulative counters grow over days.
		snap("buyer", day(0), MetricBag{
			PurchaseAttempts:  1,
			PurchaseSuccesses: 1,
			PurchaseTypes:     map[string]float64{"gold-pack": 1},
			GamePlayTime:      map[string]float64{"snake": 3000, "pong": 200},
		}, 1800),
		snap("buyer", day(1), MetricBag{
			PurchaseAttempts:  2,
			PurchaseSuccesses: 2,
			PurchaseTypes:     map[string]float64{"gold-pack": 2},
			GamePlayTime:      map[string]float64{"snake": 4000, "pong": 200},
		}, 4000),
		// Window shopper: one attempt, one cancel, no success.
		snap("shopper", day(0), MetricBag{
			PurchaseAttempts: 1,
			PurchaseCancels:  1,
		}, 20000),
	}
	m := Monetization(snaps)
	if len(m.ConversionByPlayTime) != 2 {
		t.Fatalf("buckets = %d, want 2", len(m.ConversionByPlayTime))
	}
	// buyer maxes at 4000s => 1-3h bucket; shopper at 20000s => 5h+.
	if m.ConversionByPlayTime[0].HoursRange != "1-3h" || m.ConversionByPlayTime[0].ConversionRate != 100 {
		t.Fatalf("first bucket = %+v", m.ConversionByPlayTime[0])
	}
	if m.ConversionByPlayTime[1].HoursRange != "5h+" || m.ConversionByPlayTime[1].ConversionRate != 0 {
		t.Fatalf("second bucket = %+v", m.ConversionByPlayTime[1])
	}
	// attempts 1+2+1=4, cancels 1 => 25%.
	if m.CartAbandonmentRate != 25.00 {
		t.Fatalf("abandonment = %v, want 25.00", m.CartAbandonmentRate)
	}
	if m.MostPurchasedPack != "gold-pack" {
		t.Fatalf("pack = %q", m.MostPurchasedPack)
	}
	if len(m.PurchasesByGame) != 1 || m.PurchasesByGame[0].GameID != "snake" {
		t.Fatalf("attribution = %+v, want snake", m.PurchasesByGame)
	}
	if len(m.PurchasesByType) != 1 || m.PurchasesByType[0].Count != 3 {
		t.Fatalf("by type = %+v", m.PurchasesByType)
	}
}

func TestMonetizationEmpty(t *testing.T) {
	m := Monetization(nil)
	if m.MostPurchasedPack != "N/A" {
		t.Fatalf("pack = %q, want N/A", m.MostPurchasedPack)
	}
	if m.CartAbandonmentRate != 0 {
		t.Fatalf("abandonment = %v, want 0", m.CartAbandonmentRate)
	}
	if len(m.ConversionByPlayTime) != 0 || len(m.PurchasesByGame) != 0 {
		t.Fatalf("empty input must yield empty slices: %+v", m)
	}
}

func TestPrimaryGameTieBreak(t *testing.T) {
	got := primaryGame(map[string]float64{"zeta": 100, "alpha": 100, "mid": 50})
	if got != "alpha" {
		t.Fatalf("tie break = %q, want lexicographically smallest", got)
	}
}

func TestParseMetricBagTolerant(t *testing.T) {
	bag := ParseMetricBag([]byte(`{"sessionCount": 4, "gameLaunches": {"snake": 2}, "unknown": true}`))
	if bag.SessionCount != 4 || bag.GameLaunches["snake"] != 2 {
		t.Fatalf("parsed bag = %+v", bag)
	}
	if got := ParseMetricBag(nil); got.SessionCount != 0 {
		t.Fatalf("nil blob must parse to zero bag")
	}
	if got := ParseMetricBag([]byte("{broken")); got.SessionCount != 0 {
		t.Fatalf("malformed blob must parse to zero bag")
	}
}
