package analytics

import "sort"

type CostOverview struct {
	TotalDBRequests     int64    `json:"total_db_requests"`
	TotalBandwidthBytes int64    `json:"total_bandwidth_bytes"`
	TotalAuthSessions   int64    `json:"total_auth_sessions"`
	AvgCostPerPlayer    float64  `json:"avg_cost_per_player"`
	TrendDBRequests     *float64 `json:"trend_db_requests"`
	TrendBandwidth      *float64 `json:"trend_bandwidth"`
	TrendAuth           *float64 `json:"trend_auth"`
}

type GameEfficiencyRow struct {
	GameID                  string  `json:"game_id"`
	UniquePlayers           int     `json:"unique_players"`
	DBRequestsPerPlayer     float64 `json:"db_requests_per_player"`
	MBPerPlayer             float64 `json:"mb_per_player"`
	PurchasesPerMillionCost float64 `json:"purchases_per_million_cost"`
	ConversionRate          float64 `json:"conversion_rate"`
}

type BandwidthIntensityRow struct {
	GameID     string  `json:"game_id"`
	TotalMB    float64 `json:"total_mb"`
	TotalHours float64 `json:"total_hours"`
	MBPerHour  float64 `json:"mb_per_hour"`
}

type ChurnCostRow struct {
	GameID          string  `json:"game_id"`
	TotalDBRequests int64   `json:"total_db_requests"`
	ExitRatePercent float64 `json:"exit_rate_percent"`
	ChurnCostIndex  float64 `json:"churn_cost_index"`
}

type AuthEfficiencyRow struct {
	Date              string  `json:"metric_date"`
	TotalAuthSessions int     `json:"total_auth_sessions"`
	TotalSessions     int     `json:"total_sessions"`
	SessionsPerAuth   float64 `json:"sessions_per_auth"`
}

type DailyCostTrendRow struct {
	Date          string     `json:"metric_date"`
	Type          MetricType `json:"metric_type"`
	TotalValue    float64    `json:"total_value"`
	PreviousValue *float64   `json:"previous_value"`
	Difference    *float64   `json:"difference"`
	PercentChange *float64   `json:"percent_change"`
}

type CostAlertRow struct {
	Date           string     `json:"metric_date"`
	Type           MetricType `json:"metric_type"`
	TotalValue     float64    `json:"total_value"`
	Threshold      float64    `json:"threshold"`
	OveragePercent float64    `json:"overage_percent"`
}

// Daily totals above these fixed values raise a cost alert.
var AlertThresholds = map[MetricType]float64{
	MetricDBRequest:   100000,
	MetricBandwidth:   1 << 30,
	MetricAuthSession: 10000,
}

// ChurnExitRateFloor excludes games at or below this exit-rate percent from
// the churn-cost ranking entirely.
const ChurnExitRateFloor = 10.0

func sumByType(events []CostEvent) map[MetricType]float64 {
	totals := map[MetricType]float64{}
	for _, e := range events {
		totals[e.Type] += e.Value
	}
	return totals
}

// ComputeCostOverview totals the current window per metric type and derives
// the trend against the immediately preceding, equally sized window. Trends
// are nil when a type has no current samples or a zero baseline.
func ComputeCostOverview(current, previous []CostEvent, uniquePlayers int) CostOverview {
	cur := sumByType(current)
	prev := sumByType(previous)
	trend := func(t MetricType) *float64 {
		if _, ok := cur[t]; !ok {
			return nil
		}
		return trendPct(cur[t], prev[t])
	}
	return CostOverview{
		TotalDBRequests:     int64(cur[MetricDBRequest]),
		TotalBandwidthBytes: int64(cur[MetricBandwidth]),
		TotalAuthSessions:   int64(cur[MetricAuthSession]),
		AvgCostPerPlayer:    ratio2(cur[MetricDBRequest], float64(uniquePlayers)),
		TrendDBRequests:     trend(MetricDBRequest),
		TrendBandwidth:      trend(MetricBandwidth),
		TrendAuth:           trend(MetricAuthSession),
	}
}

type gameCost struct {
	dbRequests, bandwidth, total float64
}

func costsByGame(events []CostEvent) map[string]*gameCost {
	out := map[string]*gameCost{}
	for _, e := range events {
		if e.GameID == "" {
			continue
		}
		c := out[e.GameID]
		if c == nil {
			c = &gameCost{}
			out[e.GameID] = c
		}
		switch e.Type {
		case MetricDBRequest:
			c.dbRequests += e.Value
		case MetricBandwidth:
			c.bandwidth += e.Value
		}
		c.total += e.Value
	}
	return out
}

// purchasersByGame counts purchasing users per attributed primary game.
func purchasersByGame(snaps []Snapshot) map[string]int {
	type userAcc struct {
		purchases float64
		playTime  map[string]float64
	}
	users := map[string]*userAcc{}
	for _, s := range snaps {
		a := users[s.UserID]
		if a == nil {
			a = &userAcc{playTime: map[string]float64{}}
			users[s.UserID] = a
		}
		if s.Metrics.PurchaseSuccesses > a.purchases {
			a.purchases = s.Metrics.PurchaseSuccesses
		}
		for id, v := range s.Metrics.GamePlayTime {
			if v > a.playTime[id] {
				a.playTime[id] = v
			}
		}
	}
	counts := map[string]int{}
	for _, a := range users {
		if a.purchases > 0 {
			if top := primaryGame(a.playTime); top != "" {
				counts[top]++
			}
		}
	}
	return counts
}

// GameEfficiency joins per-game cost totals against player, purchase and
// conversion totals. Only games present in both the cost stream and the
// snapshot stream are reported; top 20 by purchases-per-million-cost.
func GameEfficiency(events []CostEvent, snaps []Snapshot) []GameEfficiencyRow {
	costs := costsByGame(events)
	games := accumulateGames(snaps)
	purchases := purchasersByGame(snaps)
	out := []GameEfficiencyRow{}
	for id, c := range costs {
		g, ok := games[id]
		if !ok {
			continue
		}
		players := float64(len(g.users))
		out = append(out, GameEfficiencyRow{
			GameID:                  id,
			UniquePlayers:           len(g.users),
			DBRequestsPerPlayer:     ratio2(c.dbRequests, players),
			MBPerPlayer:             ratio2(c.bandwidth/1024/1024, players),
			PurchasesPerMillionCost: ratio2(float64(purchases[id])*1e6, c.total),
			ConversionRate:          pct(g.purchaseSuccesses, g.purchaseAttempts),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PurchasesPerMillionCost != out[j].PurchasesPerMillionCost {
			return out[i].PurchasesPerMillionCost > out[j].PurchasesPerMillionCost
		}
		return out[i].GameID < out[j].GameID
	})
	if len(out) > 20 {
		out = out[:20]
	}
	return out
}

// BandwidthIntensity reports MB consumed per hour of recorded play, top 10.
func BandwidthIntensity(events []CostEvent, snaps []Snapshot) []BandwidthIntensityRow {
	bytesByGame := map[string]float64{}
	for _, e := range events {
		if e.Type == MetricBandwidth && e.GameID != "" {
			bytesByGame[e.GameID] += e.Value
		}
	}
	hoursByGame := map[string]float64{}
	for _, s := range snaps {
		for id, v := range s.Metrics.GamePlayTime {
			hoursByGame[id] += v / 3600
		}
	}
	out := []BandwidthIntensityRow{}
	for id, b := range bytesByGame {
		hours, ok := hoursByGame[id]
		if !ok {
			continue
		}
		out = append(out, BandwidthIntensityRow{
			GameID:     id,
			TotalMB:    round2(b / 1024 / 1024),
			TotalHours: round2(hours),
			MBPerHour:  ratio2(b/1024/1024, hours),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MBPerHour != out[j].MBPerHour {
			return out[i].MBPerHour > out[j].MBPerHour
		}
		return out[i].GameID < out[j].GameID
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// ChurnCost weights per-game db-request cost by exit rate. Games at or
// below the exit-rate floor are excluded outright, not just ranked low.
func ChurnCost(events []CostEvent, snaps []Snapshot) []ChurnCostRow {
	costs := costsByGame(events)
	games := accumulateGames(snaps)
	out := []ChurnCostRow{}
	for id, c := range costs {
		g, ok := games[id]
		if !ok {
			continue
		}
		rate := pct(g.exits, g.launches)
		if rate <= ChurnExitRateFloor {
			continue
		}
		out = append(out, ChurnCostRow{
			GameID:          id,
			TotalDBRequests: int64(c.dbRequests),
			ExitRatePercent: rate,
			ChurnCostIndex:  round2(c.dbRequests * rate / 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ChurnCostIndex != out[j].ChurnCostIndex {
			return out[i].ChurnCostIndex > out[j].ChurnCostIndex
		}
		return out[i].GameID < out[j].GameID
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// AuthEfficiency joins per-day auth-session event counts against per-day
// session totals by calendar date. Days present in only one stream drop out.
func AuthEfficiency(events []CostEvent, snaps []Snapshot) []AuthEfficiencyRow {
	authByDay := map[string]int{}
	for _, e := range events {
		if e.Type == MetricAuthSession {
			authByDay[dateKey(e.At)]++
		}
	}
	sessionsByDay := map[string]float64{}
	for _, s := range snaps {
		sessionsByDay[dateKey(s.Date)] += s.Metrics.SessionCount
	}
	out := []AuthEfficiencyRow{}
	for day, auth := range authByDay {
		sessions, ok := sessionsByDay[day]
		if !ok {
			continue
		}
		out = append(out, AuthEfficiencyRow{
			Date:              day,
			TotalAuthSessions: auth,
			TotalSessions:     int(sessions),
			SessionsPerAuth:   ratio2(sessions, float64(auth)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func dailyTotals(events []CostEvent) map[MetricType]map[string]float64 {
	out := map[MetricType]map[string]float64{}
	for _, e := range events {
		days := out[e.Type]
		if days == nil {
			days = map[string]float64{}
			out[e.Type] = days
		}
		days[dateKey(e.At)] += e.Value
	}
	return out
}

// DailyCostTrend reports per (date, type) totals with the previous present
// date's value, the absolute difference and the percent change. The first
// date of each type's series carries nils, as does a zero baseline.
func DailyCostTrend(events []CostEvent) []DailyCostTrendRow {
	out := []DailyCostTrendRow{}
	for typ, days := range dailyTotals(events) {
		dates := make([]string, 0, len(days))
		for d := range days {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for i, d := range dates {
			row := DailyCostTrendRow{Date: d, Type: typ, TotalValue: days[d]}
			if i > 0 {
				prev := days[dates[i-1]]
				diff := row.TotalValue - prev
				row.PreviousValue = &prev
				row.Difference = &diff
				row.PercentChange = trendPct(row.TotalValue, prev)
			}
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// CostAlerts reports the (date, type) pairs whose daily total strictly
// exceeds the fixed threshold for that type, worst overage first.
func CostAlerts(events []CostEvent) []CostAlertRow {
	out := []CostAlertRow{}
	for typ, days := range dailyTotals(events) {
		threshold, ok := AlertThresholds[typ]
		if !ok {
			continue
		}
		for d, v := range days {
			if v <= threshold {
				continue
			}
			out = append(out, CostAlertRow{
				Date:           d,
				Type:           typ,
				TotalValue:     v,
				Threshold:      threshold,
				OveragePercent: pct(v-threshold, threshold),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OveragePercent != out[j].OveragePercent {
			return out[i].OveragePercent > out[j].OveragePercent
		}
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Type < out[j].Type
	})
	return out
}
