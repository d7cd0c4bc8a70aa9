package analytics

import "sort"

// KPISummary is the headline card row of the dashboard.
type KPISummary struct {
	UniquePlayers         int     `json:"unique_players"`
	TotalPlayTimeHours    float64 `json:"total_play_time_hours"`
	TotalSessions         int     `json:"total_sessions"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
}

// GameRollup aggregates one game's counters across every snapshot in the
// window that mentions the game.
type GameRollup struct {
	GameID                  string  `json:"game_id"`
	UniquePlayers           int     `json:"unique_players"`
	TotalLaunches           int     `json:"total_launches"`
	TotalPlayTimeHours      float64 `json:"total_play_time_hours"`
	AvgPlayTimeMinutes      float64 `json:"avg_play_time_minutes"`
	TotalSwipes             int     `json:"total_swipes"`
	TotalExits              int     `json:"total_exits"`
	ExitRatePercent         float64 `json:"exit_rate_percent"`
	NetLikes                int     `json:"net_likes"`
	NetBookmarks            int     `json:"net_bookmarks"`
	TotalShares             int     `json:"total_shares"`
	TotalComments           int     `json:"total_comments"`
	TotalScoreAttempts      int     `json:"total_score_attempts"`
	TotalTop10Attempts      int     `json:"total_top10_attempts"`
	Top10AttemptRatePercent float64 `json:"top10_attempt_rate_percent"`
}

type UserRollup struct {
	UserID                    string  `json:"user_id"`
	Pseudo                    string  `json:"pseudo"`
	SnapshotCount             int     `json:"snapshot_count"`
	TotalPlayTimeHours        float64 `json:"total_play_time_hours"`
	TotalSessions             int     `json:"total_sessions"`
	AvgSessionDurationMinutes float64 `json:"avg_session_duration_minutes"`
	TotalPurchaseAttempts     int     `json:"total_purchase_attempts"`
	TotalPurchaseSuccesses    int     `json:"total_purchase_successes"`
	TotalPurchaseCancels      int     `json:"total_purchase_cancels"`
	ConversionRatePercent     float64 `json:"conversion_rate_percent"`
	FirstSnapshotDate         string  `json:"first_snapshot_date"`
	LastSnapshotDate          string  `json:"last_snapshot_date"`
	UserLifetimeDays          int     `json:"user_lifetime_days"`
}

type DailyRollup struct {
	Date                      string  `json:"date"`
	UniquePlayers             int     `json:"unique_players"`
	TotalPlayTimeHours        float64 `json:"total_play_time_hours"`
	TotalSessions             int     `json:"total_sessions"`
	AvgSessionDurationMinutes float64 `json:"avg_session_duration_minutes"`
	TotalPurchaseAttempts     int     `json:"total_purchase_attempts"`
	TotalPurchaseSuccesses    int     `json:"total_purchase_successes"`
}

type GameFlowRow struct {
	GameID                  string  `json:"game_id"`
	CompletionRatePercent   float64 `json:"completion_rate_percent"`
	FrustrationIndexPercent float64 `json:"frustration_index_percent"`
	IntensitySwipesPerHour  float64 `json:"intensity_swipes_per_hour"`
}

type SocialRow struct {
	GameID                 string  `json:"game_id"`
	SocialEngagementRate   float64 `json:"social_engagement_rate"`
	TotalBookmarks         int     `json:"total_bookmarks"`
	CommentsToPlayersRatio float64 `json:"comments_to_players_ratio"`
}

type PlayTimeBucket struct {
	HoursRange     string  `json:"hours_range"`
	TotalUsers     int     `json:"total_users"`
	Purchasers     int     `json:"purchasers"`
	ConversionRate float64 `json:"conversion_rate"`
}

type GamePurchases struct {
	GameID        string `json:"game_id"`
	PurchaseCount int    `json:"purchase_count"`
}

type ProductPurchases struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}

type MonetizationSummary struct {
	ConversionByPlayTime []PlayTimeBucket   `json:"conversion_by_play_time"`
	CartAbandonmentRate  float64            `json:"cart_abandonment_rate"`
	MostPurchasedPack    string             `json:"most_purchased_pack"`
	PurchasesByGame      []GamePurchases    `json:"purchases_by_game"`
	PurchasesByType      []ProductPurchases `json:"purchases_by_type"`
}

// KPIs computes the window-wide headline numbers. Conversion is the global
// success/attempt ratio, 0 when no attempts were recorded.
func KPIs(snaps []Snapshot) KPISummary {
	users := map[string]struct{}{}
	var playSeconds, sessions, attempts, successes float64
	for _, s := range snaps {
		users[s.UserID] = struct{}{}
		playSeconds += s.CumulativePlaySeconds
		sessions += s.Metrics.SessionCount
		attempts += s.Metrics.PurchaseAttempts
		successes += s.Metrics.PurchaseSuccesses
	}
	return KPISummary{
		UniquePlayers:         len(users),
		TotalPlayTimeHours:    round2(playSeconds / 3600),
		TotalSessions:         int(sessions),
		ConversionRatePercent: pct(successes, attempts),
	}
}

type gameAcc struct {
	users                                map[string]struct{}
	launches, playSeconds, swipes, exits float64
	likes, bookmarks, shares, comments   float64
	scoreAttempts, top10Attempts         float64
	purchaseAttempts, purchaseSuccesses  float64
}

// accumulateGames folds every snapshot into per-game sums. The observed
// game set is the union of launch-counter keys, matching how the store
// enumerates games.
func accumulateGames(snaps []Snapshot) map[string]*gameAcc {
	games := map[string]*gameAcc{}
	for _, s := range snaps {
		for id := range s.Metrics.GameLaunches {
			acc := games[id]
			if acc == nil {
				acc = &gameAcc{users: map[string]struct{}{}}
				games[id] = acc
			}
			acc.users[s.UserID] = struct{}{}
			acc.launches += s.Metrics.GameLaunches[id]
			acc.playSeconds += s.Metrics.GamePlayTime[id]
			acc.swipes += s.Metrics.GameSwipes[id]
			acc.exits += s.Metrics.GameExits[id]
			acc.likes += s.Metrics.Likes[id]
			acc.bookmarks += s.Metrics.Bookmarks[id]
			acc.shares += s.Metrics.Shares[id]
			acc.comments += s.Metrics.Comments[id]
			acc.scoreAttempts += s.Metrics.ScoreAttempts[id]
			acc.top10Attempts += s.Metrics.Top10Attempts[id]
			// Scalar purchase counters restricted to snapshots that mention
			// this game: "conversion among players of the game".
			acc.purchaseAttempts += s.Metrics.PurchaseAttempts
			acc.purchaseSuccesses += s.Metrics.PurchaseSuccesses
		}
	}
	return games
}

// GameRollups produces the per-game table ordered by launches descending,
// ties broken by game id so the order is deterministic.
func GameRollups(snaps []Snapshot) []GameRollup {
	games := accumulateGames(snaps)
	out := make([]GameRollup, 0, len(games))
	for id, a := range games {
		out = append(out, GameRollup{
			GameID:                  id,
			UniquePlayers:           len(a.users),
			TotalLaunches:           int(a.launches),
			TotalPlayTimeHours:      round2(a.playSeconds / 3600),
			AvgPlayTimeMinutes:      ratio2(a.playSeconds/60, a.launches),
			TotalSwipes:             int(a.swipes),
			TotalExits:              int(a.exits),
			ExitRatePercent:         pct(a.exits, a.launches),
			NetLikes:                int(a.likes),
			NetBookmarks:            int(a.bookmarks),
			TotalShares:             int(a.shares),
			TotalComments:           int(a.comments),
			TotalScoreAttempts:      int(a.scoreAttempts),
			TotalTop10Attempts:      int(a.top10Attempts),
			Top10AttemptRatePercent: pct(a.top10Attempts, a.scoreAttempts),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLaunches != out[j].TotalLaunches {
			return out[i].TotalLaunches > out[j].TotalLaunches
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}

// UserRollups aggregates per user and resolves a display name with the
// precedence: latest non-empty pseudo from a snapshot, then the username of
// the user's most recent comment, then the raw user id. commentNames maps
// user id to that comment-derived fallback.
func UserRollups(snaps []Snapshot, commentNames map[string]string, limit int) []UserRollup {
	type userAcc struct {
		count                                  int
		playSeconds, sessions, sessionDuration float64
		attempts, successes, cancels           float64
		first, last                            Snapshot
		pseudo                                 string
		pseudoAt                               Snapshot
	}
	users := map[string]*userAcc{}
	for _, s := range snaps {
		a := users[s.UserID]
		if a == nil {
			a = &userAcc{first: s, last: s}
			users[s.UserID] = a
		}
		a.count++
		a.playSeconds += s.CumulativePlaySeconds
		a.sessions += s.Metrics.SessionCount
		a.sessionDuration += s.Metrics.TotalSessionDuration
		a.attempts += s.Metrics.PurchaseAttempts
		a.successes += s.Metrics.PurchaseSuccesses
		a.cancels += s.Metrics.PurchaseCancels
		if s.Date.Before(a.first.Date) {
			a.first = s
		}
		if s.Date.After(a.last.Date) {
			a.last = s
		}
		if s.Metrics.Pseudo != "" && (a.pseudo == "" || s.Date.After(a.pseudoAt.Date)) {
			a.pseudo = s.Metrics.Pseudo
			a.pseudoAt = s
		}
	}
	out := make([]UserRollup, 0, len(users))
	for id, a := range users {
		name := a.pseudo
		if name == "" {
			name = commentNames[id]
		}
		if name == "" {
			name = id
		}
		out = append(out, UserRollup{
			UserID:                    id,
			Pseudo:                    name,
			SnapshotCount:             a.count,
			TotalPlayTimeHours:        round2(a.playSeconds / 3600),
			TotalSessions:             int(a.sessions),
			AvgSessionDurationMinutes: ratio2(a.sessionDuration/60, float64(a.count)),
			TotalPurchaseAttempts:     int(a.attempts),
			TotalPurchaseSuccesses:    int(a.successes),
			TotalPurchaseCancels:      int(a.cancels),
			ConversionRatePercent:     pct(a.successes, a.attempts),
			FirstSnapshotDate:         dateKey(a.first.Date),
			LastSnapshotDate:          dateKey(a.last.Date),
			UserLifetimeDays:          int(a.last.Date.Sub(a.first.Date).Hours() / 24),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPlayTimeHours != out[j].TotalPlayTimeHours {
			return out[i].TotalPlayTimeHours > out[j].TotalPlayTimeHours
		}
		return out[i].UserID < out[j].UserID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DailyRollups buckets the window by calendar date, newest first.
func DailyRollups(snaps []Snapshot) []DailyRollup {
	type dayAcc struct {
		users                                  map[string]struct{}
		count                                  int
		playSeconds, sessions, sessionDuration float64
		attempts, successes                    float64
	}
	days := map[string]*dayAcc{}
	for _, s := range snaps {
		key := dateKey(s.Date)
		a := days[key]
		if a == nil {
			a = &dayAcc{users: map[string]struct{}{}}
			days[key] = a
		}
		a.users[s.UserID] = struct{}{}
		a.count++
		a.playSeconds += s.CumulativePlaySeconds
		a.sessions += s.Metrics.SessionCount
		a.sessionDuration += s.Metrics.TotalSessionDuration
		a.attempts += s.Metrics.PurchaseAttempts
		a.successes += s.Metrics.PurchaseSuccesses
	}
	out := make([]DailyRollup, 0, len(days))
	for key, a := range days {
		out = append(out, DailyRollup{
			Date:                      key,
			UniquePlayers:             len(a.users),
			TotalPlayTimeHours:        round2(a.playSeconds / 3600),
			TotalSessions:             int(a.sessions),
			AvgSessionDurationMinutes: ratio2(a.sessionDuration/60, float64(a.count)),
			TotalPurchaseAttempts:     int(a.attempts),
			TotalPurchaseSuccesses:    int(a.successes),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// GameFlow derives the UX signals per game. Frustration index is the same
// formula as the per-game exit rate and the two must agree numerically.
func GameFlow(snaps []Snapshot) []GameFlowRow {
	games := accumulateGames(snaps)
	out := make([]GameFlowRow, 0, len(games))
	for id, a := range games {
		out = append(out, GameFlowRow{
			GameID:                  id,
			CompletionRatePercent:   pct(a.top10Attempts, a.scoreAttempts),
			FrustrationIndexPercent: pct(a.exits, a.launches),
			IntensitySwipesPerHour:  ratio2(a.swipes, a.playSeconds/3600),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CompletionRatePercent != out[j].CompletionRatePercent {
			return out[i].CompletionRatePercent > out[j].CompletionRatePercent
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}

// SocialRollups derives per-game engagement ratios at 4 decimal places.
func SocialRollups(snaps []Snapshot) []SocialRow {
	games := accumulateGames(snaps)
	out := make([]SocialRow, 0, len(games))
	for id, a := range games {
		players := float64(len(a.users))
		out = append(out, SocialRow{
			GameID:                 id,
			SocialEngagementRate:   ratio4(a.likes+a.comments+a.shares, players),
			TotalBookmarks:         int(a.bookmarks),
			CommentsToPlayersRatio: ratio4(a.comments, players),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SocialEngagementRate != out[j].SocialEngagementRate {
			return out[i].SocialEngagementRate > out[j].SocialEngagementRate
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}

var playTimeBuckets = []struct {
	label string
	below float64
}{
	{"0-1h", 3600},
	{"1-3h", 10800},
	{"3-5h", 18000},
	{"5h+", 0},
}

// Monetization computes the purchase-behavior block: conversion by playtime
// bucket, cart abandonment, the best-selling pack, and purchase attribution
// per game using the primary-game heuristic (highest recorded play time,
// ties broken by smallest game id).
func Monetization(snaps []Snapshot) MonetizationSummary {
	type userAcc struct {
		maxTime   float64
		purchases float64
		playTime  map[string]float64
	}
	users := map[string]*userAcc{}
	var attempts, cancels float64
	products := map[string]float64{}
	for _, s := range snaps {
		a := users[s.UserID]
		if a == nil {
			a = &userAcc{playTime: map[string]float64{}}
			users[s.UserID] = a
		}
		if s.CumulativePlaySeconds > a.maxTime {
			a.maxTime = s.CumulativePlaySeconds
		}
		// Counters are cumulative, so MAX (not SUM) is the per-user total.
		if s.Metrics.PurchaseSuccesses > a.purchases {
			a.purchases = s.Metrics.PurchaseSuccesses
		}
		for id, v := range s.Metrics.GamePlayTime {
			if v > a.playTime[id] {
				a.playTime[id] = v
			}
		}
		attempts += s.Metrics.PurchaseAttempts
		cancels += s.Metrics.PurchaseCancels
		for id, v := range s.Metrics.PurchaseTypes {
			products[id] += v
		}
	}

	bucketTotals := map[string]*PlayTimeBucket{}
	gameCounts := map[string]int{}
	for _, a := range users {
		label := playTimeBuckets[len(playTimeBuckets)-1].label
		for _, b := range playTimeBuckets[:len(playTimeBuckets)-1] {
			if a.maxTime < b.below {
				label = b.label
				break
			}
		}
		bt := bucketTotals[label]
		if bt == nil {
			bt = &PlayTimeBucket{HoursRange: label}
			bucketTotals[label] = bt
		}
		bt.TotalUsers++
		if a.purchases > 0 {
			bt.Purchasers++
			if top := primaryGame(a.playTime); top != "" {
				gameCounts[top]++
			}
		}
	}
	buckets := make([]PlayTimeBucket, 0, len(bucketTotals))
	for _, b := range playTimeBuckets {
		if bt, ok := bucketTotals[b.label]; ok {
			bt.ConversionRate = pct(float64(bt.Purchasers), float64(bt.TotalUsers))
			buckets = append(buckets, *bt)
		}
	}

	byGame := make([]GamePurchases, 0, len(gameCounts))
	for id, n := range gameCounts {
		byGame = append(byGame, GamePurchases{GameID: id, PurchaseCount: n})
	}
	sort.Slice(byGame, func(i, j int) bool {
		if byGame[i].PurchaseCount != byGame[j].PurchaseCount {
			return byGame[i].PurchaseCount > byGame[j].PurchaseCount
		}
		return byGame[i].GameID < byGame[j].GameID
	})

	byType := make([]ProductPurchases, 0, len(products))
	for id, v := range products {
		byType = append(byType, ProductPurchases{ProductID: id, Count: int(v)})
	}
	sort.Slice(byType, func(i, j int) bool {
		if byType[i].Count != byType[j].Count {
			return byType[i].Count > byType[j].Count
		}
		return byType[i].ProductID < byType[j].ProductID
	})

	mostPurchased := "N/A"
	if len(byType) > 0 {
		mostPurchased = byType[0].ProductID
	}
	return MonetizationSummary{
		ConversionByPlayTime: buckets,
		CartAbandonmentRate:  pct(cancels, attempts),
		MostPurchasedPack:    mostPurchased,
		PurchasesByGame:      byGame,
		PurchasesByType:      byType,
	}
}

// primaryGame picks the game a user's purchase is attributed to: highest
// recorded play time, lexicographically smallest id on a tie.
func primaryGame(playTime map[string]float64) string {
	top, best := "", -1.0
	for id, v := range playTime {
		if v > best || (v == best && id < top) {
			top, best = id, v
		}
	}
	return top
}
