package models

// LeaderboardKind selects which entity a leaderboard query runs over.
// It is a closed enumeration; repositories dispatch each variant to a fixed
// query so no caller-supplied string ever reaches the SQL text.
type LeaderboardKind string

const (
	KindGuilds  LeaderboardKind = "guilds"
	KindUsers   LeaderboardKind = "users"
	KindMembers LeaderboardKind = "members"
)

// Valid reports whether the kind is one of the known variants.
func (k LeaderboardKind) Valid() bool {
	switch k {
	case KindGuilds, KindUsers, KindMembers:
		return true
	}
	return false
}

// SortKey selects the column a leaderboard is ordered by.
type SortKey string

const (
	SortByCakes  SortKey = "cakes"
	SortByPoints SortKey = "points"
)

// Valid reports whether the sort key is one of the known variants.
func (s SortKey) Valid() bool {
	return s == SortByCakes || s == SortByPoints
}

// LeaderboardEntry is one row of a leaderboard, normalized across the three
// entity kinds. Name is only set for guild entries; GuildID is only set for
// guild and member entries.
type LeaderboardEntry struct {
	ID      string
	GuildID string
	Name    string
	Cakes   int64
	Points  int64
}
