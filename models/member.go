package models

// Member represents one user's participation record inside one guild.
// CakesToday and CakesTodayReset are nil until the member's first throw
// starts a daily window.
type Member struct {
	UserID          string `db:"user_id"`
	GuildID         string `db:"guild_id"`
	Cakes           int64  `db:"cakes"`
	Points          int64  `db:"points"`
	CakesToday      *int64 `db:"cakes_today"`
	CakesTodayReset *int64 `db:"cakes_today_reset"` // unix seconds
}

// WindowLength is the daily rate-limit window in seconds.
const WindowLength int64 = 24 * 60 * 60

// WindowExpired reports whether the member's daily window needs a reset at
// the given unix time. A member that never threw has no window yet.
func (m *Member) WindowExpired(now int64) bool {
	return m.CakesTodayReset == nil || now-*m.CakesTodayReset >= WindowLength
}

// NextReset returns the unix time at which the current window ends, or 0 if
// no window has been started.
func (m *Member) NextReset() int64 {
	if m.CakesTodayReset == nil {
		return 0
	}
	return *m.CakesTodayReset + WindowLength
}
