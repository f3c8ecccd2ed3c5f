package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardKind_Valid(t *testing.T) {
	assert.True(t, KindGuilds.Valid())
	assert.True(t, KindUsers.Valid())
	assert.True(t, KindMembers.Valid())
	assert.False(t, LeaderboardKind("banana").Valid())
	assert.False(t, LeaderboardKind("").Valid())
}

func TestSortKey_Valid(t *testing.T) {
	assert.True(t, SortByCakes.Valid())
	assert.True(t, SortByPoints.Valid())
	assert.False(t, SortKey("height").Valid())
	assert.False(t, SortKey("").Valid())
}
