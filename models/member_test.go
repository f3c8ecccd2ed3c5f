package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMember_WindowExpired(t *testing.T) {
	reset := int64(1000)

	tests := []struct {
		name    string
		member  Member
		now     int64
		expired bool
	}{
		{"no window yet", Member{}, 1000, true},
		{"window just opened", Member{CakesTodayReset: &reset}, 1000, false},
		{"one second before the boundary", Member{CakesTodayReset: &reset}, 1000 + WindowLength - 1, false},
		{"exactly on the boundary", Member{CakesTodayReset: &reset}, 1000 + WindowLength, true},
		{"long past the boundary", Member{CakesTodayReset: &reset}, 1000 + 3*WindowLength, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.member.WindowExpired(tt.now))
		})
	}
}

func TestMember_NextReset(t *testing.T) {
	assert.Equal(t, int64(0), (&Member{}).NextReset())

	reset := int64(1000)
	member := Member{CakesTodayReset: &reset}
	assert.Equal(t, 1000+WindowLength, member.NextReset())
}
