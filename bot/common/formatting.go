package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// FormatPoints renders a signed point delta like "+5 :cake: points"
func FormatPoints(points int64) string {
	sign := ""
	if points > 0 {
		sign = "+"
	}
	plural := "s"
	if points == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s%d :cake: point%s", sign, points, plural)
}

// GetDisplayName resolves the best available display name for a user in a
// guild, falling back to the bare user ID
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	if guildID != "" {
		if member, err := s.State.Member(guildID, userID); err == nil && member != nil {
			if member.Nick != "" {
				return member.Nick
			}
			if member.User != nil && member.User.GlobalName != "" {
				return member.User.GlobalName
			}
			if member.User != nil && member.User.Username != "" {
				return member.User.Username
			}
		}
		if member, err := s.GuildMember(guildID, userID); err == nil && member != nil {
			if member.Nick != "" {
				return member.Nick
			}
			if member.User != nil && member.User.Username != "" {
				return member.User.Username
			}
		}
	}
	if user, err := s.User(userID); err == nil && user != nil {
		if user.GlobalName != "" {
			return user.GlobalName
		}
		if user.Username != "" {
			return user.Username
		}
	}
	return userID
}
