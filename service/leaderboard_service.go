package service

import (
	"context"
	"fmt"

	"caketoss/models"
)

// leaderboardService implements the LeaderboardService interface
type leaderboardService struct {
	uowFactory UnitOfWorkFactory
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(uowFactory UnitOfWorkFactory) LeaderboardService {
	return &leaderboardService{
		uowFactory: uowFactory,
	}
}

// TopEntries returns one page of a leaderboard. Rows with equal sort values
// come back in storage order, so pagination across ties is not deterministic.
func (s *leaderboardService) TopEntries(ctx context.Context, kind models.LeaderboardKind, sort models.SortKey, limit, page int, guildID string) ([]*models.LeaderboardEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown leaderboard kind %q", ErrInvalidArgument, kind)
	}
	if !sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrInvalidArgument, sort)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidArgument)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1", ErrInvalidArgument)
	}
	if kind == models.KindMembers && guildID == "" {
		return nil, fmt.Errorf("%w: guildID must be provided for member leaderboards", ErrInvalidArgument)
	}

	offset := (page - 1) * limit

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	switch kind {
	case models.KindGuilds:
		guilds, err := uow.GuildRepository().Top(ctx, sort, limit, offset)
		if err != nil {
			return nil, err
		}
		entries := make([]*models.LeaderboardEntry, 0, len(guilds))
		for _, g := range guilds {
			entries = append(entries, guildEntry(g))
		}
		return entries, nil

	case models.KindUsers:
		users, err := uow.UserRepository().Top(ctx, sort, limit, offset)
		if err != nil {
			return nil, err
		}
		entries := make([]*models.LeaderboardEntry, 0, len(users))
		for _, u := range users {
			entries = append(entries, userEntry(u))
		}
		return entries, nil

	default: // KindMembers, validated above
		members, err := uow.MemberRepository().TopByGuild(ctx, guildID, sort, limit, offset)
		if err != nil {
			return nil, err
		}
		entries := make([]*models.LeaderboardEntry, 0, len(members))
		for _, m := range members {
			entries = append(entries, memberEntry(m))
		}
		return entries, nil
	}
}

// GetEntry retrieves a single entry. Guild entries are looked up by guild
// ID; user and member entries by user ID, a member lookup returning the
// first membership row for that user.
func (s *leaderboardService) GetEntry(ctx context.Context, kind models.LeaderboardKind, id string) (*models.LeaderboardEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown leaderboard kind %q", ErrInvalidArgument, kind)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: id must be provided", ErrInvalidArgument)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	switch kind {
	case models.KindGuilds:
		guild, err := uow.GuildRepository().Get(ctx, id)
		if err != nil || guild == nil {
			return nil, err
		}
		return guildEntry(guild), nil

	case models.KindUsers:
		user, err := uow.UserRepository().Get(ctx, id)
		if err != nil || user == nil {
			return nil, err
		}
		return userEntry(user), nil

	default: // KindMembers, validated above
		member, err := uow.MemberRepository().GetFirstByUser(ctx, id)
		if err != nil || member == nil {
			return nil, err
		}
		return memberEntry(member), nil
	}
}

func guildEntry(g *models.Guild) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		ID:      g.GuildID,
		GuildID: g.GuildID,
		Name:    g.Name,
		Cakes:   g.Cakes,
		Points:  g.Points,
	}
}

func userEntry(u *models.User) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		ID:     u.UserID,
		Cakes:  u.Cakes,
		Points: u.Points,
	}
}

func memberEntry(m *models.Member) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		ID:      m.UserID,
		GuildID: m.GuildID,
		Cakes:   m.Cakes,
		Points:  m.Points,
	}
}
