package service

import (
	"context"
	"fmt"
	"time"

	"caketoss/events"
	"caketoss/models"
)

type cakeService struct {
	uowFactory UnitOfWorkFactory
	now        func() time.Time
}

// NewCakeService creates a new cake service
func NewCakeService(uowFactory UnitOfWorkFactory) CakeService {
	return &cakeService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// NewCakeServiceWithClock creates a cake service with a custom clock so
// tests can place throws exactly on the daily window boundary
func NewCakeServiceWithClock(uowFactory UnitOfWorkFactory, now func() time.Time) CakeService {
	return &cakeService{
		uowFactory: uowFactory,
		now:        now,
	}
}

// ThrowCake records one throw in a single transaction: lazily creates the
// guild, user and membership rows, advances the member's daily window when
// it has gone stale, and applies the point delta to all three aggregate
// levels iff the member is still under the daily limit.
func (s *cakeService) ThrowCake(ctx context.Context, userID, guildID, guildName string, points, dailyLimit int64) (*models.ThrowResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID must be provided", ErrInvalidArgument)
	}
	if guildID == "" {
		return nil, fmt.Errorf("%w: guildID must be provided", ErrInvalidArgument)
	}
	if dailyLimit <= 0 {
		return nil, fmt.Errorf("%w: dailyLimit must be positive", ErrInvalidArgument)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.GuildRepository().EnsureExists(ctx, guildID, guildName); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().EnsureExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := uow.MemberRepository().EnsureExists(ctx, userID, guildID); err != nil {
		return nil, err
	}

	member, err := uow.MemberRepository().Get(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("member %s/%s missing after upsert", userID, guildID)
	}

	now := s.now().Unix()
	if member.WindowExpired(now) {
		if err := uow.MemberRepository().ResetWindow(ctx, userID, guildID, now); err != nil {
			return nil, err
		}
		zero := int64(0)
		resetAt := now
		member.CakesToday = &zero
		member.CakesTodayReset = &resetAt
	}

	if *member.CakesToday >= dailyLimit {
		// The window reset above still has to land, so the boundary only
		// ever advances on the stale check.
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return &models.ThrowResult{Success: false, Member: member}, nil
	}

	if err := uow.GuildRepository().AddThrow(ctx, guildID, guildName, points); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().AddThrow(ctx, userID, points); err != nil {
		return nil, err
	}
	if err := uow.MemberRepository().AddThrow(ctx, userID, guildID, points); err != nil {
		return nil, err
	}

	member.Points += points
	member.Cakes++
	cakesToday := *member.CakesToday + 1
	member.CakesToday = &cakesToday

	uow.EventBus().Publish(events.CakeThrownEvent{
		UserID:     userID,
		GuildID:    guildID,
		GuildName:  guildName,
		Points:     points,
		CakesToday: cakesToday,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &models.ThrowResult{Success: true, Member: member}, nil
}
