package service

import (
	"context"
	"fmt"

	"caketoss/events"
	"caketoss/models"
)

// privacyService implements the PrivacyService interface
type privacyService struct {
	uowFactory UnitOfWorkFactory
}

// NewPrivacyService creates a new privacy service
func NewPrivacyService(uowFactory UnitOfWorkFactory) PrivacyService {
	return &privacyService{
		uowFactory: uowFactory,
	}
}

// DeleteUserData removes a user's entire footprint in a single transaction:
// every guild the user belonged to loses exactly the cakes and points the
// membership contributed, the membership and user rows are deleted, and
// guilds left with zero cakes are pruned. A user with no stored data is a
// no-op that reports Deleted=false.
func (s *privacyService) DeleteUserData(ctx context.Context, userID string) (*models.DeleteResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID must be provided", ErrInvalidArgument)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := uow.UserRepository().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &models.DeleteResult{Deleted: false}, nil
	}

	members, err := uow.MemberRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Reverse exactly what the throw path accumulated; no recomputation
	// from history.
	for _, member := range members {
		if err := uow.GuildRepository().DecrementTotals(ctx, member.GuildID, member.Cakes, member.Points); err != nil {
			return nil, err
		}
	}

	// Members before user: the decrement must never outlive its membership
	// row, and the user row must never outlive its memberships.
	if _, err := uow.MemberRepository().DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().Delete(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := uow.GuildRepository().PruneEmpty(ctx); err != nil {
		return nil, err
	}

	uow.EventBus().Publish(events.UserDataDeletedEvent{
		UserID: userID,
		Cakes:  user.Cakes,
		Points: user.Points,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &models.DeleteResult{Deleted: true, User: user}, nil
}
