package service

import (
	"context"
	"errors"

	"gymhub/internal/domain"
	"gymhub/internal/store"
)

// Decision is a trainer's verdict on a pending assignment request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

var ErrUnknownDecision = errors.New("decision must be accept or reject")

// PendingRequest is a queued assignment request joined with the member's
// name.
type PendingRequest struct {
	MemberID int    `json:"memberId"`
	Name     string `json:"name"`
}

type TrainerService interface {
	Profile(ctx context.Context, trainerID int) (domain.Trainer, error)
	UpdateProfile(ctx context.Context, trainerID int, name, specialization string) (domain.Trainer, error)

	// MyClasses lists the classes taught by this trainer.
	MyClasses(ctx context.Context, trainerID int) ([]ClassSummary, error)
	// MyMembers lists the members currently assigned to this trainer.
	MyMembers(ctx context.Context, trainerID int) ([]domain.Member, error)

	PendingRequests(ctx context.Context, trainerID int) ([]PendingRequest, error)
	// ResolveRequest removes the member from the trainer's queue; Accept
	// additionally assigns the trainer to the member. Resolving a member
	// that is not queued is a no-op.
	ResolveRequest(ctx context.Context, trainerID, memberID int, decision Decision) error
}

type trainerService struct {
	store store.Store
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(st store.Store) TrainerService {
	return &trainerService{store: st}
}

func (s *trainerService) Profile(ctx context.Context, trainerID int) (domain.Trainer, error) {
	trainer, err := s.store.TrainerByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Trainer{}, ErrTrainerNotFound
		}
		return domain.Trainer{}, err
	}
	trainer.PasswordHash = ""
	return trainer, nil
}

func (s *trainerService) UpdateProfile(ctx context.Context, trainerID int, name, specialization string) (domain.Trainer, error) {
	if name == "" || specialization == "" {
		return domain.Trainer{}, ErrValidation
	}
	var updated domain.Trainer
	err := s.store.UpdateTrainer(ctx, trainerID, func(t *domain.Trainer) error {
		t.Name = name
		t.Specialization = specialization
		updated = *t
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Trainer{}, ErrTrainerNotFound
		}
		return domain.Trainer{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *trainerService) MyClasses(ctx context.Context, trainerID int) ([]ClassSummary, error) {
	trainer, err := s.store.TrainerByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	classes, err := s.store.Classes(ctx)
	if err != nil {
		return nil, err
	}

	out := []ClassSummary{}
	for _, c := range classes {
		if c.TrainerID != trainerID {
			continue
		}
		out = append(out, ClassSummary{
			ID:          c.ID,
			Name:        c.Name,
			TrainerID:   c.TrainerID,
			TrainerName: trainer.Name,
			Date:        c.Date,
			Time:        c.Time,
			Capacity:    c.Capacity,
			Booked:      len(c.Booked),
		})
	}
	return out, nil
}

func (s *trainerService) MyMembers(ctx context.Context, trainerID int) ([]domain.Member, error) {
	members, err := s.store.Members(ctx)
	if err != nil {
		return nil, err
	}
	mine := []domain.Member{}
	for _, m := range members {
		if m.TrainerID != nil && *m.TrainerID == trainerID {
			m.PasswordHash = ""
			mine = append(mine, m)
		}
	}
	return mine, nil
}

func (s *trainerService) PendingRequests(ctx context.Context, trainerID int) ([]PendingRequest, error) {
	ids, err := s.store.PendingRequests(ctx, trainerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	out := []PendingRequest{}
	for _, memberID := range ids {
		member, err := s.store.MemberByID(ctx, memberID)
		if err != nil {
			// A queued ID with no member record renders nothing, same as
			// the request list screen.
			continue
		}
		out = append(out, PendingRequest{MemberID: member.ID, Name: member.Name})
	}
	return out, nil
}

func (s *trainerService) ResolveRequest(ctx context.Context, trainerID, memberID int, decision Decision) error {
	if decision != DecisionAccept && decision != DecisionReject {
		return ErrUnknownDecision
	}

	removed, err := s.store.RemoveRequest(ctx, trainerID, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	if !removed {
		// Not queued: nothing to resolve.
		return nil
	}

	if decision == DecisionReject {
		return nil
	}

	err = s.store.UpdateMember(ctx, memberID, func(m *domain.Member) error {
		id := trainerID
		m.TrainerID = &id
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrMemberNotFound
	}
	return err
}
