package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"gymhub/internal/store"
)

type TrainerServiceSuite struct {
	suite.Suite
	store    *store.InMemory
	trainers TrainerService
	ctx      context.Context
}

func (s *TrainerServiceSuite) SetupTest() {
	s.store = store.Seed()
	s.trainers = NewTrainerService(s.store)
	s.ctx = context.Background()
}

func TestTrainerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrainerServiceSuite))
}

func (s *TrainerServiceSuite) TestProfile() {
	trainer, err := s.trainers.Profile(s.ctx, 101)
	s.Require().NoError(err)
	s.Equal("Karthik Murali", trainer.Name)
	s.Equal("CrossFit", trainer.Specialization)
	s.Empty(trainer.PasswordHash)

	_, err = s.trainers.Profile(s.ctx, 999)
	s.ErrorIs(err, ErrTrainerNotFound)
}

func (s *TrainerServiceSuite) TestUpdateProfile() {
	trainer, err := s.trainers.UpdateProfile(s.ctx, 101, "Karthik M", "CrossFit & HIIT")
	s.Require().NoError(err)
	s.Equal("Karthik M", trainer.Name)
	s.Equal("CrossFit & HIIT", trainer.Specialization)

	_, err = s.trainers.UpdateProfile(s.ctx, 101, "", "CrossFit")
	s.ErrorIs(err, ErrValidation)
}

func (s *TrainerServiceSuite) TestMyClasses() {
	classes, err := s.trainers.MyClasses(s.ctx, 102)
	s.Require().NoError(err)
	s.Require().Len(classes, 2)
	for _, c := range classes {
		s.Equal(102, c.TrainerID)
		s.Equal("Lakshmi Devi", c.TrainerName)
	}

	classes, err = s.trainers.MyClasses(s.ctx, 101)
	s.Require().NoError(err)
	s.Require().Len(classes, 1)
	s.Equal("Morning CrossFit", classes[0].Name)
	s.Equal(2, classes[0].Booked)
}

func (s *TrainerServiceSuite) TestMyMembers() {
	members, err := s.trainers.MyMembers(s.ctx, 101)
	s.Require().NoError(err)
	s.Require().Len(members, 2)
	s.Equal("Priya Kumar", members[0].Name)
	s.Equal("Ananya Iyer", members[1].Name)
	s.Empty(members[0].PasswordHash)

	members, err = s.trainers.MyMembers(s.ctx, 102)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal("Vikram Reddy", members[0].Name)
}

func (s *TrainerServiceSuite) TestPendingRequests() {
	s.Require().NoError(s.store.EnqueueRequest(s.ctx, 102, 1))
	s.Require().NoError(s.store.EnqueueRequest(s.ctx, 102, 3))

	requests, err := s.trainers.PendingRequests(s.ctx, 102)
	s.Require().NoError(err)
	s.Require().Len(requests, 2)
	s.Equal(PendingRequest{MemberID: 1, Name: "Priya Kumar"}, requests[0])
	s.Equal(PendingRequest{MemberID: 3, Name: "Ananya Iyer"}, requests[1])
}

func (s *TrainerServiceSuite) TestResolveRequest() {
	s.Run("accept assigns the trainer and dequeues", func() {
		s.Require().NoError(s.store.EnqueueRequest(s.ctx, 102, 1))

		err := s.trainers.ResolveRequest(s.ctx, 102, 1, DecisionAccept)
		s.Require().NoError(err)

		member, err := s.store.MemberByID(s.ctx, 1)
		s.Require().NoError(err)
		s.Require().NotNil(member.TrainerID)
		s.Equal(102, *member.TrainerID)

		queue, err := s.store.PendingRequests(s.ctx, 102)
		s.Require().NoError(err)
		s.Empty(queue)
	})

	s.Run("reject only dequeues", func() {
		s.Require().NoError(s.store.EnqueueRequest(s.ctx, 101, 2))

		err := s.trainers.ResolveRequest(s.ctx, 101, 2, DecisionReject)
		s.Require().NoError(err)

		member, err := s.store.MemberByID(s.ctx, 2)
		s.Require().NoError(err)
		s.Require().NotNil(member.TrainerID)
		s.Equal(102, *member.TrainerID, "reject must not change the assignment")

		queue, err := s.store.PendingRequests(s.ctx, 101)
		s.Require().NoError(err)
		s.Empty(queue)
	})

	s.Run("resolving an unqueued member is a no-op", func() {
		err := s.trainers.ResolveRequest(s.ctx, 101, 3, DecisionAccept)
		s.Require().NoError(err)

		member, err := s.store.MemberByID(s.ctx, 3)
		s.Require().NoError(err)
		s.Equal(101, *member.TrainerID, "no-op resolve must not reassign")
	})

	s.Run("unknown decision", func() {
		err := s.trainers.ResolveRequest(s.ctx, 101, 1, Decision("maybe"))
		s.ErrorIs(err, ErrUnknownDecision)
	})

	s.Run("unknown trainer", func() {
		err := s.trainers.ResolveRequest(s.ctx, 999, 1, DecisionAccept)
		s.ErrorIs(err, ErrTrainerNotFound)
	})
}
