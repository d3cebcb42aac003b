package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"gymhub/internal/domain"
	"gymhub/internal/store"
)

const testJWTSecret = "test-secret"

type AuthServiceSuite struct {
	suite.Suite
	store *store.InMemory
	auth  AuthService
	ctx   context.Context
}

func (s *AuthServiceSuite) SetupTest() {
	s.store = store.Seed()
	s.auth = NewAuthService(s.store, testJWTSecret, time.Hour)
	s.ctx = context.Background()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestLogin() {
	s.Run("admin logs in with seeded credentials", func() {
		token, identity, err := s.auth.Login(s.ctx, domain.RoleAdmin, "admin", "password123")
		s.Require().NoError(err)
		s.NotEmpty(token)
		s.Equal(domain.RoleAdmin, identity.Role)
		s.Equal("admin", identity.Subject)
		s.Equal("Adarsh", identity.Name)
	})

	s.Run("trainer subject is the trainer ID", func() {
		_, identity, err := s.auth.Login(s.ctx, domain.RoleTrainer, "karthik", "pass")
		s.Require().NoError(err)
		s.Equal("101", identity.Subject)
		s.Equal("Karthik Murali", identity.Name)
	})

	s.Run("member subject is the member ID", func() {
		_, identity, err := s.auth.Login(s.ctx, domain.RoleMember, "priyak", "pass")
		s.Require().NoError(err)
		s.Equal("1", identity.Subject)
	})

	s.Run("wrong password and unknown user fail identically", func() {
		_, _, errWrongPass := s.auth.Login(s.ctx, domain.RoleMember, "priyak", "nope")
		_, _, errUnknown := s.auth.Login(s.ctx, domain.RoleMember, "ghost", "pass")
		s.ErrorIs(errWrongPass, ErrAuthenticationFailed)
		s.ErrorIs(errUnknown, ErrAuthenticationFailed)
		s.Equal(errWrongPass, errUnknown)
	})

	s.Run("a username only works for its own role", func() {
		_, _, err := s.auth.Login(s.ctx, domain.RoleMember, "karthik", "pass")
		s.ErrorIs(err, ErrAuthenticationFailed)
	})
}

func (s *AuthServiceSuite) TestRegister() {
	s.Run("creates a Bronze member with registration defaults", func() {
		member, err := s.auth.Register(s.ctx, RegisterInput{
			Name:            "Rahul Sharma",
			Email:           "rahul@email.com",
			Phone:           "9000000000",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		s.Require().NoError(err)

		s.Equal(4, member.ID)
		s.Equal("rahuls", member.Username)
		s.Equal("Bronze", member.Plan)
		s.Equal(domain.StatusActive, member.Status)
		s.Equal(member.JoinDate.AddDate(0, 0, 30), member.ExpiryDate)
		s.Equal("Bengaluru, Karnataka", member.Address)
		s.Equal(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), member.DOB)
		s.Contains(member.PhotoURL, "seed=Rahul")
		s.Empty(member.PasswordHash)
		s.Nil(member.TrainerID)

		// And the account is immediately usable.
		_, identity, err := s.auth.Login(s.ctx, domain.RoleMember, "rahuls", "secret")
		s.Require().NoError(err)
		s.Equal("4", identity.Subject)
	})

	s.Run("first member in an empty store gets ID 1", func() {
		empty := store.NewInMemory()
		auth := NewAuthService(empty, testJWTSecret, time.Hour)

		member, err := auth.Register(s.ctx, RegisterInput{
			Name:            "Priya Kumar",
			Email:           "priya@email.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		s.Require().NoError(err)
		s.Equal(1, member.ID)
		s.Equal("priyak", member.Username)

		workouts, err := empty.WorkoutLog(s.ctx, 1)
		s.Require().NoError(err)
		s.Empty(workouts)
	})

	s.Run("rejects mismatched passwords", func() {
		_, err := s.auth.Register(s.ctx, RegisterInput{
			Name: "X Y", Email: "x@email.com", Password: "a", ConfirmPassword: "b",
		})
		s.ErrorIs(err, ErrValidation)
	})

	s.Run("rejects duplicate email without creating a member", func() {
		_, err := s.auth.Register(s.ctx, RegisterInput{
			Name:            "Someone Else",
			Email:           "priya@email.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		s.Require().ErrorIs(err, ErrDuplicateEmail)

		members, storeErr := s.store.Members(s.ctx)
		s.Require().NoError(storeErr)
		s.Len(members, 3)
	})

	s.Run("rejects a generated username collision", func() {
		// "Priya Krishnan" generates "priyak", already taken by Priya Kumar.
		_, err := s.auth.Register(s.ctx, RegisterInput{
			Name:            "Priya Krishnan",
			Email:           "priya.krishnan@email.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		s.ErrorIs(err, ErrUsernameTaken)
	})

	s.Run("duplicate email wins over username collision", func() {
		_, err := s.auth.Register(s.ctx, RegisterInput{
			Name:            "Priya Krishnan",
			Email:           "priya@email.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		s.ErrorIs(err, ErrDuplicateEmail)
	})
}

func TestGenerateUsername(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Priya Kumar", "priyak"},
		{"Vikram Reddy", "vikramr"},
		{"Rahul Sharma", "rahuls"},
		{"Madonna", "madonnam"},
		{"  Anil   Kumar Gupta  ", "anilg"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateUsername(tc.name), "name %q", tc.name)
	}
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://api.dicebear.com/8.x/avataaars/svg?seed=Priya", AvatarURL("Priya Kumar"))
	assert.Equal(t, "https://api.dicebear.com/8.x/avataaars/svg?seed=Madonna", AvatarURL("Madonna"))
}
