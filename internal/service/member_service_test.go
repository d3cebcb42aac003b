package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"gymhub/internal/domain"
	"gymhub/internal/storage"
	"gymhub/internal/store"
)

type MemberServiceSuite struct {
	suite.Suite
	store   *store.InMemory
	photos  *storage.InMemoryStorage
	members MemberService
	ctx     context.Context
}

func (s *MemberServiceSuite) SetupTest() {
	s.store = store.Seed()
	s.photos = storage.NewInMemoryStorage()
	s.members = NewMemberService(s.store, s.photos)
	s.ctx = context.Background()
}

func TestMemberServiceSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceSuite))
}

func (s *MemberServiceSuite) TestProfile() {
	s.Run("joins the assigned trainer's name", func() {
		profile, err := s.members.Profile(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("Priya Kumar", profile.Name)
		s.Equal("Karthik Murali", profile.TrainerName)
		s.Equal(profile.Member.PhotoURL, profile.PhotoURL)
		s.Empty(profile.PasswordHash)
	})

	s.Run("shows Not Assigned without a trainer", func() {
		err := s.store.UpdateMember(s.ctx, 1, func(m *domain.Member) error {
			m.TrainerID = nil
			return nil
		})
		s.Require().NoError(err)

		profile, err := s.members.Profile(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("Not Assigned", profile.TrainerName)
	})

	s.Run("unknown member", func() {
		_, err := s.members.Profile(s.ctx, 99)
		s.ErrorIs(err, ErrMemberNotFound)
	})
}

func (s *MemberServiceSuite) TestUpdateContactInfo() {
	member, err := s.members.UpdateContactInfo(s.ctx, 1, "Priya K", "priya.k@email.com", "9999999999", "New Address")
	s.Require().NoError(err)
	s.Equal("Priya K", member.Name)

	// Immutable columns survive the update.
	stored, err := s.store.MemberByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("priyak", stored.Username)
	s.Equal("Gold", stored.Plan)
}

func (s *MemberServiceSuite) TestBookClass() {
	s.Run("books a free class", func() {
		s.Require().NoError(s.members.BookClass(s.ctx, 1, 1003))
		class, err := s.store.ClassByID(s.ctx, 1003)
		s.Require().NoError(err)
		s.Equal([]int{1}, class.Booked)
	})

	s.Run("double booking is rejected", func() {
		err := s.members.BookClass(s.ctx, 1, 1003)
		s.ErrorIs(err, ErrAlreadyBooked)
	})

	s.Run("full class is rejected without mutation", func() {
		// Shrink the class to its current occupancy.
		err := s.store.UpdateClass(s.ctx, 1003, func(c *domain.GymClass) error {
			c.Capacity = len(c.Booked)
			return nil
		})
		s.Require().NoError(err)

		err = s.members.BookClass(s.ctx, 2, 1003)
		s.Require().ErrorIs(err, ErrClassFull)

		class, err := s.store.ClassByID(s.ctx, 1003)
		s.Require().NoError(err)
		s.Equal([]int{1}, class.Booked)
	})

	s.Run("already-booked wins over full", func() {
		// Member 1 is booked into the now-full class; the answer must be
		// AlreadyBooked, not ClassFull.
		err := s.members.BookClass(s.ctx, 1, 1003)
		s.ErrorIs(err, ErrAlreadyBooked)
	})

	s.Run("unknown class", func() {
		s.ErrorIs(s.members.BookClass(s.ctx, 1, 9999), ErrClassNotFound)
	})

	s.Run("unknown member", func() {
		s.ErrorIs(s.members.BookClass(s.ctx, 99, 1001), ErrMemberNotFound)
	})
}

func (s *MemberServiceSuite) TestCancelBooking() {
	s.Run("cancels an existing booking", func() {
		s.Require().NoError(s.members.CancelBooking(s.ctx, 1, 1001))
		class, err := s.store.ClassByID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Equal([]int{2}, class.Booked)
	})

	s.Run("cancelling without a booking is an error", func() {
		s.ErrorIs(s.members.CancelBooking(s.ctx, 1, 1001), ErrNotBooked)
	})

	s.Run("book and cancel round-trip", func() {
		s.Require().NoError(s.members.BookClass(s.ctx, 1, 1001))
		s.Require().NoError(s.members.CancelBooking(s.ctx, 1, 1001))
		class, err := s.store.ClassByID(s.ctx, 1001)
		s.Require().NoError(err)
		s.Equal([]int{2}, class.Booked)
	})
}

func (s *MemberServiceSuite) TestClassViews() {
	views, err := s.members.Classes(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(views, 3)

	byID := make(map[int]ClassView)
	for _, v := range views {
		byID[v.ID] = v
	}
	s.True(byID[1001].IsBooked)
	s.False(byID[1002].IsBooked)
	s.Equal("Karthik Murali", byID[1001].TrainerName)
	s.Equal(2, byID[1001].Booked)
}

func (s *MemberServiceSuite) TestWorkoutLogging() {
	s.Run("appends a dated entry", func() {
		err := s.members.LogWorkout(s.ctx, 2, WorkoutLogInput{
			Exercise: "Leg Press", Weight: 80, Sets: 3, Reps: 12,
		})
		s.Require().NoError(err)

		history, err := s.members.WorkoutHistory(s.ctx, 2)
		s.Require().NoError(err)
		s.Require().Len(history, 1)
		s.Equal("Leg Press", history[0].Exercise)
		s.Equal(Today(), history[0].Date)
	})

	s.Run("validates the form", func() {
		err := s.members.LogWorkout(s.ctx, 2, WorkoutLogInput{Exercise: "", Sets: 3, Reps: 10})
		s.ErrorIs(err, ErrValidation)

		err = s.members.LogWorkout(s.ctx, 2, WorkoutLogInput{Exercise: "Squat", Sets: 0, Reps: 10})
		s.ErrorIs(err, ErrValidation)
	})

	s.Run("unknown member", func() {
		err := s.members.LogWorkout(s.ctx, 99, WorkoutLogInput{Exercise: "Squat", Sets: 3, Reps: 10})
		s.ErrorIs(err, ErrMemberNotFound)
	})
}

func (s *MemberServiceSuite) TestWorkoutLibrary() {
	library, err := s.members.WorkoutLibrary(s.ctx)
	s.Require().NoError(err)
	s.Len(library, 13)

	err = s.members.AddLibraryEntry(s.ctx, domain.WorkoutLibraryEntry{
		Name: "Overhead Press", MuscleGroup: "Shoulders",
		Difficulty: domain.DifficultyIntermediate,
		Equipment:  "Barbell", VideoURL: "https://example.com/ohp",
	})
	s.Require().NoError(err)

	library, err = s.members.WorkoutLibrary(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(library, 14)
	s.Equal("Barbell", library[13].Equipment)

	err = s.members.AddLibraryEntry(s.ctx, domain.WorkoutLibraryEntry{
		Name: "Bad", MuscleGroup: "Legs", Difficulty: "Impossible", VideoURL: "https://example.com",
	})
	s.ErrorIs(err, ErrValidation)
}

func (s *MemberServiceSuite) TestMealLogging() {
	err := s.members.LogMeal(s.ctx, 2, MealLogInput{
		Food: "Masala Dosa", Calories: 450, Macronutrients: "High carb",
	})
	s.Require().NoError(err)

	history, err := s.members.NutritionHistory(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal("Masala Dosa", history[0].Food)
}

func (s *MemberServiceSuite) TestBodyMetrics() {
	err := s.members.LogBodyMetric(s.ctx, 2, 78.5, 18)
	s.Require().NoError(err)

	history, err := s.members.BodyMetricHistory(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(78.5, history[0].Weight)

	s.ErrorIs(s.members.LogBodyMetric(s.ctx, 2, 0, 18), ErrValidation)
}

func (s *MemberServiceSuite) TestProgressPhotos() {
	err := s.members.UploadProgressPhoto(s.ctx, 1, "image/png", []byte("fake-png"))
	s.Require().NoError(err)

	photos, err := s.members.ProgressPhotoList(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(photos, 1)
	s.NotEmpty(photos[0].ViewURL)
}

func (s *MemberServiceSuite) TestProfilePhotoUpload() {
	err := s.members.UploadProfilePhoto(s.ctx, 1, "image/jpeg", []byte("fake-jpeg"))
	s.Require().NoError(err)

	member, err := s.store.MemberByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().True(member.HasUploadedPhoto())

	data, ok := s.photos.Object(member.UploadedPhotoKey)
	s.Require().True(ok)
	s.Equal([]byte("fake-jpeg"), data)

	// The profile now serves the uploaded photo instead of the avatar.
	profile, err := s.members.Profile(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("memory://"+member.UploadedPhotoKey, profile.PhotoURL)
}

func (s *MemberServiceSuite) TestProfilePhotoReplacementDeletesOld() {
	s.Require().NoError(s.members.UploadProfilePhoto(s.ctx, 1, "image/jpeg", []byte("first")))
	first, err := s.store.MemberByID(s.ctx, 1)
	s.Require().NoError(err)

	s.Require().NoError(s.members.UploadProfilePhoto(s.ctx, 1, "image/png", []byte("second")))
	second, err := s.store.MemberByID(s.ctx, 1)
	s.Require().NoError(err)
	s.NotEqual(first.UploadedPhotoKey, second.UploadedPhotoKey)

	_, ok := s.photos.Object(first.UploadedPhotoKey)
	s.False(ok, "replaced photo must be removed from storage")

	data, ok := s.photos.Object(second.UploadedPhotoKey)
	s.Require().True(ok)
	s.Equal([]byte("second"), data)
}

func (s *MemberServiceSuite) TestChallenges() {
	challenges, err := s.members.Challenges(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(challenges, 2)

	for _, c := range challenges {
		for i := 1; i < len(c.Participants); i++ {
			s.GreaterOrEqual(c.Participants[i-1].Score, c.Participants[i].Score)
		}
	}
}

func (s *MemberServiceSuite) TestCommunityFeed() {
	s.Require().NoError(s.members.PostToFeed(s.ctx, 2, "Great session today!"))

	feed, err := s.members.Feed(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feed, 3)
	s.Equal("Vikram Reddy", feed[0].Author)
	s.Equal("Great session today!", feed[0].Text)

	s.ErrorIs(s.members.PostToFeed(s.ctx, 2, ""), ErrValidation)
}

func (s *MemberServiceSuite) TestRequestTrainer() {
	s.Run("queues a request", func() {
		s.Require().NoError(s.members.RequestTrainer(s.ctx, 3, 102))
		queue, err := s.store.PendingRequests(s.ctx, 102)
		s.Require().NoError(err)
		s.Equal([]int{3}, queue)
	})

	s.Run("repeat requests are no-ops", func() {
		s.Require().NoError(s.members.RequestTrainer(s.ctx, 3, 102))
		queue, err := s.store.PendingRequests(s.ctx, 102)
		s.Require().NoError(err)
		s.Equal([]int{3}, queue)
	})

	s.Run("requesting the assigned trainer is a no-op", func() {
		// Member 1 is already assigned to trainer 101.
		s.Require().NoError(s.members.RequestTrainer(s.ctx, 1, 101))
		queue, err := s.store.PendingRequests(s.ctx, 101)
		s.Require().NoError(err)
		s.Empty(queue)
	})

	s.Run("unknown trainer", func() {
		s.ErrorIs(s.members.RequestTrainer(s.ctx, 1, 999), ErrTrainerNotFound)
	})
}

func (s *MemberServiceSuite) TestTrainerViews() {
	s.Require().NoError(s.members.RequestTrainer(s.ctx, 1, 102))

	views, err := s.members.Trainers(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	byID := make(map[int]TrainerView)
	for _, v := range views {
		byID[v.ID] = v
	}
	s.True(byID[101].Assigned)
	s.False(byID[101].Requested)
	s.False(byID[102].Assigned)
	s.True(byID[102].Requested)
}

func (s *MemberServiceSuite) TestBadges() {
	badges, err := s.members.Badges(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal([]string{"First Workout Logged", "5 Classes Booked"}, badges)
}
