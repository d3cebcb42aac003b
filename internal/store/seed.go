package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"gymhub/internal/domain"
)

// Seed returns the store preloaded with the hard-coded demo dataset of the
// Bengaluru Fitness Hub. The process always starts from this state; nothing
// survives a restart.
func Seed() *InMemory {
	s := NewInMemory()
	now := time.Now()
	today := date(now.Year(), now.Month(), now.Day())

	s.admins = []domain.Admin{
		{Username: "admin", PasswordHash: mustHash("password123"), Name: "Adarsh"},
	}

	s.trainers = []domain.Trainer{
		{ID: 101, Name: "Karthik Murali", Specialization: "CrossFit", Username: "karthik", PasswordHash: mustHash("pass")},
		{ID: 102, Name: "Lakshmi Devi", Specialization: "Yoga & Pilates", Username: "lakshmi", PasswordHash: mustHash("pass")},
	}

	memberPass := mustHash("pass")
	s.members = []domain.Member{
		{
			ID: 1, Name: "Priya Kumar", Username: "priyak", PasswordHash: memberPass,
			Email: "priya@email.com", Phone: "9876543210",
			DOB: date(1995, time.May, 20), Address: "123 Koramangala, Bengaluru",
			PhotoURL: "https://api.dicebear.com/8.x/avataaars/svg?seed=Priya",
			Plan:     "Gold", Status: domain.StatusActive,
			JoinDate: date(2024, time.January, 15), ExpiryDate: date(2025, time.January, 15),
			TrainerID: intPtr(101),
		},
		{
			ID: 2, Name: "Vikram Reddy", Username: "vikramr", PasswordHash: memberPass,
			Email: "vikram@email.com", Phone: "9876543211",
			DOB: date(1990, time.November, 30), Address: "456 Indiranagar, Bengaluru",
			PhotoURL: "https://api.dicebear.com/8.x/avataaars/svg?seed=Vikram",
			Plan:     "Silver", Status: domain.StatusActive,
			JoinDate: date(2024, time.March, 1), ExpiryDate: date(2025, time.August, 1),
			TrainerID: intPtr(102),
		},
		{
			ID: 3, Name: "Ananya Iyer", Username: "ananyai", PasswordHash: memberPass,
			Email: "ananya@email.com", Phone: "9876543212",
			DOB: date(2000, time.August, 10), Address: "789 Jayanagar, Bengaluru",
			PhotoURL: "https://api.dicebear.com/8.x/avataaars/svg?seed=Ananya",
			Plan:     "Bronze", Status: domain.StatusExpired,
			JoinDate: date(2023, time.May, 20), ExpiryDate: date(2024, time.May, 20),
			TrainerID: intPtr(101),
		},
	}

	s.plans = []domain.Plan{
		{Name: "Bronze", Price: 1500, DurationDays: 30},
		{Name: "Silver", Price: 2500, DurationDays: 30},
		{Name: "Gold", Price: 4000, DurationDays: 30},
	}

	s.payments = []domain.Payment{
		{MemberID: 1, Amount: 4000, Date: date(2024, time.January, 15), Plan: "Gold"},
		{MemberID: 2, Amount: 2500, Date: date(2024, time.March, 1), Plan: "Silver"},
	}

	s.classes = []domain.GymClass{
		{ID: 1001, Name: "Morning CrossFit", TrainerID: 101, Date: today.AddDate(0, 0, 1), Time: "06:00", Capacity: 10, Booked: []int{1, 2}},
		{ID: 1002, Name: "Evening Yoga", TrainerID: 102, Date: today.AddDate(0, 0, 1), Time: "18:00", Capacity: 15, Booked: []int{3}},
		{ID: 1003, Name: "Pilates Core", TrainerID: 102, Date: today.AddDate(0, 0, 2), Time: "12:00", Capacity: 12, Booked: []int{}},
	}

	s.announcements = []domain.Announcement{
		{ID: 1, Text: "Maintenance alert: The swimming pool will be closed this weekend.", PostedAt: now},
		{ID: 2, Text: "Ganesha Chaturthi Promotion: Get 20% off on all 'Gold' annual plans!", PostedAt: now},
	}

	s.library = []domain.WorkoutLibraryEntry{
		// Legs
		{Name: "Barbell Squat", MuscleGroup: "Legs", Difficulty: domain.DifficultyIntermediate, Equipment: "Barbell, Squat Rack", VideoURL: "https://www.youtube.com/watch?v=U3mC6_o2_C4"},
		{Name: "Leg Press", MuscleGroup: "Legs", Difficulty: domain.DifficultyBeginner, Equipment: "Leg Press Machine", VideoURL: "https://www.youtube.com/watch?v=s0-zB1qfVzI"},
		{Name: "Romanian Deadlift (RDL)", MuscleGroup: "Legs", Difficulty: domain.DifficultyIntermediate, Equipment: "Barbell or Dumbbells", VideoURL: "https://www.youtube.com/watch?v=jW2tK9c4f7k"},
		// Chest
		{Name: "Push-up", MuscleGroup: "Chest", Difficulty: domain.DifficultyBeginner, Equipment: "None", VideoURL: "https://www.youtube.com/watch?v=IODxDxX7oi4"},
		{Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Difficulty: domain.DifficultyIntermediate, Equipment: "Dumbbells, Bench", VideoURL: "https://www.youtube.com/watch?v=fJz0t4tDq3Q"},
		{Name: "Cable Flys", MuscleGroup: "Chest", Difficulty: domain.DifficultyIntermediate, Equipment: "Cable Machine", VideoURL: "https://www.youtube.com/watch?v=rtJ-E3qYl7M"},
		// Back
		{Name: "Pull-up", MuscleGroup: "Back", Difficulty: domain.DifficultyAdvanced, Equipment: "Pull-up Bar", VideoURL: "https://www.youtube.com/watch?v=eGo4IYFdUsw"},
		{Name: "Bent-Over Dumbbell Rows", MuscleGroup: "Back", Difficulty: domain.DifficultyIntermediate, Equipment: "Dumbbells", VideoURL: "https://www.youtube.com/watch?v=ZfA1yE72F_c"},
		{Name: "Lat Pulldown", MuscleGroup: "Back", Difficulty: domain.DifficultyBeginner, Equipment: "Lat Pulldown Machine", VideoURL: "https://www.youtube.com/watch?v=0saN0G0Xg4o"},
		// Arms
		{Name: "Bicep Curls", MuscleGroup: "Arms", Difficulty: domain.DifficultyBeginner, Equipment: "Dumbbells or Barbell", VideoURL: "https://www.youtube.com/watch?v=tQ11T6z1J48"},
		{Name: "Tricep Dips", MuscleGroup: "Arms", Difficulty: domain.DifficultyIntermediate, Equipment: "Bench or Dip Station", VideoURL: "https://www.youtube.com/watch?v=s-tT1C2y_mE"},
		// Core
		{Name: "Plank", MuscleGroup: "Core", Difficulty: domain.DifficultyBeginner, Equipment: "None", VideoURL: "https://www.youtube.com/watch?v=ASdvfQjU7F0"},
		{Name: "Leg Raises", MuscleGroup: "Core", Difficulty: domain.DifficultyBeginner, Equipment: "None", VideoURL: "https://www.youtube.com/watch?v=W0y_oBq_Q_E"},
	}

	s.workouts = map[int][]domain.WorkoutLogEntry{
		1: {{Date: date(2025, time.July, 10), Exercise: "Barbell Squat", Weight: 60, Sets: 3, Reps: 10}},
		2: {},
		3: {},
	}

	s.nutrition = map[int][]domain.NutritionLogEntry{
		1: {{Date: today, Food: "Idli and Sambar", Calories: 350, Macronutrients: "High carb, low protein"}},
		2: {},
		3: {},
	}

	s.bodyMetrics = map[int][]domain.BodyMetricEntry{
		1: {
			{Date: today, Weight: 65, BodyFat: 22},
			{Date: today.AddDate(0, 0, -30), Weight: 67, BodyFat: 23},
		},
		2: {},
		3: {},
	}

	s.photos = map[int][]domain.ProgressPhoto{1: {}, 2: {}, 3: {}}

	s.planEntries = map[int][]domain.WorkoutPlanEntry{
		1: {{Exercise: "Barbell Squat", Sets: 3, Reps: 10, Notes: "Focus on form."}},
		2: {},
		3: {},
	}

	// Badges are seed-only; no handler awards them.
	s.badges = map[int][]string{
		1: {"First Workout Logged", "5 Classes Booked"},
		2: {"First Class Booked"},
		3: {},
	}

	s.posts = []domain.CommunityPost{
		{Author: "Priya Kumar", Text: "Just hit a new PR on my squat! Feeling great 💪", PostedAt: now},
		{Author: "Vikram Reddy", Text: "Yoga class with Lakshmi Devi was amazing today!", PostedAt: now.Add(-2 * time.Hour)},
	}

	s.challenges = []domain.Challenge{
		{
			Name: "30-Day Squat Challenge", Metric: "reps",
			Participants: []domain.ChallengeParticipant{
				{MemberID: 1, Name: "Priya Kumar", Score: 500},
				{MemberID: 2, Name: "Vikram Reddy", Score: 450},
			},
		},
		{
			Name: "July Cardio King", Metric: "distance",
			Participants: []domain.ChallengeParticipant{
				{MemberID: 1, Name: "Priya Kumar", Score: 25.5},
				{MemberID: 2, Name: "Vikram Reddy", Score: 22.0},
			},
		},
	}

	s.equipment = []domain.Equipment{
		{ID: 201, Name: "Treadmill #1", Status: domain.EquipmentWorking, LastService: date(2024, time.January, 1)},
		{ID: 202, Name: "Treadmill #2", Status: domain.EquipmentMaintenance, LastService: date(2024, time.June, 1)},
	}

	s.requests = map[int][]int{101: {}, 102: {}}

	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

// mustHash bcrypt-hashes a seed password. Seed data is hard coded, so a
// hashing failure is a programming error.
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
