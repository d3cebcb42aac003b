package store

import (
	"context"

	"gymhub/internal/domain"
)

// Error constants for the store layer
var (
	ErrNotFound  = StoreError("not found")
	ErrDuplicate = StoreError("duplicate record")
)

// StoreError helps distinguish store errors
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ID bases used when a table is empty. Inserts otherwise assign
// max(existing ids) + 1. These must not change: seed data and member-facing
// identifiers depend on the ranges.
const (
	MemberIDBase       = 1
	TrainerIDBase      = 101
	EquipmentIDBase    = 201
	ClassIDBase        = 1001
	AnnouncementIDBase = 1
)

// AdminStore holds the administrator account records.
type AdminStore interface {
	Admin(ctx context.Context) (domain.Admin, error) // the (expected singleton) admin
	AdminByUsername(ctx context.Context, username string) (domain.Admin, error)
	UpdateAdmin(ctx context.Context, username string, mutate func(*domain.Admin) error) error
}

// MemberStore holds the member table. Members are never deleted.
type MemberStore interface {
	Members(ctx context.Context) ([]domain.Member, error)
	MemberByID(ctx context.Context, id int) (domain.Member, error)
	MemberByUsername(ctx context.Context, username string) (domain.Member, error)
	MemberByEmail(ctx context.Context, email string) (domain.Member, error)
	// InsertMember assigns the next ID and initializes every per-member
	// log table for the new member.
	InsertMember(ctx context.Context, m domain.Member) (int, error)
	UpdateMember(ctx context.Context, id int, mutate func(*domain.Member) error) error
	// ReplaceMembers overwrites the whole member table. Last writer wins;
	// there is no per-field diffing or version check.
	ReplaceMembers(ctx context.Context, members []domain.Member) error
}

// TrainerStore holds the trainer table. Trainers are never deleted.
type TrainerStore interface {
	Trainers(ctx context.Context) ([]domain.Trainer, error)
	TrainerByID(ctx context.Context, id int) (domain.Trainer, error)
	TrainerByUsername(ctx context.Context, username string) (domain.Trainer, error)
	// InsertTrainer assigns the next ID and initializes the trainer's
	// pending-request queue.
	InsertTrainer(ctx context.Context, t domain.Trainer) (int, error)
	UpdateTrainer(ctx context.Context, id int, mutate func(*domain.Trainer) error) error
}

// ClassStore holds the scheduled classes.
type ClassStore interface {
	Classes(ctx context.Context) ([]domain.GymClass, error)
	ClassByID(ctx context.Context, id int) (domain.GymClass, error)
	InsertClass(ctx context.Context, c domain.GymClass) (int, error)
	// UpdateClass applies mutate under the store lock. When mutate returns
	// an error the mutation is discarded and the error returned unchanged,
	// so validation failures skip the write.
	UpdateClass(ctx context.Context, id int, mutate func(*domain.GymClass) error) error
}

// PlanStore holds the static membership plan catalog.
type PlanStore interface {
	Plans(ctx context.Context) ([]domain.Plan, error)
	PlanByName(ctx context.Context, name string) (domain.Plan, error)
}

// PaymentStore is the append-only payment ledger.
type PaymentStore interface {
	Payments(ctx context.Context) ([]domain.Payment, error)
	AppendPayment(ctx context.Context, p domain.Payment) error
}

// AnnouncementStore holds gym-wide announcements, newest first.
type AnnouncementStore interface {
	Announcements(ctx context.Context) ([]domain.Announcement, error)
	// InsertAnnouncement assigns a stable ID and prepends the record.
	InsertAnnouncement(ctx context.Context, a domain.Announcement) (int, error)
	UpdateAnnouncement(ctx context.Context, id int, text string) error
}

// WorkoutLibraryStore is the shared, append-only exercise library.
type WorkoutLibraryStore interface {
	WorkoutLibrary(ctx context.Context) ([]domain.WorkoutLibraryEntry, error)
	AppendLibraryEntry(ctx context.Context, e domain.WorkoutLibraryEntry) error
}

// MemberLogStore holds the per-member log tables. Every table is keyed by
// member ID and initialized when the member is created; operations on an
// unknown member return ErrNotFound.
type MemberLogStore interface {
	WorkoutLog(ctx context.Context, memberID int) ([]domain.WorkoutLogEntry, error)
	AppendWorkout(ctx context.Context, memberID int, e domain.WorkoutLogEntry) error

	NutritionLog(ctx context.Context, memberID int) ([]domain.NutritionLogEntry, error)
	AppendMeal(ctx context.Context, memberID int, e domain.NutritionLogEntry) error

	BodyMetrics(ctx context.Context, memberID int) ([]domain.BodyMetricEntry, error)
	AppendBodyMetric(ctx context.Context, memberID int, e domain.BodyMetricEntry) error

	ProgressPhotos(ctx context.Context, memberID int) ([]domain.ProgressPhoto, error)
	AppendProgressPhoto(ctx context.Context, memberID int, p domain.ProgressPhoto) error

	PlanEntries(ctx context.Context, memberID int) ([]domain.WorkoutPlanEntry, error)
	AppendPlanEntry(ctx context.Context, memberID int, e domain.WorkoutPlanEntry) error

	Badges(ctx context.Context, memberID int) ([]string, error)
}

// CommunityStore is the global community feed, newest first.
type CommunityStore interface {
	CommunityPosts(ctx context.Context) ([]domain.CommunityPost, error)
	PrependPost(ctx context.Context, p domain.CommunityPost) error
}

// ChallengeStore holds the read-only challenge leaderboards.
type ChallengeStore interface {
	Challenges(ctx context.Context) ([]domain.Challenge, error)
}

// EquipmentStore holds the equipment inventory.
type EquipmentStore interface {
	Equipment(ctx context.Context) ([]domain.Equipment, error)
}

// TrainerRequestStore holds the per-trainer queues of member IDs awaiting
// assignment.
type TrainerRequestStore interface {
	PendingRequests(ctx context.Context, trainerID int) ([]int, error)
	HasRequest(ctx context.Context, trainerID, memberID int) (bool, error)
	// EnqueueRequest is idempotent: enqueueing an already-queued member is
	// a no-op.
	EnqueueRequest(ctx context.Context, trainerID, memberID int) error
	// RemoveRequest reports whether the member was actually queued.
	RemoveRequest(ctx context.Context, trainerID, memberID int) (bool, error)
}

// Store is the full record store. A single shared instance backs the whole
// process; it is handed to every service explicitly rather than living in
// package-level state. All synchronization happens at this boundary.
type Store interface {
	AdminStore
	MemberStore
	TrainerStore
	ClassStore
	PlanStore
	PaymentStore
	AnnouncementStore
	WorkoutLibraryStore
	MemberLogStore
	CommunityStore
	ChallengeStore
	EquipmentStore
	TrainerRequestStore
}
