package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gymhub/internal/domain"
	"gymhub/internal/storage"
	"gymhub/internal/store"
)

// --- Error Definitions ---
var (
	ErrClassNotFound = errors.New("class not found")
	ErrClassFull     = errors.New("class is full")
	ErrAlreadyBooked = errors.New("already booked into this class")
	ErrNotBooked     = errors.New("no booking found for this class")
)

// MemberProfile is a member joined with display-only fields: the assigned
// trainer's name and the effective photo URL (uploaded photo shadows the
// avatar).
type MemberProfile struct {
	domain.Member
	TrainerName string `json:"trainerName"`
	PhotoURL    string `json:"photoUrl"`
}

// ClassView is the booking screen's per-member view of a class.
type ClassView struct {
	ClassSummary
	IsBooked bool `json:"isBooked"`
	IsFull   bool `json:"isFull"`
}

// TrainerView is the find-a-trainer screen's per-member view of a trainer.
type TrainerView struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Assigned       bool   `json:"assigned"`
	Requested      bool   `json:"requested"`
}

// ProgressPhotoView pairs a progress photo date with a temporary download
// URL.
type ProgressPhotoView struct {
	Date    time.Time `json:"date"`
	ViewURL string    `json:"viewUrl"`
}

// WorkoutLogInput carries the log-workout form.
type WorkoutLogInput struct {
	Exercise string
	Weight   float64
	Sets     int
	Reps     int
}

// MealLogInput carries the log-meal form.
type MealLogInput struct {
	Food           string
	Calories       int
	Macronutrients string
}

type MemberService interface {
	Profile(ctx context.Context, memberID int) (*MemberProfile, error)
	UpdateContactInfo(ctx context.Context, memberID int, name, email, phone, address string) (*domain.Member, error)
	UploadProfilePhoto(ctx context.Context, memberID int, contentType string, data []byte) error

	Classes(ctx context.Context, memberID int) ([]ClassView, error)
	BookClass(ctx context.Context, memberID, classID int) error
	CancelBooking(ctx context.Context, memberID, classID int) error

	LogWorkout(ctx context.Context, memberID int, input WorkoutLogInput) error
	WorkoutHistory(ctx context.Context, memberID int) ([]domain.WorkoutLogEntry, error)
	WorkoutLibrary(ctx context.Context) ([]domain.WorkoutLibraryEntry, error)
	AddLibraryEntry(ctx context.Context, entry domain.WorkoutLibraryEntry) error
	PlanEntries(ctx context.Context, memberID int) ([]domain.WorkoutPlanEntry, error)
	AddPlanEntry(ctx context.Context, memberID int, entry domain.WorkoutPlanEntry) error

	LogMeal(ctx context.Context, memberID int, input MealLogInput) error
	NutritionHistory(ctx context.Context, memberID int) ([]domain.NutritionLogEntry, error)

	LogBodyMetric(ctx context.Context, memberID int, weight, bodyFat float64) error
	BodyMetricHistory(ctx context.Context, memberID int) ([]domain.BodyMetricEntry, error)
	Badges(ctx context.Context, memberID int) ([]string, error)
	UploadProgressPhoto(ctx context.Context, memberID int, contentType string, data []byte) error
	ProgressPhotoList(ctx context.Context, memberID int) ([]ProgressPhotoView, error)

	Challenges(ctx context.Context) ([]domain.Challenge, error)

	Feed(ctx context.Context) ([]domain.CommunityPost, error)
	PostToFeed(ctx context.Context, memberID int, text string) error

	Trainers(ctx context.Context, memberID int) ([]TrainerView, error)
	// RequestTrainer queues an assignment request. Requesting an already
	// assigned or already requested trainer is an idempotent no-op.
	RequestTrainer(ctx context.Context, memberID, trainerID int) error

	Announcements(ctx context.Context) ([]domain.Announcement, error)
}

type memberService struct {
	store       store.Store
	fileStorage storage.FileStorage
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(st store.Store, fileStorage storage.FileStorage) MemberService {
	return &memberService{store: st, fileStorage: fileStorage}
}

func (s *memberService) member(ctx context.Context, memberID int) (domain.Member, error) {
	member, err := s.store.MemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	return member, nil
}

// === Profile ===

func (s *memberService) Profile(ctx context.Context, memberID int) (*MemberProfile, error) {
	member, err := s.member(ctx, memberID)
	if err != nil {
		return nil, err
	}

	trainerName := "Not Assigned"
	if member.TrainerID != nil {
		if trainer, err := s.store.TrainerByID(ctx, *member.TrainerID); err == nil {
			trainerName = trainer.Name
		}
	}

	photoURL := member.PhotoURL
	if member.HasUploadedPhoto() {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, member.UploadedPhotoKey, storage.DefaultPresignedURLExpiry)
		if err == nil {
			photoURL = url
		}
	}

	member.PasswordHash = ""
	return &MemberProfile{Member: member, TrainerName: trainerName, PhotoURL: photoURL}, nil
}

func (s *memberService) UpdateContactInfo(ctx context.Context, memberID int, name, email, phone, address string) (*domain.Member, error) {
	if name == "" || email == "" {
		return nil, ErrValidation
	}
	var updated domain.Member
	err := s.store.UpdateMember(ctx, memberID, func(m *domain.Member) error {
		m.Name = name
		m.Email = email
		m.Phone = phone
		m.Address = address
		updated = *m
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	updated.PasswordHash = ""
	return &updated, nil
}

func (s *memberService) UploadProfilePhoto(ctx context.Context, memberID int, contentType string, data []byte) error {
	member, err := s.member(ctx, memberID)
	if err != nil {
		return err
	}
	objectKey := ProfilePhotoKey(memberID, contentType)
	if err := s.fileStorage.Upload(ctx, objectKey, contentType, data); err != nil {
		return ErrPhotoUploadFailed
	}
	if err := s.store.UpdateMember(ctx, memberID, func(m *domain.Member) error {
		m.UploadedPhotoKey = objectKey
		return nil
	}); err != nil {
		return err
	}
	// The previous photo is unreachable once the new key is recorded.
	if old := member.UploadedPhotoKey; old != "" {
		_ = s.fileStorage.DeleteObject(ctx, old)
	}
	return nil
}

// === Class Booking ===

func (s *memberService) Classes(ctx context.Context, memberID int) ([]ClassView, error) {
	if _, err := s.member(ctx, memberID); err != nil {
		return nil, err
	}
	classes, err := s.store.Classes(ctx)
	if err != nil {
		return nil, err
	}
	trainers, err := s.store.Trainers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(trainers))
	for _, t := range trainers {
		names[t.ID] = t.Name
	}

	out := make([]ClassView, len(classes))
	for i, c := range classes {
		out[i] = ClassView{
			ClassSummary: ClassSummary{
				ID:          c.ID,
				Name:        c.Name,
				TrainerID:   c.TrainerID,
				TrainerName: names[c.TrainerID],
				Date:        c.Date,
				Time:        c.Time,
				Capacity:    c.Capacity,
				Booked:      len(c.Booked),
			},
			IsBooked: c.HasBooked(memberID),
			IsFull:   c.IsFull(),
		}
	}
	return out, nil
}

// BookClass adds the member to the class's booked set. The capacity check
// happens inside the store mutation, so a failed booking never mutates the
// set.
func (s *memberService) BookClass(ctx context.Context, memberID, classID int) error {
	if _, err := s.member(ctx, memberID); err != nil {
		return err
	}
	err := s.store.UpdateClass(ctx, classID, func(c *domain.GymClass) error {
		if c.HasBooked(memberID) {
			return ErrAlreadyBooked
		}
		if c.IsFull() {
			return ErrClassFull
		}
		c.Booked = append(c.Booked, memberID)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrClassNotFound
	}
	return err
}

// CancelBooking removes the member from the class's booked set.
func (s *memberService) CancelBooking(ctx context.Context, memberID, classID int) error {
	if _, err := s.member(ctx, memberID); err != nil {
		return err
	}
	err := s.store.UpdateClass(ctx, classID, func(c *domain.GymClass) error {
		for i, id := range c.Booked {
			if id == memberID {
				c.Booked = append(c.Booked[:i], c.Booked[i+1:]...)
				return nil
			}
		}
		return ErrNotBooked
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrClassNotFound
	}
	return err
}

// === Workout Tracking ===

func (s *memberService) LogWorkout(ctx context.Context, memberID int, input WorkoutLogInput) error {
	if input.Exercise == "" || input.Sets < 1 || input.Reps < 1 || input.Weight < 0 {
		return ErrValidation
	}
	entry := domain.WorkoutLogEntry{
		Date:     Today(),
		Exercise: input.Exercise,
		Weight:   input.Weight,
		Sets:     input.Sets,
		Reps:     input.Reps,
	}
	return s.mapLogErr(s.store.AppendWorkout(ctx, memberID, entry))
}

func (s *memberService) WorkoutHistory(ctx context.Context, memberID int) ([]domain.WorkoutLogEntry, error) {
	log, err := s.store.WorkoutLog(ctx, memberID)
	return log, s.mapLogErr(err)
}

func (s *memberService) WorkoutLibrary(ctx context.Context) ([]domain.WorkoutLibraryEntry, error) {
	return s.store.WorkoutLibrary(ctx)
}

func (s *memberService) AddLibraryEntry(ctx context.Context, entry domain.WorkoutLibraryEntry) error {
	if entry.Name == "" || entry.MuscleGroup == "" || entry.VideoURL == "" {
		return ErrValidation
	}
	switch entry.Difficulty {
	case domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced:
	default:
		return ErrValidation
	}
	return s.store.AppendLibraryEntry(ctx, entry)
}

func (s *memberService) PlanEntries(ctx context.Context, memberID int) ([]domain.WorkoutPlanEntry, error) {
	entries, err := s.store.PlanEntries(ctx, memberID)
	return entries, s.mapLogErr(err)
}

func (s *memberService) AddPlanEntry(ctx context.Context, memberID int, entry domain.WorkoutPlanEntry) error {
	if entry.Exercise == "" || entry.Sets < 1 || entry.Reps < 1 {
		return ErrValidation
	}
	return s.mapLogErr(s.store.AppendPlanEntry(ctx, memberID, entry))
}

// === Nutrition Tracking ===

func (s *memberService) LogMeal(ctx context.Context, memberID int, input MealLogInput) error {
	if input.Food == "" || input.Calories < 0 {
		return ErrValidation
	}
	entry := domain.NutritionLogEntry{
		Date:           Today(),
		Food:           input.Food,
		Calories:       input.Calories,
		Macronutrients: input.Macronutrients,
	}
	return s.mapLogErr(s.store.AppendMeal(ctx, memberID, entry))
}

func (s *memberService) NutritionHistory(ctx context.Context, memberID int) ([]domain.NutritionLogEntry, error) {
	log, err := s.store.NutritionLog(ctx, memberID)
	return log, s.mapLogErr(err)
}

// === Progress Tracking ===

func (s *memberService) LogBodyMetric(ctx context.Context, memberID int, weight, bodyFat float64) error {
	if weight <= 0 || bodyFat < 0 {
		return ErrValidation
	}
	entry := domain.BodyMetricEntry{Date: Today(), Weight: weight, BodyFat: bodyFat}
	return s.mapLogErr(s.store.AppendBodyMetric(ctx, memberID, entry))
}

func (s *memberService) BodyMetricHistory(ctx context.Context, memberID int) ([]domain.BodyMetricEntry, error) {
	log, err := s.store.BodyMetrics(ctx, memberID)
	return log, s.mapLogErr(err)
}

func (s *memberService) Badges(ctx context.Context, memberID int) ([]string, error) {
	badges, err := s.store.Badges(ctx, memberID)
	return badges, s.mapLogErr(err)
}

func (s *memberService) UploadProgressPhoto(ctx context.Context, memberID int, contentType string, data []byte) error {
	if _, err := s.member(ctx, memberID); err != nil {
		return err
	}
	objectKey := path.Join("photos", "progress", strconv.Itoa(memberID),
		fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension(contentType)))
	if err := s.fileStorage.Upload(ctx, objectKey, contentType, data); err != nil {
		return ErrPhotoUploadFailed
	}
	photo := domain.ProgressPhoto{Date: Today(), ObjectKey: objectKey}
	return s.mapLogErr(s.store.AppendProgressPhoto(ctx, memberID, photo))
}

func (s *memberService) ProgressPhotoList(ctx context.Context, memberID int) ([]ProgressPhotoView, error) {
	photos, err := s.store.ProgressPhotos(ctx, memberID)
	if err != nil {
		return nil, s.mapLogErr(err)
	}
	out := make([]ProgressPhotoView, 0, len(photos))
	for _, p := range photos {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, p.ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, err
		}
		out = append(out, ProgressPhotoView{Date: p.Date, ViewURL: url})
	}
	return out, nil
}

// === Challenges ===

// Challenges returns the leaderboards with participants ranked by score,
// highest first.
func (s *memberService) Challenges(ctx context.Context) ([]domain.Challenge, error) {
	challenges, err := s.store.Challenges(ctx)
	if err != nil {
		return nil, err
	}
	for i := range challenges {
		participants := challenges[i].Participants
		sort.SliceStable(participants, func(a, b int) bool {
			return participants[a].Score > participants[b].Score
		})
	}
	return challenges, nil
}

// === Community ===

func (s *memberService) Feed(ctx context.Context) ([]domain.CommunityPost, error) {
	return s.store.CommunityPosts(ctx)
}

func (s *memberService) PostToFeed(ctx context.Context, memberID int, text string) error {
	if text == "" {
		return ErrValidation
	}
	member, err := s.member(ctx, memberID)
	if err != nil {
		return err
	}
	post := domain.CommunityPost{Author: member.Name, Text: text, PostedAt: time.Now()}
	return s.store.PrependPost(ctx, post)
}

// === Find a Trainer ===

func (s *memberService) Trainers(ctx context.Context, memberID int) ([]TrainerView, error) {
	member, err := s.member(ctx, memberID)
	if err != nil {
		return nil, err
	}
	trainers, err := s.store.Trainers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TrainerView, len(trainers))
	for i, t := range trainers {
		requested, err := s.store.HasRequest(ctx, t.ID, memberID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		out[i] = TrainerView{
			ID:             t.ID,
			Name:           t.Name,
			Specialization: t.Specialization,
			Assigned:       member.TrainerID != nil && *member.TrainerID == t.ID,
			Requested:      requested,
		}
	}
	return out, nil
}

func (s *memberService) RequestTrainer(ctx context.Context, memberID, trainerID int) error {
	member, err := s.member(ctx, memberID)
	if err != nil {
		return err
	}
	if member.TrainerID != nil && *member.TrainerID == trainerID {
		// Already assigned to this trainer: nothing to request.
		return nil
	}
	err = s.store.EnqueueRequest(ctx, trainerID, memberID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}

// === Announcements ===

func (s *memberService) Announcements(ctx context.Context) ([]domain.Announcement, error) {
	return s.store.Announcements(ctx)
}

func (s *memberService) mapLogErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrMemberNotFound
	}
	return err
}
