package store

import (
	"context"
	"sync"

	"gymhub/internal/domain"
)

// InMemory is the volatile record store. All tables live in process memory
// and reset to seed data on restart. A single RWMutex serializes every
// operation; this is the one synchronization point of the system.
type InMemory struct {
	mu sync.RWMutex

	admins        []domain.Admin
	trainers      []domain.Trainer
	members       []domain.Member
	plans         []domain.Plan
	payments      []domain.Payment
	classes       []domain.GymClass
	announcements []domain.Announcement // newest first
	library       []domain.WorkoutLibraryEntry
	posts         []domain.CommunityPost // newest first
	challenges    []domain.Challenge
	equipment     []domain.Equipment

	// Per-member log tables, keyed by member ID.
	workouts    map[int][]domain.WorkoutLogEntry
	nutrition   map[int][]domain.NutritionLogEntry
	bodyMetrics map[int][]domain.BodyMetricEntry
	photos      map[int][]domain.ProgressPhoto
	planEntries map[int][]domain.WorkoutPlanEntry
	badges      map[int][]string

	// Per-trainer pending request queues, keyed by trainer ID.
	requests map[int][]int
}

// NewInMemory returns an empty store. Production wiring uses Seed instead;
// the empty constructor exists for tests that need a clean slate.
func NewInMemory() *InMemory {
	return &InMemory{
		workouts:    make(map[int][]domain.WorkoutLogEntry),
		nutrition:   make(map[int][]domain.NutritionLogEntry),
		bodyMetrics: make(map[int][]domain.BodyMetricEntry),
		photos:      make(map[int][]domain.ProgressPhoto),
		planEntries: make(map[int][]domain.WorkoutPlanEntry),
		badges:      make(map[int][]string),
		requests:    make(map[int][]int),
	}
}

// --- internal id assignment ---

// nextID returns max(ids)+1, or base when the table is empty.
func nextID(ids []int, base int) int {
	if len(ids) == 0 {
		return base
	}
	max := ids[0]
	for _, id := range ids[1:] {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (s *InMemory) memberIDs() []int {
	ids := make([]int, len(s.members))
	for i, m := range s.members {
		ids[i] = m.ID
	}
	return ids
}

func (s *InMemory) trainerIDs() []int {
	ids := make([]int, len(s.trainers))
	for i, t := range s.trainers {
		ids[i] = t.ID
	}
	return ids
}

func (s *InMemory) classIDs() []int {
	ids := make([]int, len(s.classes))
	for i, c := range s.classes {
		ids[i] = c.ID
	}
	return ids
}

func (s *InMemory) announcementIDs() []int {
	ids := make([]int, len(s.announcements))
	for i, a := range s.announcements {
		ids[i] = a.ID
	}
	return ids
}

// --- copy helpers ---
// Records are returned by value so callers never alias store internals.
// Members carry a pointer (TrainerID) and classes a slice (Booked), so
// those need an explicit deep copy.

func cloneMember(m domain.Member) domain.Member {
	out := m
	if m.TrainerID != nil {
		id := *m.TrainerID
		out.TrainerID = &id
	}
	return out
}

func cloneMembers(in []domain.Member) []domain.Member {
	out := make([]domain.Member, len(in))
	for i, m := range in {
		out[i] = cloneMember(m)
	}
	return out
}

func cloneClass(c domain.GymClass) domain.GymClass {
	out := c
	out.Booked = append([]int(nil), c.Booked...)
	return out
}

func cloneChallenge(c domain.Challenge) domain.Challenge {
	out := c
	out.Participants = append([]domain.ChallengeParticipant(nil), c.Participants...)
	return out
}

// --- AdminStore ---

func (s *InMemory) Admin(_ context.Context) (domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.admins) == 0 {
		return domain.Admin{}, ErrNotFound
	}
	return s.admins[0], nil
}

func (s *InMemory) AdminByUsername(_ context.Context, username string) (domain.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return domain.Admin{}, ErrNotFound
}

func (s *InMemory) UpdateAdmin(_ context.Context, username string, mutate func(*domain.Admin) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].Username == username {
			updated := s.admins[i]
			if err := mutate(&updated); err != nil {
				return err
			}
			s.admins[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

// --- MemberStore ---

func (s *InMemory) Members(_ context.Context) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMembers(s.members), nil
}

func (s *InMemory) MemberByID(_ context.Context, id int) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return domain.Member{}, ErrNotFound
}

func (s *InMemory) MemberByUsername(_ context.Context, username string) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Username == username {
			return cloneMember(m), nil
		}
	}
	return domain.Member{}, ErrNotFound
}

func (s *InMemory) MemberByEmail(_ context.Context, email string) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Email == email {
			return cloneMember(m), nil
		}
	}
	return domain.Member{}, ErrNotFound
}

func (s *InMemory) InsertMember(_ context.Context, m domain.Member) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = nextID(s.memberIDs(), MemberIDBase)
	s.members = append(s.members, cloneMember(m))
	// Every per-member log table starts out empty for a new member.
	s.workouts[m.ID] = []domain.WorkoutLogEntry{}
	s.nutrition[m.ID] = []domain.NutritionLogEntry{}
	s.bodyMetrics[m.ID] = []domain.BodyMetricEntry{}
	s.photos[m.ID] = []domain.ProgressPhoto{}
	s.planEntries[m.ID] = []domain.WorkoutPlanEntry{}
	s.badges[m.ID] = []string{}
	return m.ID, nil
}

func (s *InMemory) UpdateMember(_ context.Context, id int, mutate func(*domain.Member) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			updated := cloneMember(s.members[i])
			if err := mutate(&updated); err != nil {
				return err
			}
			s.members[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemory) ReplaceMembers(_ context.Context, members []domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = cloneMembers(members)
	return nil
}

// --- TrainerStore ---

func (s *InMemory) Trainers(_ context.Context) ([]domain.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Trainer(nil), s.trainers...), nil
}

func (s *InMemory) TrainerByID(_ context.Context, id int) (domain.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trainers {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trainer{}, ErrNotFound
}

func (s *InMemory) TrainerByUsername(_ context.Context, username string) (domain.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trainers {
		if t.Username == username {
			return t, nil
		}
	}
	return domain.Trainer{}, ErrNotFound
}

func (s *InMemory) InsertTrainer(_ context.Context, t domain.Trainer) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = nextID(s.trainerIDs(), TrainerIDBase)
	s.trainers = append(s.trainers, t)
	s.requests[t.ID] = []int{}
	return t.ID, nil
}

func (s *InMemory) UpdateTrainer(_ context.Context, id int, mutate func(*domain.Trainer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trainers {
		if s.trainers[i].ID == id {
			updated := s.trainers[i]
			if err := mutate(&updated); err != nil {
				return err
			}
			s.trainers[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

// --- ClassStore ---

func (s *InMemory) Classes(_ context.Context) ([]domain.GymClass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.GymClass, len(s.classes))
	for i, c := range s.classes {
		out[i] = cloneClass(c)
	}
	return out, nil
}

func (s *InMemory) ClassByID(_ context.Context, id int) (domain.GymClass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.classes {
		if c.ID == id {
			return cloneClass(c), nil
		}
	}
	return domain.GymClass{}, ErrNotFound
}

func (s *InMemory) InsertClass(_ context.Context, c domain.GymClass) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = nextID(s.classIDs(), ClassIDBase)
	if c.Booked == nil {
		c.Booked = []int{}
	}
	s.classes = append(s.classes, cloneClass(c))
	return c.ID, nil
}

func (s *InMemory) UpdateClass(_ context.Context, id int, mutate func(*domain.GymClass) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.classes {
		if s.classes[i].ID == id {
			updated := cloneClass(s.classes[i])
			if err := mutate(&updated); err != nil {
				return err
			}
			s.classes[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

// --- PlanStore ---

func (s *InMemory) Plans(_ context.Context) ([]domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Plan(nil), s.plans...), nil
}

func (s *InMemory) PlanByName(_ context.Context, name string) (domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Plan{}, ErrNotFound
}

// --- PaymentStore ---

func (s *InMemory) Payments(_ context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Payment(nil), s.payments...), nil
}

func (s *InMemory) AppendPayment(_ context.Context, p domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
	return nil
}

// --- AnnouncementStore ---

func (s *InMemory) Announcements(_ context.Context) ([]domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Announcement(nil), s.announcements...), nil
}

func (s *InMemory) InsertAnnouncement(_ context.Context, a domain.Announcement) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = nextID(s.announcementIDs(), AnnouncementIDBase)
	s.announcements = append([]domain.Announcement{a}, s.announcements...)
	return a.ID, nil
}

func (s *InMemory) UpdateAnnouncement(_ context.Context, id int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].Text = text
			return nil
		}
	}
	return ErrNotFound
}

// --- WorkoutLibraryStore ---

func (s *InMemory) WorkoutLibrary(_ context.Context) ([]domain.WorkoutLibraryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WorkoutLibraryEntry(nil), s.library...), nil
}

func (s *InMemory) AppendLibraryEntry(_ context.Context, e domain.WorkoutLibraryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.library = append(s.library, e)
	return nil
}

// --- MemberLogStore ---

func (s *InMemory) WorkoutLog(_ context.Context, memberID int) ([]domain.WorkoutLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.workouts[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]domain.WorkoutLogEntry(nil), log...), nil
}

func (s *InMemory) AppendWorkout(_ context.Context, memberID int, e domain.WorkoutLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workouts[memberID]; !ok {
		return ErrNotFound
	}
	s.workouts[memberID] = append(s.workouts[memberID], e)
	return nil
}

func (s *InMemory) NutritionLog(_ context.Context, memberID int) ([]domain.NutritionLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.nutrition[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]domain.NutritionLogEntry(nil), log...), nil
}

func (s *InMemory) AppendMeal(_ context.Context, memberID int, e domain.NutritionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nutrition[memberID]; !ok {
		return ErrNotFound
	}
	s.nutrition[memberID] = append(s.nutrition[memberID], e)
	return nil
}

func (s *InMemory) BodyMetrics(_ context.Context, memberID int) ([]domain.BodyMetricEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.bodyMetrics[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]domain.BodyMetricEntry(nil), log...), nil
}

func (s *InMemory) AppendBodyMetric(_ context.Context, memberID int, e domain.BodyMetricEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bodyMetrics[memberID]; !ok {
		return ErrNotFound
	}
	s.bodyMetrics[memberID] = append(s.bodyMetrics[memberID], e)
	return nil
}

func (s *InMemory) ProgressPhotos(_ context.Context, memberID int) ([]domain.ProgressPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.photos[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]domain.ProgressPhoto(nil), log...), nil
}

func (s *InMemory) AppendProgressPhoto(_ context.Context, memberID int, p domain.ProgressPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[memberID]; !ok {
		return ErrNotFound
	}
	s.photos[memberID] = append(s.photos[memberID], p)
	return nil
}

func (s *InMemory) PlanEntries(_ context.Context, memberID int) ([]domain.WorkoutPlanEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.planEntries[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]domain.WorkoutPlanEntry(nil), entries...), nil
}

func (s *InMemory) AppendPlanEntry(_ context.Context, memberID int, e domain.WorkoutPlanEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.planEntries[memberID]; !ok {
		return ErrNotFound
	}
	s.planEntries[memberID] = append(s.planEntries[memberID], e)
	return nil
}

func (s *InMemory) Badges(_ context.Context, memberID int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	badges, ok := s.badges[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), badges...), nil
}

// --- CommunityStore ---

func (s *InMemory) CommunityPosts(_ context.Context) ([]domain.CommunityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CommunityPost(nil), s.posts...), nil
}

func (s *InMemory) PrependPost(_ context.Context, p domain.CommunityPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]domain.CommunityPost{p}, s.posts...)
	return nil
}

// --- ChallengeStore ---

func (s *InMemory) Challenges(_ context.Context) ([]domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Challenge, len(s.challenges))
	for i, c := range s.challenges {
		out[i] = cloneChallenge(c)
	}
	return out, nil
}

// --- EquipmentStore ---

func (s *InMemory) Equipment(_ context.Context) ([]domain.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Equipment(nil), s.equipment...), nil
}

// --- TrainerRequestStore ---

func (s *InMemory) PendingRequests(_ context.Context, trainerID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	queue, ok := s.requests[trainerID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]int(nil), queue...), nil
}

func (s *InMemory) HasRequest(_ context.Context, trainerID, memberID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	queue, ok := s.requests[trainerID]
	if !ok {
		return false, ErrNotFound
	}
	for _, id := range queue {
		if id == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemory) EnqueueRequest(_ context.Context, trainerID, memberID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue, ok := s.requests[trainerID]
	if !ok {
		return ErrNotFound
	}
	for _, id := range queue {
		if id == memberID {
			return nil // already queued
		}
	}
	s.requests[trainerID] = append(queue, memberID)
	return nil
}

func (s *InMemory) RemoveRequest(_ context.Context, trainerID, memberID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue, ok := s.requests[trainerID]
	if !ok {
		return false, ErrNotFound
	}
	for i, id := range queue {
		if id == memberID {
			s.requests[trainerID] = append(queue[:i], queue[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
