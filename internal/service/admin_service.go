package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gymhub/internal/domain"
	"gymhub/internal/storage"
	"gymhub/internal/store"
)

// --- Error Definitions ---
var (
	ErrAdminNotFound          = errors.New("admin not found")
	ErrMemberNotFound         = errors.New("member not found")
	ErrTrainerNotFound        = errors.New("trainer not found")
	ErrPlanNotFound           = errors.New("membership plan not found")
	ErrAnnouncementNotFound   = errors.New("announcement not found")
	ErrInvalidEquipmentStatus = errors.New("invalid equipment status")
	ErrPhotoUploadFailed      = errors.New("failed to store photo")
)

// ClassSummary is a class joined with its trainer's name for display.
type ClassSummary struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	TrainerID   int       `json:"trainerId"`
	TrainerName string    `json:"trainerName"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Capacity    int       `json:"capacity"`
	Booked      int       `json:"booked"`
}

// MemberEdit carries the editable columns of the bulk member editor. ID
// selects the row; username, password, photo and join date are immutable
// from this path.
type MemberEdit struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	DOB        time.Time           `json:"dob"`
	Address    string              `json:"address"`
	Plan       string              `json:"plan"`
	Status     domain.MemberStatus `json:"status"`
	ExpiryDate time.Time           `json:"expiryDate"`
	TrainerID  *int                `json:"trainerId,omitempty"`
}

// AddMemberInput carries the admin add-member form. Unlike
// self-registration, the admin picks the plan and sets a temporary
// password; expiry follows the plan duration.
type AddMemberInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Plan     string
}

// AddClassInput carries the add-class form.
type AddClassInput struct {
	Name      string
	TrainerID int
	Date      time.Time
	Time      string
	Capacity  int
}

// PaymentRecord is a ledger row joined with the member's name.
type PaymentRecord struct {
	domain.Payment
	MemberName string `json:"memberName"`
}

type AdminService interface {
	Profile(ctx context.Context) (domain.Admin, error)
	UpdateProfile(ctx context.Context, currentUsername, name, username string) (domain.Admin, error)

	Members(ctx context.Context) ([]domain.Member, error)
	// ReplaceMembers overwrites the member table from an edited copy.
	// Last writer wins entirely; there is no per-field diffing.
	ReplaceMembers(ctx context.Context, edits []MemberEdit) error
	AddMember(ctx context.Context, input AddMemberInput) (*domain.Member, error)
	SetMemberPhoto(ctx context.Context, memberID int, contentType string, data []byte) error

	Classes(ctx context.Context) ([]ClassSummary, error)
	AddClass(ctx context.Context, input AddClassInput) (*domain.GymClass, error)

	Trainers(ctx context.Context) ([]domain.Trainer, error)
	AddTrainer(ctx context.Context, name, specialization string) (*domain.Trainer, error)

	Equipment(ctx context.Context) ([]domain.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, name string, status domain.EquipmentStatus) (domain.Equipment, error)

	Payments(ctx context.Context) ([]PaymentRecord, error)

	Announcements(ctx context.Context) ([]domain.Announcement, error)
	PostAnnouncement(ctx context.Context, text string) (*domain.Announcement, error)
	EditAnnouncement(ctx context.Context, id int, text string) error
}

type adminService struct {
	store       store.Store
	fileStorage storage.FileStorage
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(st store.Store, fileStorage storage.FileStorage) AdminService {
	return &adminService{store: st, fileStorage: fileStorage}
}

// === Profile ===

func (s *adminService) Profile(ctx context.Context) (domain.Admin, error) {
	admin, err := s.store.Admin(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}
		return domain.Admin{}, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

func (s *adminService) UpdateProfile(ctx context.Context, currentUsername, name, username string) (domain.Admin, error) {
	if name == "" || username == "" {
		return domain.Admin{}, ErrValidation
	}
	var updated domain.Admin
	err := s.store.UpdateAdmin(ctx, currentUsername, func(a *domain.Admin) error {
		a.Name = name
		a.Username = username
		updated = *a
		return nil
	})
	if err != nil {
		// A stale session subject (the admin already renamed their login)
		// reads as a missing record, not an internal failure.
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}
		return domain.Admin{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

// === Member Management ===

func (s *adminService) Members(ctx context.Context) ([]domain.Member, error) {
	return s.store.Members(ctx)
}

// ReplaceMembers rebuilds the member table from the edited rows, keeping
// the immutable columns of each existing record. Every edited row must
// reference an existing member; the editor cannot create or delete rows.
func (s *adminService) ReplaceMembers(ctx context.Context, edits []MemberEdit) error {
	existing, err := s.store.Members(ctx)
	if err != nil {
		return err
	}
	byID := make(map[int]domain.Member, len(existing))
	for _, m := range existing {
		byID[m.ID] = m
	}

	replacement := make([]domain.Member, 0, len(edits))
	for _, edit := range edits {
		current, ok := byID[edit.ID]
		if !ok {
			return fmt.Errorf("%w: id %d", ErrMemberNotFound, edit.ID)
		}
		if _, err := s.store.PlanByName(ctx, edit.Plan); err != nil {
			return fmt.Errorf("%w: %q", ErrPlanNotFound, edit.Plan)
		}
		if edit.TrainerID != nil {
			if _, err := s.store.TrainerByID(ctx, *edit.TrainerID); err != nil {
				return fmt.Errorf("%w: id %d", ErrTrainerNotFound, *edit.TrainerID)
			}
		}
		current.Name = edit.Name
		current.Email = edit.Email
		current.Phone = edit.Phone
		current.DOB = edit.DOB
		current.Address = edit.Address
		current.Plan = edit.Plan
		current.Status = edit.Status
		current.ExpiryDate = edit.ExpiryDate
		current.TrainerID = edit.TrainerID
		replacement = append(replacement, current)
	}

	return s.store.ReplaceMembers(ctx, replacement)
}

func (s *adminService) AddMember(ctx context.Context, input AddMemberInput) (*domain.Member, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrValidation
	}
	plan, err := s.store.PlanByName(ctx, input.Plan)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	username := GenerateUsername(input.Name)
	if _, err := s.store.MemberByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.MemberByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	today := Today()
	member := domain.Member{
		Name:         input.Name,
		Username:     username,
		PasswordHash: string(hash),
		Email:        input.Email,
		Phone:        input.Phone,
		DOB:          time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
		Address:      "Bengaluru, Karnataka",
		PhotoURL:     AvatarURL(input.Name),
		Plan:         plan.Name,
		Status:       domain.StatusActive,
		JoinDate:     today,
		ExpiryDate:   today.AddDate(0, 0, plan.DurationDays),
	}

	id, err := s.store.InsertMember(ctx, member)
	if err != nil {
		return nil, err
	}
	member.ID = id
	member.PasswordHash = ""
	return &member, nil
}

// SetMemberPhoto stores an uploaded profile photo and records its object
// key on the member; the key shadows the avatar URL from then on.
func (s *adminService) SetMemberPhoto(ctx context.Context, memberID int, contentType string, data []byte) error {
	member, err := s.store.MemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
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

// === Class & Schedule Management ===

func (s *adminService) Classes(ctx context.Context) ([]ClassSummary, error) {
	classes, err := s.store.Classes(ctx)
	if err != nil {
		return nil, err
	}
	return s.summarizeClasses(ctx, classes)
}

func (s *adminService) AddClass(ctx context.Context, input AddClassInput) (*domain.GymClass, error) {
	if input.Name == "" || input.Time == "" || input.Capacity < 1 {
		return nil, ErrValidation
	}
	if _, err := s.store.TrainerByID(ctx, input.TrainerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	class := domain.GymClass{
		Name:      input.Name,
		TrainerID: input.TrainerID,
		Date:      input.Date,
		Time:      input.Time,
		Capacity:  input.Capacity,
		Booked:    []int{},
	}
	id, err := s.store.InsertClass(ctx, class)
	if err != nil {
		return nil, err
	}
	class.ID = id
	return &class, nil
}

func (s *adminService) summarizeClasses(ctx context.Context, classes []domain.GymClass) ([]ClassSummary, error) {
	trainers, err := s.store.Trainers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(trainers))
	for _, t := range trainers {
		names[t.ID] = t.Name
	}

	out := make([]ClassSummary, len(classes))
	for i, c := range classes {
		out[i] = ClassSummary{
			ID:          c.ID,
			Name:        c.Name,
			TrainerID:   c.TrainerID,
			TrainerName: names[c.TrainerID],
			Date:        c.Date,
			Time:        c.Time,
			Capacity:    c.Capacity,
			Booked:      len(c.Booked),
		}
	}
	return out, nil
}

// === Trainer Management ===

func (s *adminService) Trainers(ctx context.Context) ([]domain.Trainer, error) {
	trainers, err := s.store.Trainers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
	return trainers, nil
}

// AddTrainer creates a trainer account. The login name is the display name
// lowercased with spaces removed, and the password starts as "pass" until
// the trainer changes it.
func (s *adminService) AddTrainer(ctx context.Context, name, specialization string) (*domain.Trainer, error) {
	if name == "" || specialization == "" {
		return nil, ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}
	trainer := domain.Trainer{
		Name:           name,
		Specialization: specialization,
		Username:       strings.ReplaceAll(strings.ToLower(name), " ", ""),
		PasswordHash:   string(hash),
	}
	id, err := s.store.InsertTrainer(ctx, trainer)
	if err != nil {
		return nil, err
	}
	trainer.ID = id
	trainer.PasswordHash = ""
	return &trainer, nil
}

// === Equipment Management ===

func (s *adminService) Equipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.store.Equipment(ctx)
}

// UpdateEquipmentStatus validates the form and echoes the would-be record
// WITHOUT writing to the store. The original screen behaves exactly this
// way (reports success, persists nothing) and product intent for a real
// update is unconfirmed, so the stub is kept rather than silently turned
// into a working feature.
func (s *adminService) UpdateEquipmentStatus(_ context.Context, name string, status domain.EquipmentStatus) (domain.Equipment, error) {
	if name == "" {
		return domain.Equipment{}, ErrValidation
	}
	if !domain.ValidEquipmentStatus(status) {
		return domain.Equipment{}, ErrInvalidEquipmentStatus
	}
	return domain.Equipment{Name: name, Status: status}, nil
}

// === Billing ===

func (s *adminService) Payments(ctx context.Context) ([]PaymentRecord, error) {
	payments, err := s.store.Payments(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.store.Members(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	out := make([]PaymentRecord, len(payments))
	for i, p := range payments {
		name, ok := names[p.MemberID]
		if !ok {
			name = "Unknown"
		}
		out[i] = PaymentRecord{Payment: p, MemberName: name}
	}
	return out, nil
}

// === Announcements ===

func (s *adminService) Announcements(ctx context.Context) ([]domain.Announcement, error) {
	return s.store.Announcements(ctx)
}

func (s *adminService) PostAnnouncement(ctx context.Context, text string) (*domain.Announcement, error) {
	if text == "" {
		return nil, ErrValidation
	}
	a := domain.Announcement{Text: text, PostedAt: time.Now()}
	id, err := s.store.InsertAnnouncement(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	return &a, nil
}

// EditAnnouncement rewrites an announcement addressed by its stable ID.
func (s *adminService) EditAnnouncement(ctx context.Context, id int, text string) error {
	if text == "" {
		return ErrValidation
	}
	if err := s.store.UpdateAnnouncement(ctx, id, text); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return nil
}

// ProfilePhotoKey builds the object storage key for a member's profile
// photo.
func ProfilePhotoKey(memberID int, contentType string) string {
	return path.Join("photos", "profile", strconv.Itoa(memberID),
		fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension(contentType)))
}

func fileExtension(contentType string) string {
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return "bin"
}
