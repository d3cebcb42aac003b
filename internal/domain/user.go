package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// MemberStatus tracks the membership state. It is set explicitly at
// creation or by the admin editor; it is never derived from ExpiryDate.
type MemberStatus string

const (
	StatusActive  MemberStatus = "Active"
	StatusExpired MemberStatus = "Expired"
)

// Admin represents the gym administrator account. The store permits more
// than one record, but the system expects exactly one.
type Admin struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this via JSON
	Name         string `json:"name"`
}

// Trainer represents a coaching staff account. Trainer IDs are assigned
// from 101 upwards and trainers are never deleted.
type Trainer struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Username       string `json:"username"`
	PasswordHash   string `json:"-"`
}

// Member represents a gym member.
type Member struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Email        string       `json:"email"` // Unique across members
	Phone        string       `json:"phone"`
	DOB          time.Time    `json:"dob"`
	Address      string       `json:"address"`
	PhotoURL     string       `json:"photoUrl"`
	// Key of the uploaded photo in object storage. Takes precedence over
	// PhotoURL when present.
	UploadedPhotoKey string       `json:"-"`
	Plan             string       `json:"plan"` // Must be a key of the plan catalog
	Status           MemberStatus `json:"status"`
	JoinDate         time.Time    `json:"joinDate"`
	ExpiryDate       time.Time    `json:"expiryDate"`
	// Assigned trainer. Pointer because "unassigned" is a valid state.
	TrainerID *int `json:"trainerId,omitempty"`
}

// HasUploadedPhoto reports whether an uploaded photo should shadow the
// avatar URL.
func (m *Member) HasUploadedPhoto() bool {
	return m.UploadedPhotoKey != ""
}
