package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"gymhub/internal/domain"
	"gymhub/internal/store"
)

// --- Error Definitions ---
var (
	// One generic error for unknown user and wrong password alike; the two
	// cases are deliberately indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrValidation           = errors.New("please fill all required fields and ensure passwords match")
	ErrDuplicateEmail       = errors.New("an account with this email already exists")
	// Username collision aborts registration outright; there is no
	// auto-disambiguation.
	ErrUsernameTaken   = errors.New("generated username already exists, please try a different name")
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// Identity describes the authenticated principal carried in the session
// token. Subject is the admin username or the trainer/member ID in decimal.
type Identity struct {
	Role    domain.Role `json:"role"`
	Subject string      `json:"subject"`
	Name    string      `json:"name"`
}

// RegisterInput carries the member self-registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	// Login authenticates a principal of the given role and returns a
	// signed session token with its identity.
	Login(ctx context.Context, role domain.Role, username, password string) (token string, identity Identity, err error)
	// Register creates a new member account with plan Bronze and a
	// 30-day membership.
	Register(ctx context.Context, input RegisterInput) (*domain.Member, error)
}

type authService struct {
	store         store.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(st store.Store, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		store:         st,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login looks the principal up in the table matching the role and compares
// the password against the stored hash.
func (s *authService) Login(ctx context.Context, role domain.Role, username, password string) (string, Identity, error) {
	if username == "" || password == "" {
		return "", Identity{}, ErrAuthenticationFailed
	}

	var identity Identity
	var hash string

	switch role {
	case domain.RoleAdmin:
		admin, err := s.store.AdminByUsername(ctx, username)
		if err != nil {
			return "", Identity{}, s.loginLookupError(err)
		}
		identity = Identity{Role: domain.RoleAdmin, Subject: admin.Username, Name: admin.Name}
		hash = admin.PasswordHash
	case domain.RoleTrainer:
		trainer, err := s.store.TrainerByUsername(ctx, username)
		if err != nil {
			return "", Identity{}, s.loginLookupError(err)
		}
		identity = Identity{Role: domain.RoleTrainer, Subject: strconv.Itoa(trainer.ID), Name: trainer.Name}
		hash = trainer.PasswordHash
	case domain.RoleMember:
		member, err := s.store.MemberByUsername(ctx, username)
		if err != nil {
			return "", Identity{}, s.loginLookupError(err)
		}
		identity = Identity{Role: domain.RoleMember, Subject: strconv.Itoa(member.ID), Name: member.Name}
		hash = member.PasswordHash
	default:
		return "", Identity{}, ErrAuthenticationFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", Identity{}, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(identity)
	if err != nil {
		return "", Identity{}, ErrTokenGeneration
	}
	return token, identity, nil
}

func (s *authService) loginLookupError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrAuthenticationFailed
	}
	return err
}

// Register handles member self-registration.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.Member, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.Password != input.ConfirmPassword {
		return nil, ErrValidation
	}

	username := GenerateUsername(input.Name)

	// Email collision is checked before the username so a duplicate email
	// never reports a username problem.
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
		Plan:         "Bronze",
		Status:       domain.StatusActive,
		JoinDate:     today,
		ExpiryDate:   today.AddDate(0, 0, 30),
	}

	id, err := s.store.InsertMember(ctx, member)
	if err != nil {
		return nil, err
	}
	member.ID = id
	member.PasswordHash = ""
	return &member, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	Subject string      `json:"uid"`
	Role    domain.Role `json:"role"`
	Name    string      `json:"name"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(identity Identity) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		Subject: identity.Subject,
		Role:    identity.Role,
		Name:    identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gymhub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// --- Shared helpers ---

// GenerateUsername derives a login name from a display name:
// lowercase first token plus the lowercase first character of the last
// token. "Priya Kumar" becomes "priyak"; a single-token name repeats its
// own first letter.
func GenerateUsername(name string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(tokens) == 0 {
		return ""
	}
	last := []rune(tokens[len(tokens)-1])
	return tokens[0] + string(last[0])
}

// AvatarURL returns the generated avatar for a member, seeded with the
// first token of the name.
func AvatarURL(name string) string {
	first := name
	if i := strings.IndexByte(name, ' '); i >= 0 {
		first = name[:i]
	}
	return fmt.Sprintf("https://api.dicebear.com/8.x/avataaars/svg?seed=%s", first)
}

// Today returns the current date at midnight UTC. Log entries and
// membership dates are day-granular.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
