package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Password length bounds. MaxPasswordLength is bcrypt's input limit;
// the minimum is configurable and defaults to DefaultMinPasswordLength.
const (
	DefaultMinPasswordLength = 6
	MaxPasswordLength        = 72
	NameMaxLength            = 100
)

// Role is the authorization role attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

var validate = validator.New()

// User represents a registered user of the application.
// It contains essential user information and authentication details.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, only set until the store hashes it
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Identity is the authenticated user resolved from a request's token.
// It never carries credentials.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// and looked up in this form, which makes uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a new User with the "user" role.
// The email is normalized and the name trimmed before validation.
//
// NOTE: the password is kept in plaintext on the returned value; the store
// hashes it on Create and never persists the plaintext.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Identity returns the credential-free view of u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Validate checks if the User has valid data.
// Returns ValidationErrors listing every field that failed.
func (u *User) Validate() error {
	var errs ValidationErrors

	if u.ID == uuid.Nil {
		errs = append(errs, NewValidationError("id", "is required", ErrInvalidID))
	}

	if u.Name == "" {
		errs = append(errs, NewValidationError("name", "is required", nil))
	} else if utf8.RuneCountInString(u.Name) > NameMaxLength {
		errs = append(errs, NewValidationError("name", "must be at most 100 characters", nil))
	}

	if u.Email == "" {
		errs = append(errs, NewValidationError("email", "is required", nil))
	} else if validate.Var(u.Email, "email") != nil {
		errs = append(errs, NewValidationError("email", "must be a valid email address", nil))
	}

	// A user read back from the store has only the hash; a user being
	// registered or changing password has the plaintext.
	if u.Password != "" {
		if len(u.Password) > MaxPasswordLength {
			errs = append(errs, NewValidationError("password", "must be at most 72 characters", nil))
		}
	} else if u.HashedPassword == "" {
		errs = append(errs, NewValidationError("password", "is required", nil))
	}

	if !u.Role.IsValid() {
		errs = append(errs, NewValidationError("role", "must be user or admin", nil))
	}

	return errs.orNil()
}

// ValidatePassword checks a plaintext password against the length bounds.
func ValidatePassword(password string, minLength int) error {
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	switch {
	case password == "":
		return NewValidationError("password", "is required", nil)
	case utf8.RuneCountInString(password) < minLength:
		return NewValidationError("password", "is too short", nil)
	case len(password) > MaxPasswordLength:
		return NewValidationError("password", "must be at most 72 characters", nil)
	}
	return nil
}
