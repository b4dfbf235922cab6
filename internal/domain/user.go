package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

type User struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Email     string `gorm:"index;size:255;not null" json:"email"`
	FirstName string `gorm:"size:64" json:"firstName"`
	LastName  string `gorm:"size:64" json:"lastName"`
	// PasswordHash is bcrypt output, never the plaintext and never serialized.
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	// OTP is set at signup and cleared once the email is verified.
	// A user with a pending OTP cannot sign in.
	OTP          *int   `gorm:"column:otp" json:"-"`
	Role         string `gorm:"size:16;not null;default:user" json:"role"`
	ProfileImage string `gorm:"size:255" json:"profileImage"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Verified reports whether the signup OTP has been cleared.
func (u *User) Verified() bool { return u.OTP == nil }

// UserView is the sanitized shape every operation returns to clients:
// no hash, no OTP, no delete flag, no timestamps.
type UserView struct {
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func (u *User) View() UserView {
	return UserView{
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
	}
}

type UserRepository interface {
	Create(u *User) error
	// FindActiveByID excludes soft-deleted users; (nil, nil) when absent.
	FindActiveByID(id string) (*User, error)
	// FindActiveByEmail matches the normalized email; (nil, nil) when absent.
	FindActiveByEmail(email string) (*User, error)
	// UpdateFields applies a partial patch; (nil, nil) when no active user has id.
	UpdateFields(id string, fields map[string]any) (*User, error)
}
