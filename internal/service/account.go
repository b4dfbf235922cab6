package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"go-shop-admin/internal/core/auth"
	"go-shop-admin/internal/domain"
	"go-shop-admin/internal/mail"
	"go-shop-admin/pkg/utils"
)

// MailQueue is the fire-and-forget side of the mail dispatcher. Account
// operations never wait on delivery; failures belong to the worker.
type MailQueue interface {
	Enqueue(msg mail.Message)
}

// AccountService drives the user lifecycle:
// signup (unverified, OTP set) → verified (OTP cleared) → active signin.
type AccountService struct {
	users        domain.UserRepository
	jwter        *auth.JWTer
	mailq        MailQueue
	log          *zap.Logger
	resetURLBase string
}

func NewAccountService(users domain.UserRepository, jwter *auth.JWTer, mailq MailQueue, log *zap.Logger, resetURLBase string) *AccountService {
	return &AccountService{
		users:        users,
		jwter:        jwter,
		mailq:        mailq,
		log:          log,
		resetURLBase: resetURLBase,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newOTP returns a uniform 4-digit code in [1000, 9999].
func newOTP() int { return rand.IntN(9000) + 1000 }

type SignupInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Role         string
	ProfileImage string
}

func (s *AccountService) Signup(in SignupInput) (domain.UserView, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return domain.UserView{}, ErrMissingField
	}
	email := normalizeEmail(in.Email)

	existing, err := s.users.FindActiveByEmail(email)
	if err != nil {
		return domain.UserView{}, err
	}
	if existing != nil {
		return domain.UserView{}, ErrDuplicateEmail
	}

	role := in.Role
	switch role {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleModerator:
	default:
		role = domain.RoleUser
	}

	otp := newOTP()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: utils.HashPassword(in.Password),
		OTP:          &otp,
		Role:         role,
		ProfileImage: in.ProfileImage,
	}
	if err := s.users.Create(u); err != nil {
		return domain.UserView{}, err
	}

	s.mailq.Enqueue(mail.Message{
		To:      email,
		Subject: "Email Verification",
		Body:    fmt.Sprintf("Your OTP for email verification is %d.", otp),
	})
	s.log.Info("user signed up", zap.String("uid", u.ID))
	return u.View(), nil
}

func (s *AccountService) VerifyEmail(email, otp string) error {
	u, err := s.users.FindActiveByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if u.OTP == nil || fmt.Sprint(*u.OTP) != strings.TrimSpace(otp) {
		return ErrInvalidOTP
	}
	_, err = s.users.UpdateFields(u.ID, map[string]any{"otp": nil})
	return err
}

// Signin verifies credentials and issues a session token. An unverified
// account short-circuits with ErrEmailUnverified before the password is
// even looked at; all other failures collapse into the uniform
// ErrAuthFailed so callers cannot probe which emails exist.
func (s *AccountService) Signin(email, password string) (domain.UserView, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.UserView{}, "", ErrMissingField
	}
	u, err := s.users.FindActiveByEmail(normalizeEmail(email))
	if err != nil {
		return domain.UserView{}, "", err
	}
	if u != nil && !u.Verified() {
		return domain.UserView{}, "", ErrEmailUnverified
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return domain.UserView{}, "", ErrAuthFailed
	}

	token, err := s.jwter.IssueSession(u.ID)
	if err != nil {
		return domain.UserView{}, "", err
	}
	return u.View(), token, nil
}

func (s *AccountService) ProfileDetails(u *domain.User) domain.UserView {
	return u.View()
}

type EditProfileInput struct {
	FirstName    string
	LastName     string
	Email        string
	ProfileImage string
}

// EditProfile applies only the provided, non-empty fields.
func (s *AccountService) EditProfile(u *domain.User, in EditProfileInput) (domain.UserView, error) {
	patch := map[string]any{}
	if v := strings.TrimSpace(in.FirstName); v != "" {
		patch["first_name"] = v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		patch["last_name"] = v
	}
	if v := normalizeEmail(in.Email); v != "" && v != u.Email {
		other, err := s.users.FindActiveByEmail(v)
		if err != nil {
			return domain.UserView{}, err
		}
		if other != nil {
			return domain.UserView{}, ErrDuplicateEmail
		}
		patch["email"] = v
	}
	if in.ProfileImage != "" {
		patch["profile_image"] = in.ProfileImage
	}
	if len(patch) == 0 {
		return domain.UserView{}, ErrNoChanges
	}

	updated, err := s.users.UpdateFields(u.ID, patch)
	if err != nil {
		return domain.UserView{}, err
	}
	if updated == nil {
		return domain.UserView{}, ErrUserNotFound
	}
	return updated.View(), nil
}

// ForgotPassword issues a reset token and mails the reset link. Unknown
// emails return ErrUserNotFound, a known enumeration leak kept for
// compatibility. Mail delivery failure is the dispatcher's problem, not
// the caller's.
func (s *AccountService) ForgotPassword(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrMissingField
	}
	u, err := s.users.FindActiveByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	token, err := s.jwter.IssueReset(u.ID)
	if err != nil {
		return err
	}
	s.mailq.Enqueue(mail.Message{
		To:      u.Email,
		Subject: "Reset Password",
		Body:    fmt.Sprintf("Use the link below to reset your password. It expires in %d minutes.\n\n%s%s", int(s.jwter.ResetTTL.Minutes()), s.resetURLBase, token),
	})
	return nil
}

// ResetPassword consumes a reset-scoped token. Session tokens are
// rejected here just as reset tokens are rejected by the access gate.
func (s *AccountService) ResetPassword(token, newPassword, confirmPassword string) error {
	if token == "" || newPassword == "" || confirmPassword == "" {
		return ErrMissingField
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	claims, err := s.jwter.Parse(token)
	if err != nil {
		return err
	}
	if claims.Scope != auth.ScopeReset {
		return auth.ErrTokenInvalid
	}

	u, err := s.users.FindActiveByID(claims.UID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	_, err = s.users.UpdateFields(u.ID, map[string]any{
		"password_hash": utils.HashPassword(newPassword),
	})
	return err
}
