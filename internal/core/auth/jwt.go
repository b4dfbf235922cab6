package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Token scopes. A reset token only works for the password-reset
// operation; the access gate rejects it everywhere else.
const (
	ScopeSession = "session"
	ScopeReset   = "reset"
)

type Claims struct {
	UID   string `json:"uid"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret     []byte
	Issuer     string
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

// IssueSession mints a bearer token for general API access.
func (j *JWTer) IssueSession(uid string) (string, error) {
	return j.issue(uid, ScopeSession, j.SessionTTL)
}

// IssueReset mints a short-lived token scoped to password reset only.
func (j *JWTer) IssueReset(uid string) (string, error) {
	return j.issue(uid, ScopeReset, j.ResetTTL)
}

func (j *JWTer) issue(uid, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:   uid,
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse validates signature and expiry and returns the claims.
// Expired tokens come back as ErrTokenExpired, everything else
// malformed or forged as ErrTokenInvalid.
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, ErrTokenInvalid
}
