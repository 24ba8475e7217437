// Package auth verifies the bearer tokens issued by the portal's login service and
// turns them into a Caller. Credential checks and token issuance for real users live
// outside this service; IssueToken exists for operators and tests.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// Caller is the identity every engine operation runs as.
type Caller struct {
	UserID uint
	Role   Role
	// Course is the faculty member's single assigned course label.
	Course string
}

func (c Caller) IsAdmin() bool   { return c.Role == RoleAdmin }
func (c Caller) IsFaculty() bool { return c.Role == RoleFaculty }
func (c Caller) IsStudent() bool { return c.Role == RoleStudent }

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Role   Role   `json:"role"`
	Course string `json:"course,omitempty"`
	jwt.RegisteredClaims
}

type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(tokenString string) (Caller, error) {
	if len(v.secret) == 0 {
		return Caller{}, ErrInvalidToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Caller{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return Caller{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return Caller{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return Caller{UserID: uint(userID), Role: claims.Role, Course: claims.Course}, nil
}

// IssueToken signs a token for c that expires after ttl.
func (v *TokenVerifier) IssueToken(c Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:   c.Role,
		Course: c.Course,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(c.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
