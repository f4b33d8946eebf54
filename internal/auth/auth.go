package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin     = "ADMIN"
	RoleEmployee  = "EMPLOYEE"
	RoleDashboard = "DASHBOARD"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// Key is used to store/retrieve a Claims value from a context.Context.
const Key ctxKey = 1

type Claims struct {
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.StandardClaims
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

type Auth struct {
	key []byte
}

func New(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// GenTokens creates an access/refresh token pair for the user.
func (a *Auth) GenTokens(userID int, role string) (access string, refresh string, err error) {
	access, err = a.sign(userID, role, TypeAccess, 6*time.Hour)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refresh, err = a.sign(userID, role, TypeRefresh, 30*24*time.Hour)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

func (a *Auth) sign(userID int, role, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserId: userID,
		Role:   role,
		Type:   tokenType,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// ValidateToken recreates the Claims that were used to generate a token.
// It fails if the token is expired or not signed by us.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateRefreshToken validates a refresh token specifically, so an access
// token cannot be replayed through the refresh endpoint.
func (a *Auth) ValidateRefreshToken(tokenStr string) (Claims, error) {
	claims, err := a.ValidateToken(tokenStr)
	if err != nil {
		return Claims{}, err
	}
	if claims.Type != TypeRefresh {
		return Claims{}, errors.New("not a refresh token")
	}
	return claims, nil
}
