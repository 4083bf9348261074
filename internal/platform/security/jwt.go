package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what an issued token carries about the account.
type Claims struct {
	UserID   string
	UserType string
}

type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token binding the account id and type, valid for the
// configured TTL from now.
func (j *JWTManager) Issue(userID, userType string) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"userId":   userID,
		"userType": userType,
		"iat":      now.Unix(),
		"exp":      now.Add(j.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Verify parses and validates a token, rejecting bad signatures, non-HMAC
// algorithms and expired tokens.
func (j *JWTManager) Verify(token string) (Claims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	var c Claims
	c.UserID, _ = mc["userId"].(string)
	c.UserType, _ = mc["userType"].(string)
	if c.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}
