package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Wizz677/applysmart/internal/models"
)

// Validity is the fixed session window. There is no refresh or rotation; an
// expired token means the caller logs in again.
const Validity = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature, garbage
// payload, unknown role, expiry. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Identity is the only information trusted from inside a session token.
type Identity struct {
	UserID uint
	Role   models.Role
}

type claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed session tokens. It is transport-agnostic;
// cookie handling lives in the auth package.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Issue signs a token carrying the identity, valid for the full window from
// now.
func (c *Codec) Issue(id Identity) (string, error) {
	now := c.now()
	cl := claims{
		UserID: id.UserID,
		Role:   string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
}

// Verify parses and checks a raw token. Any mutation of payload or signature,
// and any token past its window, yields ErrInvalidToken. Malformed input
// never panics.
func (c *Codec) Verify(raw string) (Identity, error) {
	var cl claims
	tok, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	role, ok := models.ParseRole(cl.Role)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: cl.UserID, Role: role}, nil
}
