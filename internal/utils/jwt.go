package utils // package utils provides helpers for session tokens and password checks

import (
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// RoleAdmin is the role claim carried by admin session tokens.  There
// is a single shared admin principal; visitors carry no token at all.
const RoleAdmin = "ADMIN"

// SessionToken is a signed JWT session along with its expiry.  The
// token is sent in the Authorization header on admin requests and
// replaces the old client-side "isAdmin" storage flag with an explicit
// login/logout transition.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for an admin session.
// Claims: sub (fixed "admin"), role, exp and iat.
func NewSessionToken(secret string, ttlMin int) (SessionToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  "admin",
        "role": RoleAdmin,
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}
