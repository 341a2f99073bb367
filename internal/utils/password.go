package utils

import (
    "crypto/subtle"

    "golang.org/x/crypto/bcrypt"
)

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyPlainPassword compares the shared admin secret in constant
// time.  Used when no bcrypt hash is configured.
func VerifyPlainPassword(want, got string) bool {
    return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// CheckAdminPassword picks the comparison: bcrypt when a hash is
// configured, constant-time plaintext otherwise.
func CheckAdminPassword(plainSecret, hashedSecret, candidate string) bool {
    if hashedSecret != "" {
        return VerifyPassword(hashedSecret, candidate)
    }
    if plainSecret == "" {
        return false
    }
    return VerifyPlainPassword(plainSecret, candidate)
}
