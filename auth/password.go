package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt digest of the plaintext password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// ComparePassword reports whether the plaintext password matches the
// stored bcrypt digest.
func ComparePassword(digest string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
