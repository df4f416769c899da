package auth

import (
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// Claims is the signed identity reference carried by an access token.
// It intentionally holds only the user id and username: every request
// re-resolves the full profile from the user collection, so a token
// never serves as a cache of profile fields.
type Claims struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// SignToken issues an HS256 access token for the given user id and
// username.
func SignToken(id string, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Id:       id,
		Username: username,
	})
	signed, err := token.SignedString(secret())
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}
	return signed, nil
}

// VerifyToken parses and validates an access token and returns its
// claims. Any tampering, wrong signing method or malformed token
// yields an error.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "verify access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	return claims, nil
}
