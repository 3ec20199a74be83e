package helper

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SignedDetails struct {
	Uid  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var secretKey = []byte(os.Getenv("SECRET_KEY"))

// GenerateAllTokens creates the access and refresh JWT pair for a principal.
func GenerateAllTokens(uid, role string) (signedToken string, signedRefreshToken string, err error) {
	claims := &SignedDetails{
		Uid:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	refreshClaims := &SignedDetails{
		Uid:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(168 * time.Hour)),
		},
	}

	signedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}

	signedRefreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}

	return signedToken, signedRefreshToken, nil
}

// ValidateToken checks that a JWT is valid and not expired.
func ValidateToken(signedToken string) (*SignedDetails, *AppError) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
	)
	if err != nil {
		return nil, NewUnauthenticated("token parsing error: " + err.Error())
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, NewUnauthenticated("the token is invalid")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, NewUnauthenticated("token is expired")
	}

	return claims, nil
}
