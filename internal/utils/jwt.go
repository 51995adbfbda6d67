// internal/utils/jwt.go
package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

const jwtIssuer = "circularlabs-rfid"

type JWTClaims struct {
	MemberID           uint         `json:"member_id"`
	ClassificationCode string       `json:"classification_code"`
	Grade              models.Grade `json:"grade"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("circularlabs-secret-change-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateJWT(memberID uint, classificationCode string, grade models.Grade, ttlHours int) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		MemberID:           memberID,
		ClassificationCode: classificationCode,
		Grade:              grade,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
			Subject:   strconv.FormatUint(uint64(memberID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// IsTokenExpired reports whether err came from an expired token.
func IsTokenExpired(err error) bool {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors&jwt.ValidationErrorExpired != 0
	}
	return false
}
