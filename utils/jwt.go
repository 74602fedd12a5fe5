package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token tidak valid")

// ContextRequesterKey: key gin context tempat middleware auth menaruh subject token.
const ContextRequesterKey = "requester"

// GenerateToken membuat HS256 token untuk operator; subject dipakai sebagai requester default.
func GenerateToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("secret kosong")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"nama": subject,
		"iat":  now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func VerifyToken(secret []byte, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Subject membaca nama operator dari claims ("sub", lalu "nama").
func Subject(claims jwt.MapClaims) string {
	if s, ok := claims["sub"].(string); ok && s != "" {
		return s
	}
	if s, ok := claims["nama"].(string); ok {
		return s
	}
	return ""
}
