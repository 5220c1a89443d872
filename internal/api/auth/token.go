package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// GenerateAccessToken issues a signed HS256 token whose subject is the user
// id and whose expiry is now + the configured lifetime.
func GenerateAccessToken(userID string, jwtCfg config.JWTConfig) (string, error) {
	if jwtCfg.SecretKey == "" {
		return "", errors.New("JWT secret key is not configured")
	}

	now := time.Now()
	claims := types.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(jwtCfg.ExpirationHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtCfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken checks the signature and expiry of a token and returns
// its subject. Expired tokens fail with types.ErrTokenExpired; any other
// failure (bad signature, malformed payload, wrong algorithm, issuer
// mismatch, empty subject) fails with types.ErrTokenInvalid.
func VerifyAccessToken(tokenString string, jwtCfg config.JWTConfig) (string, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtCfg.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %v", types.ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %v", types.ErrTokenInvalid, err)
	}

	if !token.Valid {
		return "", types.ErrTokenInvalid
	}
	if jwtCfg.Issuer != "" && claims.Issuer != jwtCfg.Issuer {
		return "", fmt.Errorf("%w: issuer mismatch", types.ErrTokenInvalid)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", types.ErrTokenInvalid)
	}

	return claims.Subject, nil
}
