package utils

import (
	"encoding/json"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ParseSessionToken reads the claims of a bearer token without checking its
// signature, only the backend holds the key. Opaque tokens give a session
// without expiry.
func ParseSessionToken(token string) (*models.SessionInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	info := &models.SessionInfo{Token: token}
	if strings.Count(token, ".") != 2 {
		return info, nil
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	switch exp := claims["exp"].(type) {
	case float64:
		info.ExpiresAt = time.Unix(int64(exp), 0)
	case json.Number:
		seconds, err := exp.Int64()
		if err != nil {
			return nil, exceptions.ErrTokenInvalidOrExpired(err)
		}
		info.ExpiresAt = time.Unix(seconds, 0)
	}

	if subject, ok := claims["sub"].(string); ok {
		info.Subject = subject
	} else if username, ok := claims["username"].(string); ok {
		info.Subject = username
	}

	return info, nil
}
