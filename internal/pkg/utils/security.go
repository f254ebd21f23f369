package utils

import (
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateClientJWT signs the client id carried by the client cookie.
func GenerateClientJWT(clientID, secret string, expiryInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.ClientTokenClaimClientID: clientID,
		constvars.ClientTokenClaimExpiry:   time.Now().Add(time.Duration(expiryInHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseClientJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrClientTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if clientID, ok := claims[constvars.ClientTokenClaimClientID].(string); ok && clientID != "" {
			return clientID, nil
		}
	}

	return "", exceptions.ErrClientTokenInvalid(nil)
}

// ClientCookieOptions describes how the signed client cookie is issued.
type ClientCookieOptions struct {
	Name          string
	Secret        string
	ExpiryInHours int
	Secure        bool
}

// SetClientCookie signs clientID and writes it as the client cookie.
func SetClientCookie(w http.ResponseWriter, clientID string, opts ClientCookieOptions) error {
	token, err := GenerateClientJWT(clientID, opts.Secret, opts.ExpiryInHours)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(opts.ExpiryInHours) * time.Hour),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
