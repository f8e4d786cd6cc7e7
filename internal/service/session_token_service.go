package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenService firma el id de sesion que viaja en la cookie.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// SessionClaims son los claims de la cookie de sesion.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

var (
	ErrSessionInvalid = errors.New("session token invalid")
	ErrSessionExpired = errors.New("session token expired")
)

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	if ttl <= 0 {
		ttl = defaultSurveyStateTTL
	}
	if strings.TrimSpace(secret) == "" {
		secret = uuid.NewString() + uuid.NewString()
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "fed-sentiment",
	}
}

// TTL devuelve la vida de una sesion.
func (s *SessionTokenService) TTL() time.Duration {
	return s.ttl
}

// Issue crea una sesion nueva y devuelve su id y token firmado.
func (s *SessionTokenService) Issue() (string, string, error) {
	sessionID := uuid.NewString()
	token, err := s.Sign(sessionID, time.Now().UTC())
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

func (s *SessionTokenService) Sign(sessionID string, now time.Time) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", ErrSessionInvalid
	}
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida el token y devuelve el id de sesion.
func (s *SessionTokenService) Parse(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrSessionInvalid
	}
	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrSessionExpired
		}
		return "", ErrSessionInvalid
	}
	if strings.TrimSpace(claims.SessionID) == "" || claims.Subject != claims.SessionID || claims.Issuer != s.issuer {
		return "", ErrSessionInvalid
	}
	return claims.SessionID, nil
}
