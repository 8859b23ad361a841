package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/constants"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carried by both token kinds. Subject is the account id.
type Claims struct {
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// AccountID parses the subject back into an account id.
func (c *Claims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject claim")
	}
	return uint(id), nil
}

// JWTService issues and verifies signed tokens. It is stateless: access
// tokens are self-verifying, refresh tokens are additionally persisted by
// the caller.
type JWTService struct {
	secret           []byte
	method           jwt.SigningMethod
	accessExpMinutes int
}

// NewJWTService builds a token issuer. Only HMAC algorithms are supported;
// an unknown algorithm name falls back to HS256.
func NewJWTService(secret, algorithm string, accessExpMinutes int) *JWTService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &JWTService{
		secret:           []byte(secret),
		method:           method,
		accessExpMinutes: accessExpMinutes,
	}
}

// IssueAccessToken mints a short-lived stateless access token.
func (s *JWTService) IssueAccessToken(accountID uint) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	return s.sign(accountID, TokenTypeAccess, now, exp)
}

// IssueRefreshToken mints a refresh token with the fixed 7-day lifetime and
// returns its expiry for persistence.
func (s *JWTService) IssueRefreshToken(accountID uint) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(constants.RefreshTokenTTLDays * 24 * time.Hour)
	token, err := s.sign(accountID, TokenTypeRefresh, now, exp)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *JWTService) sign(accountID uint, kind TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify decodes and checks signature and expiry. All failure modes
// (bad signature, expired, malformed) collapse into a single error so
// callers cannot distinguish them.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// VerifyAccessToken checks the token and returns the account id when it is
// a valid access token.
func (s *JWTService) VerifyAccessToken(tokenString string) (uint, error) {
	return s.verifyOfType(tokenString, TokenTypeAccess)
}

// VerifyRefreshToken checks the token and returns the account id when it is
// a valid refresh token. Persistence state is checked separately.
func (s *JWTService) VerifyRefreshToken(tokenString string) (uint, error) {
	return s.verifyOfType(tokenString, TokenTypeRefresh)
}

func (s *JWTService) verifyOfType(tokenString string, kind TokenType) (uint, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return 0, err
	}
	if claims.TokenType != kind {
		return 0, fmt.Errorf("invalid token")
	}
	id, err := claims.AccountID()
	if err != nil {
		return 0, fmt.Errorf("invalid token")
	}
	return id, nil
}

// AccessExpMinutes returns the access token lifetime in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
