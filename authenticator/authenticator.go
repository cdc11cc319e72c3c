package authenticator

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by Login on a wrong username/password pair.
var ErrBadCredentials = errors.New("bad credentials")

// ErrInvalidToken is returned by Verify for malformed or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an issued admin token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator checks the operator-configured admin credentials and
// issues/verifies HS256-signed bearer tokens.
type Authenticator struct {
	adminUser     string
	adminPass     string
	adminPassHash string
	secret        []byte
	tokenTTL      time.Duration
}

// Config holds the authenticator settings. Either AdminPass or
// AdminPassHash (a bcrypt hash, preferred) must be set.
type Config struct {
	AdminUser     string
	AdminPass     string
	AdminPassHash string
	Secret        string
	TokenTTL      time.Duration
}

// New creates an authenticator from operator configuration.
func New(cfg Config) (*Authenticator, error) {
	if cfg.AdminUser == "" {
		return nil, errors.New("admin username is not configured")
	}
	if cfg.AdminPass == "" && cfg.AdminPassHash == "" {
		return nil, errors.New("admin password is not configured")
	}
	if cfg.Secret == "" {
		return nil, errors.New("token signing secret is not configured")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	return &Authenticator{
		adminUser:     cfg.AdminUser,
		adminPass:     cfg.AdminPass,
		adminPassHash: cfg.AdminPassHash,
		secret:        []byte(cfg.Secret),
		tokenTTL:      cfg.TokenTTL,
	}, nil
}

// Login checks the credentials and returns a signed token on success.
func (a *Authenticator) Login(username, password string) (string, error) {
	if !a.checkCredentials(username, password) {
		return "", ErrBadCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string and returns its claims.
func (a *Authenticator) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (a *Authenticator) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.adminUser)) == 1

	var passOK bool
	if a.adminPassHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.adminPassHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPass)) == 1
	}

	return userOK && passOK
}
