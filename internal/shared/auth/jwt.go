package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience is the "aud" Supabase puts on access tokens for signed-in users.
const Audience = "authenticated"

// Claims represents the identity contained in a Supabase access token.
type Claims struct {
	Sub      string
	Email    string
	Role     string
	Audience string
	Exp      int64
	Iat      int64
}

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

type supabaseClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SignJWT signs the given claims with HS256. Missing aud, iat and exp are
// filled with Audience, now and one hour from now.
func SignJWT(secret string, claims Claims) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", ErrMissingSecret
	}
	if claims.Sub == "" {
		return "", errors.New("sub is required")
	}

	now := time.Now().UTC()
	if claims.Iat == 0 {
		claims.Iat = now.Unix()
	}
	if claims.Exp == 0 {
		claims.Exp = now.Add(time.Hour).Unix()
	}
	if claims.Audience == "" {
		claims.Audience = Audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, supabaseClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Sub,
			Audience:  jwt.ClaimStrings{claims.Audience},
			IssuedAt:  jwt.NewNumericDate(time.Unix(claims.Iat, 0)),
			ExpiresAt: jwt.NewNumericDate(time.Unix(claims.Exp, 0)),
		},
	})
	return token.SignedString([]byte(secret))
}

// VerifyJWT verifies an HS256 token and returns its claims. The token must
// carry an exp in the future, aud "authenticated" and a subject.
func VerifyJWT(secret, token string) (Claims, error) {
	if strings.TrimSpace(secret) == "" {
		return Claims{}, ErrMissingSecret
	}

	var parsed supabaseClaims
	_, err := jwt.ParseWithClaims(token, &parsed,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(Audience),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if parsed.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	out := Claims{
		Sub:      parsed.Subject,
		Email:    parsed.Email,
		Role:     parsed.Role,
		Audience: Audience,
	}
	if parsed.ExpiresAt != nil {
		out.Exp = parsed.ExpiresAt.Unix()
	}
	if parsed.IssuedAt != nil {
		out.Iat = parsed.IssuedAt.Unix()
	}
	return out, nil
}
