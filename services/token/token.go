package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parcel-booking/models/user"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrWrongSubject = errors.New("token subject mismatch")
)

// Claims is the decoded payload of an access token.
type Claims struct {
	Email  string
	UserID string
	Role   user.Role
	Issued time.Time
	Expiry time.Time
}

// Service issues and verifies HS256 access tokens. The secret is fixed at
// construction; there is no ambient global key.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given account. The subject is the email, the
// numeric account id travels as a string claim so clients never see it as a
// float.
func (s *Service) Issue(email string, userID uint, role user.Role) (string, error) {
	nowTime := time.Now()
	claims := jwt.MapClaims{
		"sub":    email,
		"userId": fmt.Sprintf("%d", userID),
		"role":   role.String(),
		"iat":    nowTime.Unix(),
		"exp":    nowTime.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and structure of a token and returns its
// claims. Expiry is deliberately not enforced here so callers can inspect
// expired tokens; use IsExpired or Validate for the time check.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	userID, ok := mapClaims["userId"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: missing userId", ErrInvalidToken)
	}
	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing role", ErrInvalidToken)
	}
	role := user.Role(roleStr)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, roleStr)
	}

	iat, ok := mapClaims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing iat", ErrInvalidToken)
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing exp", ErrInvalidToken)
	}

	return &Claims{
		Email:  sub,
		UserID: userID,
		Role:   role,
		Issued: time.Unix(int64(iat), 0),
		Expiry: time.Unix(int64(exp), 0),
	}, nil
}

// IsExpired reports whether the token's expiry has passed. Malformed tokens
// count as expired.
func (s *Service) IsExpired(tokenString string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return true
	}
	return time.Now().After(claims.Expiry)
}

// Validate checks signature, subject and expiry in one call.
func (s *Service) Validate(tokenString, expectedSubject string) error {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return err
	}
	if claims.Email != expectedSubject {
		return ErrWrongSubject
	}
	if time.Now().After(claims.Expiry) {
		return ErrTokenExpired
	}
	return nil
}
