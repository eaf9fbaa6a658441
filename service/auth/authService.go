package authsvc

import (
	"context"
	"errors"

	"lendingdesk/util/hash"
	jwtutil "lendingdesk/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// Service exchanges the configured staff credentials for a JWT. There is no
// user table; the lending desk has one librarian login from the environment.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	email        string
	passwordHash string
	secret       string
}

func New(email, password, secret string) (Service, error) {
	h, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &service{email: email, passwordHash: h, secret: secret}, nil
}

func (s *service) Login(_ context.Context, email, password string) (string, error) {
	if email != s.email || !hash.Check(s.passwordHash, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, s.email, "librarian", 24)
}
