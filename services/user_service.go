// Package services implements the operations the request handlers
// translate to. Every mutating operation runs one load-modify-save cycle
// through the store gate; nothing is cached between requests.
package services

import (
	"fmt"
	"log/slog"

	"chatboard/auth"
	"chatboard/domain"
	"chatboard/errors"
	"chatboard/store"
)

type IUserService interface {
	Register(username, email, password string) (domain.User, error)
	Authenticate(username, password string) (domain.User, error)
	List() ([]domain.User, error)
}

type UserService struct {
	gate      *store.Gate
	avatarURL string
	log       *slog.Logger
}

func NewUserService(gate *store.Gate, avatarURL string, log *slog.Logger) *UserService {
	return &UserService{gate: gate, avatarURL: avatarURL, log: log}
}

// Register creates an account. The username must be unique (case-sensitive
// exact match); a conflict leaves the user list untouched.
func (s *UserService) Register(username, email, password string) (domain.User, error) {
	valReq := auth.RegisterRequest{Username: username, Email: email, Password: password}
	if err := auth.ValidateRegister(valReq); err != nil {
		return domain.User{}, err
	}

	// Hashing happens before the gate is taken: it is the one CPU-heavy
	// step and must not stall concurrent cycles.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	var created domain.User
	err = s.gate.Update(func(doc *domain.Document) error {
		if _, exists := doc.UserByUsername(username); exists {
			return errors.ErrUserAlreadyExists
		}
		created = domain.User{
			ID:           len(doc.Users) + 1,
			Username:     username,
			Email:        email,
			PasswordHash: hashedPassword,
			AvatarURL:    s.avatarURL,
			Channels:     []int{},
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	s.log.Info("user registered", "username", username, "id", created.ID)
	return created, nil
}

// Authenticate verifies credentials without any side effect.
func (s *UserService) Authenticate(username, password string) (domain.User, error) {
	var user domain.User
	err := s.gate.View(func(doc domain.Document) error {
		found, ok := doc.UserByUsername(username)
		if !ok {
			return errors.ErrUserNotFound
		}
		user = *found
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return domain.User{}, errors.ErrInvalidCredentials
	}
	return user, nil
}

// List returns all users in insertion order. Callers rendering the result
// are expected to redact credential material.
func (s *UserService) List() ([]domain.User, error) {
	var users []domain.User
	err := s.gate.View(func(doc domain.Document) error {
		users = append([]domain.User{}, doc.Users...)
		return nil
	})
	return users, err
}
