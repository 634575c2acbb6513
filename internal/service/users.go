package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/retail-store/internal/model"
	"github.com/mmeshcher/retail-store/internal/repository"
)

// maxPasswordBytes - предел длины пароля для bcrypt.
const maxPasswordBytes = 72

// RegisterUser регистрирует нового пользователя с датой регистрации, равной текущему дню.
func (s *Service) RegisterUser(ctx context.Context, userName, password string, userType model.UserType) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	_, err = s.repo.CreateUser(ctx, model.User{
		UserName:         userName,
		UserType:         userType,
		RegistrationDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		PasswordHash:     hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return repository.ErrUserExists
		}
		return err
	}
	return nil
}

// Authenticate проверяет имя и пароль пользователя и возвращает токен доступа.
func (s *Service) Authenticate(ctx context.Context, userName, password string) (string, error) {
	u, err := s.repo.GetUserByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", repository.ErrUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.IssueToken(u.UserName)
}

// GetUsers возвращает всех пользователей.
func (s *Service) GetUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.GetUsers(ctx)
}
