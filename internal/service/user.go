package service

import (
	"lexibot/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser creates the user on first contact; repeated calls only
// refresh the username.
func (s *UserService) RegisterUser(userID int64, username string) error {
	return s.userRepo.RegisterUser(userID, username)
}
