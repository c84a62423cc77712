package service

import (
	"context"
	"fmt"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const defaultUserProfile = "/assets/user/avatar.svg"

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetUsers(ctx)
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, errs.ErrClient
	}

	return s.repo.GetUserByID(ctx, userID)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, email string) (domain.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

// Register inserts a new account after a non-atomic existence check by email
// and returns the stored user together with a signed token. New accounts are
// auto-named from the current user count.
func (s *UserServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (resp dto.RegisterResponse, err error) {
	_, err = s.repo.GetUserByEmail(ctx, payload.Email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return resp, err
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return resp, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, err
	}

	user := domain.User{
		Email:     payload.Email,
		Password:  string(hash),
		Name:      fmt.Sprintf("User%d", count+1),
		DOB:       payload.DOB,
		Gender:    payload.Gender,
		Phone:     payload.Phone,
		Address:   payload.Address,
		Profile:   defaultUserProfile,
		Following: []string{},
	}

	userID, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return resp, err
	}
	user.ID = userID

	token, err := s.mintToken(user)
	if err != nil {
		return resp, err
	}

	resp.User = user
	resp.Token = token

	return resp, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (token string, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		if err == errs.ErrNotFound {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return "", errs.ErrInvalidCredentials
	}

	return s.mintToken(user)
}

// ConfirmPassword re-checks the caller's password and hands back a fresh
// token on success.
func (s *UserServiceImpl) ConfirmPassword(ctx context.Context, payload dto.PasswordRequest) (token string, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		if err == errs.ErrNotFound {
			return "", errs.ErrClient
		}
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return "", errs.ErrWrongPassword
	}

	return s.mintToken(user)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, payload dto.PasswordRequest) (user domain.User, err error) {
	user, err = s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		if err == errs.ErrNotFound {
			return user, errs.ErrClient
		}
		return user, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return user, err
	}

	if err = s.repo.UpdatePassword(ctx, payload.Email, string(hash)); err != nil {
		return user, err
	}

	user.Password = string(hash)

	return user, nil
}

func (s *UserServiceImpl) SendConfirmationEmail(ctx context.Context, payload dto.ConfirmEmailRequest) error {
	err := utils.SendEmail(
		payload.Email,
		"Confirm your lyospot account",
		payload.HTML,
		s.config.SMTPConfig.Sender,
		s.config.SMTPConfig.Password,
		s.config.SMTPConfig.Host,
		s.config.SMTPConfig.Port,
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendConfirmationEmail").Msg("")
		return errs.ErrGateway
	}

	return nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, payload dto.UpdateUserRequest) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return user, errs.ErrClient
	}

	user, err = s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return user, err
	}

	user.Email = payload.Email
	user.Name = payload.Name
	user.Phone = payload.Phone
	user.Address = payload.Address
	user.Gender = payload.Gender
	user.DOB = payload.DOB
	if payload.Profile != "" {
		user.Profile = payload.Profile
	} else {
		user.Profile = defaultUserProfile
	}

	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return user, err
	}

	return user, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	return s.repo.DeleteUser(ctx, userID)
}

func (s *UserServiceImpl) mintToken(user domain.User) (string, error) {
	return utils.CreateJWTToken(utils.TokenClaims{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		HasStore:  user.HasStore,
		StoreName: user.StoreName,
	}, s.config.JWTSecret)
}
