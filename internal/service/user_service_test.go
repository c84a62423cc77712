package service

import (
	"context"
	"testing"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user with a generated name and default profile", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		userID := primitive.NewObjectID()
		repo.On("GetUserByEmail", ctx, "new@mail.com").Return(domain.User{}, errs.ErrNotFound)
		repo.On("CountUsers", ctx).Return(int64(4), nil)
		repo.On("AddUser", ctx, mock.AnythingOfType("domain.User")).Return(userID, nil)

		resp, err := svc.Register(ctx, dto.RegisterRequest{
			Email:    "new@mail.com",
			Password: "secretpass",
		})

		assert.NoError(t, err)
		assert.Equal(t, "User5", resp.User.Name)
		assert.Equal(t, "/assets/user/avatar.svg", resp.User.Profile)
		assert.Equal(t, userID, resp.User.ID)
		assert.NotEmpty(t, resp.Token)

		stored := repo.Calls[2].Arguments.Get(1).(domain.User)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secretpass")))

		claims, err := utils.VerifyJWTToken(resp.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "new@mail.com", claims.Email)

		repo.AssertExpectations(t)
	})

	t.Run("rejects an already used email", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "taken@mail.com").Return(domain.User{Email: "taken@mail.com"}, nil)

		_, err := svc.Register(ctx, dto.RegisterRequest{
			Email:    "taken@mail.com",
			Password: "secretpass",
		})

		assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
		repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.DefaultCost)

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "user@mail.com").Return(domain.User{
			ID:       primitive.NewObjectID(),
			Email:    "user@mail.com",
			Password: string(hash),
		}, nil)

		token, err := svc.Login(ctx, dto.LoginRequest{Email: "user@mail.com", Password: "secretpass"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "user@mail.com").Return(domain.User{
			Email:    "user@mail.com",
			Password: string(hash),
		}, nil)

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "user@mail.com", Password: "wrong"})

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "ghost@mail.com").Return(domain.User{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "ghost@mail.com", Password: "secretpass"})

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestConfirmPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.DefaultCost)

	t.Run("flags a wrong password", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "user@mail.com").Return(domain.User{
			Email:    "user@mail.com",
			Password: string(hash),
		}, nil)

		_, err := svc.ConfirmPassword(ctx, dto.PasswordRequest{Email: "user@mail.com", Password: "wrong"})

		assert.ErrorIs(t, err, errs.ErrWrongPassword)
	})

	t.Run("mints a fresh token on success", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		repo.On("GetUserByEmail", ctx, "user@mail.com").Return(domain.User{
			ID:       primitive.NewObjectID(),
			Email:    "user@mail.com",
			Password: string(hash),
		}, nil)

		token, err := svc.ConfirmPassword(ctx, dto.PasswordRequest{Email: "user@mail.com", Password: "secretpass"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a malformed id", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		_, err := svc.GetUserByID(ctx, "not-an-object-id")

		assert.ErrorIs(t, err, errs.ErrClient)
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		id := primitive.NewObjectID()
		repo.On("GetUserByID", ctx, id).Return(domain.User{}, errs.ErrNotFound)

		_, err := svc.GetUserByID(ctx, id.Hex())

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to the default profile when no image was uploaded", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		id := primitive.NewObjectID()
		repo.On("GetUserByID", ctx, id).Return(domain.User{ID: id, Email: "user@mail.com"}, nil)
		repo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil)

		user, err := svc.UpdateUser(ctx, dto.UpdateUserRequest{
			ID:    id.Hex(),
			Email: "user@mail.com",
			Name:  "New Name",
		})

		assert.NoError(t, err)
		assert.Equal(t, "/assets/user/avatar.svg", user.Profile)
		assert.Equal(t, "New Name", user.Name)
	})

	t.Run("keeps the uploaded profile path", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		id := primitive.NewObjectID()
		repo.On("GetUserByID", ctx, id).Return(domain.User{ID: id}, nil)
		repo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil)

		user, err := svc.UpdateUser(ctx, dto.UpdateUserRequest{
			ID:      id.Hex(),
			Profile: "/assets/user/me.png",
		})

		assert.NoError(t, err)
		assert.Equal(t, "/assets/user/me.png", user.Profile)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a malformed id", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		err := svc.DeleteUser(ctx, "zzz")

		assert.ErrorIs(t, err, errs.ErrClient)
	})

	t.Run("refuses to delete an absent user", func(t *testing.T) {
		repo := new(userRepositoryMock)
		svc := CreateUserService(repo, testConfig())

		id := primitive.NewObjectID()
		repo.On("GetUserByID", ctx, id).Return(domain.User{}, errs.ErrNotFound)

		err := svc.DeleteUser(ctx, id.Hex())

		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}
