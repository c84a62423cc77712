package controller

import (
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/middleware"
	"github.com/Umar-Zak/lyospot/internal/service"
	pkgdto "github.com/Umar-Zak/lyospot/pkg/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc, profileUpload echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	g.GET("", c.GetUsers, isLoggedIn, middleware.Admin)
	g.GET("/profile/me", c.GetProfile, isLoggedIn)
	g.GET("/:id", c.GetUserByID, isLoggedIn)
	g.POST("", c.Register)
	g.POST("/login", c.Login)
	g.POST("/confirm", c.SendConfirmationEmail)
	g.POST("/confirm/password", c.ConfirmPassword, isLoggedIn)
	g.POST("/change/password", c.ChangePassword, isLoggedIn)
	g.PUT("/:id", c.UpdateUser, isLoggedIn, profileUpload)
	g.DELETE("/:id", c.DeleteUser, isLoggedIn, middleware.Admin)
}

func (c *UserController) GetUsers(e echo.Context) error {
	users, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", users)
}

func (c *UserController) GetProfile(e echo.Context) error {
	claims, ok := middleware.TokenUser(e)
	if !ok {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	user, err := c.service.GetProfile(e.Request().Context(), claims.Email)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", user)
}

func (c *UserController) GetUserByID(e echo.Context) error {
	user, err := c.service.GetUserByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", user)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	e.Response().Header().Set("x-auth-token", resp.Token)
	e.Response().Header().Set("access-control-expose-headers", "x-auth-token")

	return pkgdto.WriteSuccessResponse(e, "", resp.User)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	token, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", dto.TokenResponse{Token: token})
}

func (c *UserController) SendConfirmationEmail(e echo.Context) error {
	payload := dto.ConfirmEmailRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "SendConfirmationEmail").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	if err := c.service.SendConfirmationEmail(e.Request().Context(), payload); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "success", nil)
}

func (c *UserController) ConfirmPassword(e echo.Context) error {
	payload := dto.PasswordRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "ConfirmPassword").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	token, err := c.service.ConfirmPassword(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", dto.TokenResponse{Token: token})
}

func (c *UserController) ChangePassword(e echo.Context) error {
	payload := dto.PasswordRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "ChangePassword").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	user, err := c.service.ChangePassword(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", user)
}

func (c *UserController) UpdateUser(e echo.Context) error {
	payload := dto.UpdateUserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")
	payload.Profile = middleware.UploadedFiles(e)["profile"]

	user, err := c.service.UpdateUser(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", user)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	if err := c.service.DeleteUser(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
