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

type StoreController struct {
	service service.StoreService
}

func CreateStoreController(g *echo.Group, service service.StoreService, isLoggedIn echo.MiddlewareFunc, profileUpload echo.MiddlewareFunc) {
	c := StoreController{
		service: service,
	}
	g.GET("", c.GetStores, isLoggedIn, middleware.Admin)
	g.GET("/user/:id", c.GetStoreByOwner, isLoggedIn)
	g.GET("/:id", c.GetStoreByID)
	g.POST("", c.CreateStore, isLoggedIn, profileUpload)
	g.POST("/profile", c.GetStoreByOwnerEmail, isLoggedIn)
	g.POST("/follow", c.FollowStore, isLoggedIn)
	g.POST("/confirm", c.SendConfirmationSMS, isLoggedIn)
	g.PUT("/:id", c.UpdateStore, isLoggedIn)
	g.DELETE("/:id", c.DeleteStore, isLoggedIn)
}

func (c *StoreController) GetStores(e echo.Context) error {
	stores, err := c.service.GetStores(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", stores)
}

func (c *StoreController) GetStoreByID(e echo.Context) error {
	store, err := c.service.GetStoreByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) GetStoreByOwner(e echo.Context) error {
	store, err := c.service.GetStoreByOwner(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) GetStoreByOwnerEmail(e echo.Context) error {
	payload := dto.StoreProfileRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "GetStoreByOwnerEmail").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	store, err := c.service.GetStoreByOwnerEmail(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) CreateStore(e echo.Context) error {
	payload := dto.StoreRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "CreateStore").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.Profile = middleware.UploadedFiles(e)["profile"]

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	store, token, err := c.service.CreateStore(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	e.Response().Header().Set("x-auth-token", token)
	e.Response().Header().Set("access-control-expose-headers", "x-auth-token")

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) FollowStore(e echo.Context) error {
	payload := dto.FollowRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "FollowStore").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	store, err := c.service.FollowStore(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) SendConfirmationSMS(e echo.Context) error {
	payload := dto.SMSRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "SendConfirmationSMS").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	if err := c.service.SendConfirmationSMS(e.Request().Context(), payload); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "success", nil)
}

func (c *StoreController) UpdateStore(e echo.Context) error {
	payload := dto.StoreRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateStore").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	store, err := c.service.UpdateStore(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", store)
}

func (c *StoreController) DeleteStore(e echo.Context) error {
	if err := c.service.DeleteStore(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
