package controller

import (
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/service"
	pkgdto "github.com/Umar-Zak/lyospot/pkg/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ShippingController struct {
	service service.ShippingService
}

func CreateShippingController(g *echo.Group, service service.ShippingService) {
	c := ShippingController{
		service: service,
	}
	g.GET("", c.GetShippings)
	g.GET("/:id", c.GetShippingByID)
	g.POST("", c.AddShipping)
	g.PUT("/:id", c.UpdateShipping)
	g.DELETE("/:id", c.DeleteShipping)
}

func (c *ShippingController) GetShippings(e echo.Context) error {
	shippings, err := c.service.GetShippings(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", shippings)
}

func (c *ShippingController) GetShippingByID(e echo.Context) error {
	shipping, err := c.service.GetShippingByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", shipping)
}

func (c *ShippingController) AddShipping(e echo.Context) error {
	payload := dto.ShippingRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddShipping").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	shipping, err := c.service.AddShipping(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", shipping)
}

func (c *ShippingController) UpdateShipping(e echo.Context) error {
	payload := dto.ShippingRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateShipping").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	shipping, err := c.service.UpdateShipping(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", shipping)
}

func (c *ShippingController) DeleteShipping(e echo.Context) error {
	if err := c.service.DeleteShipping(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
