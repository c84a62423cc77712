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

type TestimonialController struct {
	service service.TestimonialService
}

func CreateTestimonialController(g *echo.Group, service service.TestimonialService, isLoggedIn echo.MiddlewareFunc) {
	c := TestimonialController{
		service: service,
	}
	g.GET("", c.GetTestimonials, isLoggedIn)
	g.GET("/:id", c.GetTestimonialByID, isLoggedIn)
	g.POST("", c.AddTestimonial, isLoggedIn)
	g.DELETE("/:id", c.DeleteTestimonial, isLoggedIn)
}

func (c *TestimonialController) GetTestimonials(e echo.Context) error {
	testimonials, err := c.service.GetTestimonials(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", testimonials)
}

func (c *TestimonialController) GetTestimonialByID(e echo.Context) error {
	testimonial, err := c.service.GetTestimonialByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", testimonial)
}

func (c *TestimonialController) AddTestimonial(e echo.Context) error {
	payload := dto.TestimonialRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddTestimonial").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	testimonial, err := c.service.AddTestimonial(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", testimonial)
}

func (c *TestimonialController) DeleteTestimonial(e echo.Context) error {
	if err := c.service.DeleteTestimonial(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
