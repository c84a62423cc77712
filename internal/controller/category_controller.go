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

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(g *echo.Group, service service.CategoryService) {
	c := CategoryController{
		service: service,
	}
	g.GET("", c.GetCategories)
	g.GET("/:id", c.GetCategoryByID)
	g.POST("", c.AddCategory)
	g.PUT("/:id", c.UpdateCategory)
	g.DELETE("/:id", c.DeleteCategory)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	categories, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", categories)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	category, err := c.service.GetCategoryByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", category)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	category, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", category)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	category, err := c.service.UpdateCategory(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", category)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	if err := c.service.DeleteCategory(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
