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

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc, imageUpload echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	g.GET("", c.GetProducts)
	g.GET("/product/:id", c.GetProductsByStore, isLoggedIn)
	g.GET("/:id", c.GetProductByID)
	g.POST("", c.AddProduct, isLoggedIn, imageUpload)
	g.PUT("/:id", c.UpdateProduct, isLoggedIn, imageUpload)
	g.DELETE("/:id", c.DeleteProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	products, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", products)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) GetProductsByStore(e echo.Context) error {
	products, err := c.service.GetProductsByStore(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", products)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.Images = middleware.UploadedFiles(e)

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = e.Param("id")
	payload.Images = middleware.UploadedFiles(e)

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	if err := c.service.DeleteProduct(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
