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

type WishlistController struct {
	service service.WishlistService
}

func CreateWishlistController(g *echo.Group, service service.WishlistService, isLoggedIn echo.MiddlewareFunc) {
	c := WishlistController{
		service: service,
	}
	g.GET("", c.GetWishlists, isLoggedIn, middleware.Admin)
	g.GET("/user/:id", c.GetUserWishlists, isLoggedIn)
	g.GET("/:id", c.GetWishlistByID, isLoggedIn)
	g.POST("", c.AddWishlist, isLoggedIn)
	g.DELETE("/user/:id", c.DeleteWishlistByProduct, isLoggedIn)
	g.DELETE("/:id", c.DeleteWishlist, isLoggedIn)
}

func (c *WishlistController) GetWishlists(e echo.Context) error {
	wishlists, err := c.service.GetWishlists(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", wishlists)
}

func (c *WishlistController) GetWishlistByID(e echo.Context) error {
	wishlist, err := c.service.GetWishlistByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", wishlist)
}

func (c *WishlistController) GetUserWishlists(e echo.Context) error {
	wishlists, err := c.service.GetUserWishlists(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", wishlists)
}

func (c *WishlistController) AddWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddWishlist").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	wishlist, err := c.service.AddWishlist(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", wishlist)
}

func (c *WishlistController) DeleteWishlist(e echo.Context) error {
	if err := c.service.DeleteWishlist(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}

func (c *WishlistController) DeleteWishlistByProduct(e echo.Context) error {
	if err := c.service.DeleteWishlistByProduct(e.Request().Context(), e.Param("id")); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}
