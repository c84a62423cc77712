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

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(g *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}
	g.GET("", c.GetOrders, isLoggedIn)
	g.GET("/sellers/rejects", c.GetRejectedOrders, isLoggedIn)
	g.GET("/sellers/rejects/:id", c.GetRejectedOrderByID, isLoggedIn)
	g.GET("/customer/:id", c.GetCustomerOrders, isLoggedIn)
	g.GET("/sales/:id", c.GetStoreSales, isLoggedIn)
	g.GET("/:id", c.GetOrderByID, isLoggedIn)
	g.POST("", c.PlaceOrder, isLoggedIn)
	g.POST("/payment", c.ProcessPayment, isLoggedIn)
	g.PUT("/shipping/:id", c.MarkShipped)
	g.PUT("/received/:id", c.MarkDelivered)
	g.DELETE("/:id", c.RejectOrder, isLoggedIn)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	orders, err := c.service.GetOrders(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	order, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", order)
}

func (c *OrderController) GetCustomerOrders(e echo.Context) error {
	orders, err := c.service.GetCustomerOrders(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) GetStoreSales(e echo.Context) error {
	orders, err := c.service.GetStoreSales(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) GetRejectedOrders(e echo.Context) error {
	orders, err := c.service.GetRejectedOrders(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) GetRejectedOrderByID(e echo.Context) error {
	order, err := c.service.GetRejectedOrderByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", order)
}

func (c *OrderController) PlaceOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	orders, err := c.service.PlaceOrder(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", orders)
}

func (c *OrderController) ProcessPayment(e echo.Context) error {
	payload := dto.PaymentRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "ProcessPayment").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, validator.CollectErrors(err))
	}

	if err := c.service.ProcessPayment(e.Request().Context(), payload); err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "success", nil)
}

func (c *OrderController) MarkShipped(e echo.Context) error {
	order, err := c.service.MarkShipped(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", order)
}

func (c *OrderController) MarkDelivered(e echo.Context) error {
	order, err := c.service.MarkDelivered(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", order)
}

func (c *OrderController) RejectOrder(e echo.Context) error {
	order, err := c.service.RejectOrder(e.Request().Context(), e.Param("id"))
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "", order)
}
