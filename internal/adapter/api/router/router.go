package router

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/adapter/api/handler"
)

type Handlers struct {
	Health   *handler.HealthHandler
	Driver   *handler.DriverHandler
	Customer *handler.CustomerHandler
	Vehicle  *handler.VehicleHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
	FAQ      *handler.FAQHandler
	Mailing  *handler.MailingHandler
}

func Setup(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")

	api.GET("/dashboard/stats", h.Health.DashboardStats)
	api.GET("/store/health", h.Health.StoreHealth)

	api.GET("/drivers", h.Driver.ListDrivers)
	api.POST("/drivers", h.Driver.CreateDriver)
	api.GET("/drivers/:id", h.Driver.GetDriver)
	api.PUT("/drivers/:id", h.Driver.UpdateDriver)
	api.DELETE("/drivers/:id", h.Driver.DeleteDriver)
	api.GET("/drivers/:id/detail", h.Driver.GetDriverDetail)
	api.GET("/drivers/:id/ratings", h.Driver.GetDriverRatings)
	api.GET("/drivers/:id/earnings", h.Driver.GetDriverEarnings)
	api.GET("/drivers/:id/status", h.Driver.GetDriverLiveStatus)
	api.POST("/drivers/:id/approval", h.Driver.SetApproval)

	api.GET("/customers", h.Customer.ListCustomers)
	api.POST("/customers", h.Customer.CreateCustomer)
	api.GET("/customers/:id", h.Customer.GetCustomer)
	api.PUT("/customers/:id", h.Customer.UpdateCustomer)
	api.DELETE("/customers/:id", h.Customer.DeleteCustomer)
	api.GET("/customers/:id/status", h.Customer.GetCustomerLiveStatus)

	api.GET("/vehicles", h.Vehicle.ListVehicles)
	api.POST("/vehicles/:id/approval", h.Vehicle.SetApproval)
	api.DELETE("/vehicles/:id", h.Vehicle.DeleteVehicle)

	api.GET("/orders", h.Order.ListOrders)
	api.GET("/orders/:id", h.Order.GetOrder)

	api.GET("/payment-modes", h.Payment.ListPaymentModes)
	api.POST("/payment-modes", h.Payment.CreatePaymentMode)
	api.PUT("/payment-modes/:id", h.Payment.UpdatePaymentMode)
	api.DELETE("/payment-modes/:id", h.Payment.DeletePaymentMode)

	api.GET("/payment-settings", h.Payment.ListPaymentSettings)
	api.POST("/payment-settings", h.Payment.CreatePaymentSetting)
	api.PUT("/payment-settings/:id", h.Payment.UpdatePaymentSetting)
	api.DELETE("/payment-settings/:id", h.Payment.DeletePaymentSetting)
	api.GET("/vehicle-types", h.Payment.ListVehicleTypes)

	api.GET("/faqs", h.FAQ.ListFAQs)
	api.POST("/faqs", h.FAQ.CreateFAQ)
	api.GET("/faqs/:id", h.FAQ.GetFAQ)
	api.PUT("/faqs/:id", h.FAQ.UpdateFAQ)
	api.DELETE("/faqs/:id", h.FAQ.DeleteFAQ)

	api.POST("/mailing/customers", h.Mailing.MailCustomers)
	api.POST("/mailing/drivers", h.Mailing.MailDrivers)
}
