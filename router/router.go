package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/controllers"
	"github.com/yeremiapane/vastra-crm/middlewares"
	"github.com/yeremiapane/vastra-crm/utils"
)

func SetupRouter(env *app.Env) *gin.Engine {
	r := gin.New()

	// recovery is outermost so a panic anywhere still gets the envelope
	r.Use(middlewares.Recovery(env.Log))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware(env.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(env.Config.CORSOrigins))
	r.Use(middlewares.NewRateLimiter(env.Config.RateLimitRPS, env.Config.RateLimitBurst).RateLimit())

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Page not found.")
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", gin.H{"app": env.Config.AppName})
	})

	reportController := controllers.NewReportController(env)
	r.GET("/dashboard", reportController.Dashboard)
	r.GET("/payments", reportController.Payments)

	reports := r.Group("/reports")
	{
		reports.GET("", reportController.Summary)
		reports.GET("/export-pdf", reportController.ExportPDF)
	}

	customerController := controllers.NewCustomerController(env)
	customers := r.Group("/customers")
	{
		customers.GET("", customerController.ListCustomers)
		customers.POST("", customerController.CreateCustomer)
		customers.GET("/new", customerController.NewCustomerForm)
		customers.GET("/:code", customerController.GetCustomer)
	}

	orderController := controllers.NewOrderController(env)
	orders := r.Group("/orders")
	{
		orders.GET("", orderController.ListOrders)
		orders.POST("", orderController.CreateOrder)
		orders.GET("/new", orderController.NewOrderForm)
		orders.GET("/:code", orderController.GetOrder)
		orders.POST("/:code", orderController.UpdateOrder)
		orders.PUT("/:code", orderController.UpdateOrder)
		orders.POST("/edit/:code", orderController.UpdateOrder)
		orders.PUT("/edit/:code", orderController.UpdateOrder)
	}

	followUpController := controllers.NewFollowUpController(env)
	followups := r.Group("/followups")
	{
		followups.GET("", followUpController.ListFollowUps)
		followups.POST("", followUpController.CreateFollowUp)
	}

	return r
}
