package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-shop-admin/internal/core/auth"
	"go-shop-admin/internal/transport/http/handler"
	"go-shop-admin/internal/transport/http/middleware"
	resp "go-shop-admin/internal/transport/http/response"
)

// NewEngine assembles the gin engine: global middleware chain, user
// and admin route groups behind their token gates, and the public
// catalog endpoints.
func NewEngine(l *zap.Logger, jwter *auth.JWTer, users middleware.UserFinder, uh *handler.UserHandler, ch *handler.CatalogHandler) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(cors.Default())
	r.Use(middleware.RateLimit(200, 400))
	r.Use(middleware.ConcurrencyLimit(300))
	r.Use(middleware.MaxBodyBytes(16 << 20))
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(middleware.Metrics())
	r.Use(middleware.AccessLog(l))

	r.GET("/health", func(c *gin.Context) { c.JSON(resp.StatusOK, resp.OK(nil, "ok")) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	user := r.Group("/user")
	{
		user.POST("/signup", uh.Signup)
		user.POST("/verifyEmail", uh.VerifyEmail)
		user.POST("/signin", uh.Signin)
		user.POST("/forgotPassword", uh.ForgotPassword)
		user.POST("/resetPassword/:token", uh.ResetPassword)

		authed := user.Group("", middleware.AuthUser(jwter, users))
		authed.GET("/profile", uh.Profile)
		authed.PUT("/editProfile", uh.EditProfile)
		authed.POST("/review", uh.AddReview)
	}

	admin := r.Group("/admin", middleware.AuthAdmin(jwter, users))
	{
		admin.POST("/category", ch.AddCategory)
		admin.POST("/product", ch.AddProduct)
		admin.PUT("/editproduct/:id", ch.UpdateProduct)
		admin.DELETE("/deleteproduct/:id", ch.DeleteProduct)
		admin.POST("/sendmail", ch.SendProductReport)
	}

	r.GET("/getcategory", ch.ListCategories)
	r.GET("/getproduct", ch.ListProducts)
	r.GET("/listproduct", ch.ListOutOfStock)

	return r
}
