package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-admin/internal/service"
	mdw "go-shop-admin/internal/transport/http/middleware"
	resp "go-shop-admin/internal/transport/http/response"
	"go-shop-admin/pkg/upload"
)

type UserHandler struct {
	accounts *service.AccountService
	reviews  *service.ReviewService
	uploader *upload.Uploader
	log      *zap.Logger
}

func NewUserHandler(accounts *service.AccountService, reviews *service.ReviewService, uploader *upload.Uploader, log *zap.Logger) *UserHandler {
	return &UserHandler{accounts: accounts, reviews: reviews, uploader: uploader, log: log}
}

// storeImage saves an optional multipart image; absence is not an error.
func (h *UserHandler) storeImage(c *gin.Context) (string, error) {
	fh, err := c.FormFile("profileImage")
	if err != nil {
		return "", nil
	}
	name, err := h.uploader.Store(fh)
	if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrUnsupportedType) {
		return "", err
	}
	return name, err
}

// POST /user/signup (multipart)
func (h *UserHandler) Signup(c *gin.Context) {
	image, err := h.storeImage(c)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrUnsupportedType) {
			c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
			return
		}
		writeErr(c, h.log, err)
		return
	}

	view, err := h.accounts.Signup(service.SignupInput{
		Email:        c.PostForm("email"),
		Password:     c.PostForm("password"),
		FirstName:    c.PostForm("firstName"),
		LastName:     c.PostForm("lastName"),
		Role:         c.PostForm("role"),
		ProfileImage: image,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(view, "Registration successfully completed!"))
}

// POST /user/verifyEmail
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	var in struct {
		Email string `json:"email" form:"email"`
		OTP   string `json:"otp" form:"otp"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	if err := h.accounts.VerifyEmail(in.Email, in.OTP); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(nil, "Email verified successfully"))
}

// POST /user/signin
func (h *UserHandler) Signin(c *gin.Context) {
	var in struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	view, token, err := h.accounts.Signin(in.Email, in.Password)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, gin.H{
		"status":  resp.StatusOK,
		"data":    view,
		"token":   token,
		"message": "Signin successfully completed!",
	})
}

// GET /user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		c.JSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, ""))
		return
	}
	c.JSON(resp.StatusOK, resp.OK(h.accounts.ProfileDetails(u), "User profile details fetched successfully!"))
}

// PUT /user/editProfile (multipart)
func (h *UserHandler) EditProfile(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		c.JSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, ""))
		return
	}
	image, err := h.storeImage(c)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrUnsupportedType) {
			c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
			return
		}
		writeErr(c, h.log, err)
		return
	}

	view, err := h.accounts.EditProfile(u, service.EditProfileInput{
		FirstName:    c.PostForm("firstName"),
		LastName:     c.PostForm("lastName"),
		Email:        c.PostForm("email"),
		ProfileImage: image,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(view, "Profile updated successfully!"))
}

// POST /user/forgotPassword
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var in struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	if err := h.accounts.ForgotPassword(in.Email); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(nil, "Password reset email sent"))
}

// POST /user/resetPassword/:token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var in struct {
		NewPassword     string `json:"newPassword" form:"newPassword"`
		ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	if err := h.accounts.ResetPassword(c.Param("token"), in.NewPassword, in.ConfirmPassword); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(nil, "Password reset successfully"))
}

// POST /user/review
func (h *UserHandler) AddReview(c *gin.Context) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		c.JSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, ""))
		return
	}
	var in struct {
		ProductID string   `json:"productId"`
		Rating    *float64 `json:"rating"`
		Comment   string   `json:"comment"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
		return
	}
	// A pointer keeps an absent rating apart from an explicit zero,
	// which is out of range rather than missing.
	if in.Rating == nil {
		writeErr(c, h.log, service.ErrMissingField)
		return
	}
	review, err := h.reviews.AddReview(u.ID, in.ProductID, *in.Rating, in.Comment)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(resp.StatusOK, resp.OK(review, "Review added successfully"))
}
