package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
)

type ProfileResponse struct {
	Data  *models.UserProfile `json:"data"`
	Error *string             `json:"error"`
}

// Wedding is the wedding date together with the ceremony and reception
// details.
type Wedding struct {
	WeddingDate        types.Date            `json:"weddingDate"`
	Details            models.WeddingDetails `json:"details"`
	MonthsUntilWedding int                   `json:"monthsUntilWedding"`
}

type WeddingResponse struct {
	Data  *Wedding `json:"data"`
	Error *string  `json:"error"`
}

// WeddingEditable are the wedding fields that can be set from requests.
// Fields that are not submitted stay unchanged.
type WeddingEditable struct {
	WeddingDate types.Date             `json:"weddingDate" example:"2027-05-20"`
	Details     *models.WeddingDetails `json:"details"`
}

// RegisterProfileRoutes registers the routes for the user profile.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetProfile)
	r.PATCH("", co.UpdateProfile)
}

// RegisterWeddingRoutes registers the routes for the wedding data.
func (co Controller) RegisterWeddingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetWedding)
	r.PATCH("", co.UpdateWedding)
}

// @Summary		Get profile
// @Description	Returns the couple's profile
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	data := co.Store.Data()
	c.JSON(http.StatusOK, ProfileResponse{Data: &data.UserProfile})
}

// @Summary		Update profile
// @Description	Replaces the couple's profile
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			profile	body	models.UserProfile	true	"Profile"
// @Router			/v1/profile [patch]
func (co Controller) UpdateProfile(c *gin.Context) {
	profile, err := httputil.BindData[models.UserProfile](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	if err := co.Store.UpdateUserProfile(profile); err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Get wedding
// @Description	Returns the wedding date and the ceremony and reception details
// @Tags			Wedding
// @Produce		json
// @Success		200	{object}	WeddingResponse
// @Router			/v1/wedding [get]
func (co Controller) GetWedding(c *gin.Context) {
	data := co.Store.Data()

	c.JSON(http.StatusOK, WeddingResponse{Data: &Wedding{
		WeddingDate:        data.WeddingDate,
		Details:            data.WeddingDetails,
		MonthsUntilWedding: data.MonthsUntilWedding(time.Now()),
	}})
}

// @Summary		Update wedding
// @Description	Sets the wedding date and the ceremony and reception details
// @Tags			Wedding
// @Accept			json
// @Produce		json
// @Success		200	{object}	WeddingResponse
// @Failure		400	{object}	WeddingResponse
// @Failure		500	{object}	WeddingResponse
// @Param			wedding	body	WeddingEditable	true	"Wedding"
// @Router			/v1/wedding [patch]
func (co Controller) UpdateWedding(c *gin.Context) {
	editable, err := httputil.BindData[WeddingEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingResponse{Error: &s})
		return
	}

	if !editable.WeddingDate.IsZero() {
		if err := co.Store.SetWeddingDate(editable.WeddingDate); err != nil {
			s := err.Error()
			c.JSON(status(err), WeddingResponse{Error: &s})
			return
		}
	}

	if editable.Details != nil {
		if err := co.Store.UpdateWeddingDetails(*editable.Details); err != nil {
			s := err.Error()
			c.JSON(status(err), WeddingResponse{Error: &s})
			return
		}
	}

	co.GetWedding(c)
}
