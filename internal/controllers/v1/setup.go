package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/store"
	"github.com/bellanote/backend/internal/types"
)

type PackageListResponse struct {
	Data  []models.WeddingPackage `json:"data"`
	Error *string                 `json:"error"`
}

type AppDataResponse struct {
	Data  *models.AppData `json:"data"`
	Error *string         `json:"error"`
}

// SetupEditable is the data collected during the initial setup.
type SetupEditable struct {
	UserProfile      models.UserProfile    `json:"userProfile"`
	WeddingDate      types.Date            `json:"weddingDate" binding:"required" example:"2027-05-20"`
	WeddingDetails   models.WeddingDetails `json:"weddingDetails"`
	BudgetTotal      decimal.Decimal       `json:"budgetTotal" example:"50000"`
	SelectedPackages []string              `json:"selectedPackages" example:"buffet,decoracao,fotografia"`
	OtherPackageName string                `json:"otherPackageName" example:"Lembrancinhas"`
}

// RegisterSetupRoutes registers the routes for the initial setup.
func (co Controller) RegisterSetupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetPackages)
	r.POST("", co.CreateSetup)
}

// @Summary		List packages
// @Description	Returns the catalog of service packages selectable during setup
// @Tags			Setup
// @Produce		json
// @Success		200	{object}	PackageListResponse
// @Router			/v1/setup [get]
func (co Controller) GetPackages(c *gin.Context) {
	c.JSON(http.StatusOK, PackageListResponse{Data: models.InitialPackages})
}

// @Summary		Initial setup
// @Description	Stores the setup data and derives the budget categories from the selected packages
// @Tags			Setup
// @Accept			json
// @Produce		json
// @Success		201	{object}	AppDataResponse
// @Failure		400	{object}	AppDataResponse
// @Failure		500	{object}	AppDataResponse
// @Param			setup	body	SetupEditable	true	"Setup"
// @Router			/v1/setup [post]
func (co Controller) CreateSetup(c *gin.Context) {
	editable, err := httputil.BindData[SetupEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AppDataResponse{Error: &s})
		return
	}

	err = co.Store.SaveInitialSetup(store.SetupDetails{
		UserProfile:      editable.UserProfile,
		WeddingDate:      editable.WeddingDate,
		WeddingDetails:   editable.WeddingDetails,
		BudgetTotal:      editable.BudgetTotal,
		SelectedPackages: editable.SelectedPackages,
		OtherPackageName: editable.OtherPackageName,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AppDataResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	c.JSON(http.StatusCreated, AppDataResponse{Data: &data})
}
