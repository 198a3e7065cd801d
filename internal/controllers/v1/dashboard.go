package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
)

// upcomingPaymentsLimit is the number of payments shown on the dashboard.
const upcomingPaymentsLimit = 5

// Dashboard aggregates the document for the overview page.
type Dashboard struct {
	TotalBudget             decimal.Decimal      `json:"totalBudget"`
	TotalSpent              decimal.Decimal      `json:"totalSpent"`
	TotalPaid               decimal.Decimal      `json:"totalPaid"`
	RemainingBudget         decimal.Decimal      `json:"remainingBudget"`
	ActualBalance           decimal.Decimal      `json:"actualBalance"`
	SpentPercentage         float64              `json:"spentPercentage"`
	MonthsUntilWedding      int                  `json:"monthsUntilWedding"`
	ConfirmedGuests         int                  `json:"confirmedGuests"`
	TotalGuests             int                  `json:"totalGuests"`
	OpenTasks               int                  `json:"openTasks"`
	ReceivedGifts           int                  `json:"receivedGifts"`
	ReceivedGiftsPercentage float64              `json:"receivedGiftsPercentage"`
	PendingVendors          int                  `json:"pendingVendors"`
	ContractedVendors       int                  `json:"contractedVendors"`
	UpcomingPayments        []models.Transaction `json:"upcomingPayments"`
	ThisWeekPayments        []models.Transaction `json:"thisWeekPayments"`
	ThisWeekTasks           []models.Task        `json:"thisWeekTasks"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error"`
}

// RegisterDashboardRoutes registers the routes for the dashboard.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetDashboard)
}

// @Summary		Dashboard
// @Description	Returns the aggregated numbers for the overview page
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	data := co.Store.Data()
	now := time.Now()

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		TotalBudget:             data.Budget.Total,
		TotalSpent:              data.TotalSpent(),
		TotalPaid:               data.TotalPaid(),
		RemainingBudget:         data.RemainingBudget(),
		ActualBalance:           data.ActualBalance(),
		SpentPercentage:         data.SpentPercentage(),
		MonthsUntilWedding:      data.MonthsUntilWedding(now),
		ConfirmedGuests:         data.ConfirmedGuestCount(),
		TotalGuests:             data.TotalGuestCount(),
		OpenTasks:               data.OpenTaskCount(),
		ReceivedGifts:           data.ReceivedGiftCount(),
		ReceivedGiftsPercentage: data.ReceivedGiftsPercentage(),
		PendingVendors:          len(data.PendingVendors()),
		ContractedVendors:       len(data.ContractedVendors()),
		UpcomingPayments:        data.UpcomingPayments(upcomingPaymentsLimit),
		ThisWeekPayments:        data.ThisWeekPayments(now),
		ThisWeekTasks:           data.ThisWeekTasks(now),
	}})
}
