package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
)

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`
	Error *string        `json:"error"`
}

type BudgetCategoryListResponse struct {
	Data  []models.BudgetCategory `json:"data"`
	Error *string                 `json:"error"`
}

// BudgetTotalEditable are the fields of the budget that can be set
// directly. The categories have their own endpoint.
type BudgetTotalEditable struct {
	Total decimal.Decimal `json:"total" example:"50000"`
}

// BudgetCategoryEditable is one budget category as accepted from
// requests. A category without an ID gets a new one.
type BudgetCategoryEditable struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name" example:"Buffet (Comidas e Bebidas)"`
	Allocation decimal.Decimal `json:"allocation" example:"0.25"`
	Spent      decimal.Decimal `json:"spent" example:"1250.00"`
}

func (editable BudgetCategoryEditable) model() models.BudgetCategory {
	id := editable.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return models.BudgetCategory{
		ID:         id,
		Name:       editable.Name,
		Allocation: editable.Allocation,
		Spent:      editable.Spent,
	}
}

// RegisterBudgetRoutes registers the routes for the budget.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetBudget)
	r.PATCH("", co.UpdateBudgetTotal)

	r.OPTIONS("/categories", httputil.OptionsGetPut)
	r.GET("/categories", co.GetBudgetCategories)
	r.PUT("/categories", co.UpdateBudgetCategories)
}

// @Summary		Get budget
// @Description	Returns the budget total and its categories
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	data := co.Store.Data()
	c.JSON(http.StatusOK, BudgetResponse{Data: &data.Budget})
}

// @Summary		Update budget
// @Description	Sets the budget total
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			budget	body	BudgetTotalEditable	true	"Budget"
// @Router			/v1/budget [patch]
func (co Controller) UpdateBudgetTotal(c *gin.Context) {
	editable, err := httputil.BindData[BudgetTotalEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if err := co.Store.UpdateBudgetTotal(editable.Total); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	c.JSON(http.StatusOK, BudgetResponse{Data: &data.Budget})
}

// @Summary		Get budget categories
// @Description	Returns all budget categories
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetCategoryListResponse
// @Router			/v1/budget/categories [get]
func (co Controller) GetBudgetCategories(c *gin.Context) {
	data := co.Store.Data()
	c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: data.Budget.Categories})
}

// @Summary		Replace budget categories
// @Description	Replaces all budget categories. Allocations are normalized to sum up to 1
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200	{object}	BudgetCategoryListResponse
// @Failure		400	{object}	BudgetCategoryListResponse
// @Failure		500	{object}	BudgetCategoryListResponse
// @Param			categories	body	[]BudgetCategoryEditable	true	"Categories"
// @Router			/v1/budget/categories [put]
func (co Controller) UpdateBudgetCategories(c *gin.Context) {
	editables, err := httputil.BindData[[]BudgetCategoryEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{Error: &s})
		return
	}

	categories := make([]models.BudgetCategory, 0, len(editables))
	for _, editable := range editables {
		categories = append(categories, editable.model())
	}

	if err := co.Store.UpdateBudgetCategories(categories); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: data.Budget.Categories})
}
