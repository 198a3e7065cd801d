package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// BudgetCategory is a slice of the budget with a name and a share.
type BudgetCategory struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Allocation decimal.Decimal `json:"allocation"` // fraction of the total, 0 to 1
	Spent      decimal.Decimal `json:"spent"`
}

// Budget is the total amount available for the wedding and its split into
// categories.
type Budget struct {
	Total      decimal.Decimal  `json:"total"`
	Categories []BudgetCategory `json:"categories"`
}

// WeddingPackage is a service package selectable during initial setup.
type WeddingPackage struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// InitialPackages is the catalog of packages offered during setup.
var InitialPackages = []WeddingPackage{
	{Key: "aluguel_espaco", Label: "Aluguel do Espaço"},
	{Key: "buffet", Label: "Buffet (Comidas e Bebidas)"},
	{Key: "decoracao", Label: "Decoração"},
	{Key: "fotografia", Label: "Fotografia"},
	{Key: "video", Label: "Vídeo"},
	{Key: "storymaker", Label: "Storymaker"},
	{Key: "trajes", Label: "Trajes Noiva e Noivo"},
	{Key: "musica", Label: "Música"},
	{Key: "contingencia", Label: "Contingência (Reserva)"},
	{Key: "papelaria", Label: "Papelaria"},
	{Key: "cerimonialista", Label: "Cerimonialista"},
	{Key: "outros", Label: "Outros (especificar)"},
}

// BaseWeights assigns every package its share of the budget. The weights
// are relative, the allocations derived from them are normalized to sum
// up to 1.
var BaseWeights = map[string]int64{
	"aluguel_espaco": 20,
	"buffet":         25,
	"decoracao":      15,
	"fotografia":     10,
	"video":          8,
	"storymaker":     5,
	"trajes":         7,
	"musica":         5,
	"contingencia":   5,
	"papelaria":      2,
	"cerimonialista": 8,
	"outros":         3,
}

// allocationTolerance is the deviation from 1 that a category allocation
// sum may have without being normalized again.
var allocationTolerance = decimal.NewFromFloat(0.0001)

// NormalizeAllocations rescales the category allocations proportionally so
// that they sum up to 1. Empty input and a zero allocation sum are
// returned unchanged, as is a sum already within tolerance of 1.
func NormalizeAllocations(categories []BudgetCategory) []BudgetCategory {
	if len(categories) == 0 {
		return categories
	}

	total := decimal.Zero
	for _, category := range categories {
		total = total.Add(category.Allocation)
	}

	if total.LessThanOrEqual(decimal.Zero) || total.Sub(decimal.NewFromInt(1)).Abs().LessThanOrEqual(allocationTolerance) {
		return categories
	}

	normalized := make([]BudgetCategory, len(categories))
	for i, category := range categories {
		category.Allocation = category.Allocation.Div(total)
		normalized[i] = category
	}

	return normalized
}

var whitespace = regexp.MustCompile(`\s+`)

type weightedPackage struct {
	key    string
	label  string
	weight int64
}

// SetupCategories builds the initial budget categories from the packages
// selected during setup. When "outros" is selected together with a custom
// name, the custom name replaces the generic catalog entry.
func SetupCategories(selectedPackages []string, otherPackageName string) []BudgetCategory {
	packages := make([]weightedPackage, 0, len(selectedPackages))
	for _, key := range selectedPackages {
		idx := slices.IndexFunc(InitialPackages, func(p WeddingPackage) bool { return p.Key == key })
		if idx < 0 {
			continue
		}

		catalog := InitialPackages[idx]
		packages = append(packages, weightedPackage{
			key:    catalog.Key,
			label:  catalog.Label,
			weight: BaseWeights[catalog.Key],
		})
	}

	if slices.Contains(selectedPackages, "outros") && otherPackageName != "" {
		idx := slices.IndexFunc(packages, func(p weightedPackage) bool { return p.key == "outros" })
		if idx >= 0 {
			packages = slices.Delete(packages, idx, idx+1)
		}

		packages = append(packages, weightedPackage{
			key:    fmt.Sprintf("outros_%s", whitespace.ReplaceAllString(strings.ToLower(otherPackageName), "_")),
			label:  otherPackageName,
			weight: BaseWeights["outros"],
		})
	}

	var totalWeight int64
	for _, pkg := range packages {
		totalWeight += pkg.weight
	}

	if totalWeight == 0 && len(packages) > 0 {
		totalWeight = int64(len(packages))
	}

	categories := make([]BudgetCategory, 0, len(packages))
	for _, pkg := range packages {
		allocation := decimal.NewFromInt(pkg.weight).Div(decimal.NewFromInt(totalWeight))
		if !allocation.IsPositive() {
			continue
		}

		categories = append(categories, BudgetCategory{
			ID:         uuid.New(),
			Name:       pkg.label,
			Allocation: allocation,
		})
	}

	return NormalizeAllocations(categories)
}

// RemainingBudget returns the budget total minus everything spent.
func (a AppData) RemainingBudget() decimal.Decimal {
	return a.Budget.Total.Sub(a.TotalSpent())
}

// SpentPercentage returns the share of the budget that has been spent, in
// percent. It is 0 when no budget total is set.
func (a AppData) SpentPercentage() float64 {
	if a.Budget.Total.IsZero() {
		return 0
	}

	return a.TotalSpent().Div(a.Budget.Total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// CategoryByID returns the budget category with the given ID.
func (a AppData) CategoryByID(id uuid.UUID) (BudgetCategory, error) {
	for _, category := range a.Budget.Categories {
		if category.ID == id {
			return category, nil
		}
	}

	return BudgetCategory{}, fmt.Errorf("%w budget category matching your query", ErrResourceNotFound)
}

// CategoryByName returns the budget category with the given name. Vendors
// reference their category by name.
func (a AppData) CategoryByName(name string) (BudgetCategory, bool) {
	for _, category := range a.Budget.Categories {
		if category.Name == name {
			return category, true
		}
	}

	return BudgetCategory{}, false
}
