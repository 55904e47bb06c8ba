package services

import (
	"context"
	"sort"
	"strings"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
)

const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"

	DefaultMaxPrice = 2000
)

type MenuFilter struct {
	Search       string
	Cuisines     []string
	DietaryTypes []string
	MealTypes    []string
	MinPrice     float64
	MaxPrice     float64
	MinRating    float64
	Sort         string
}

type MenuService struct {
	repos *repository.Repositories
}

func NewMenuService(repos *repository.Repositories) *MenuService {
	return &MenuService{repos: repos}
}

// Menu is the storefront view of one branch.
func (s *MenuService) Menu(ctx context.Context, branchID string, f MenuFilter) ([]models.Dish, error) {
	if _, ok := models.FindBranch(branchID); !ok {
		return nil, ErrNotFound
	}
	dishes, err := s.repos.Dishes.ListForMenu(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return FilterMenu(dishes, f), nil
}

// FilterMenu applies search, facet, price and rating filters, then sorts.
func FilterMenu(dishes []models.Dish, f MenuFilter) []models.Dish {
	if f.MaxPrice <= 0 {
		f.MaxPrice = DefaultMaxPrice
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Description), search) &&
			!strings.Contains(strings.ToLower(d.Cuisine), search) {
			continue
		}
		if !inFacet(f.Cuisines, d.Cuisine) || !inFacet(f.DietaryTypes, d.DietaryType) || !inFacet(f.MealTypes, d.MealType) {
			continue
		}
		if d.Price < f.MinPrice || d.Price > f.MaxPrice {
			continue
		}
		if d.Rating < f.MinRating {
			continue
		}
		out = append(out, d)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// inFacet is true for an empty facet or a case-insensitive match.
func inFacet(facet []string, value string) bool {
	if len(facet) == 0 {
		return true
	}
	for _, f := range facet {
		if strings.EqualFold(f, value) {
			return true
		}
	}
	return false
}
