package enums

import "fmt"

// ProductCategory groups menu items the way the storefront renders them.
type ProductCategory string

const (
	ProductCategorySavoryPizza ProductCategory = "Pizza Salgadas"
	ProductCategorySweetPizza  ProductCategory = "Pizza Doces"
	ProductCategoryDrink       ProductCategory = "Bebida"
)

var validProductCategories = []ProductCategory{
	ProductCategorySavoryPizza,
	ProductCategorySweetPizza,
	ProductCategoryDrink,
}

func (p ProductCategory) String() string {
	return string(p)
}

func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
