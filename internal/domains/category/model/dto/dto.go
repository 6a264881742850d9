package dto

import (
	"halachi/internal/domains/category/model"
	"halachi/shared/constant"
)

type SaveCategoryRequest struct {
	ID    string `json:"id"    validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ToModel fills in the default icon and color. Order is assigned by the repository.
func (r *SaveCategoryRequest) ToModel() model.Category {
	category := model.Category{
		ID:    r.ID,
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}

	if category.Icon == constant.Empty {
		category.Icon = constant.DefaultCategoryIcon
	}

	if category.Color == constant.Empty {
		category.Color = constant.DefaultCategoryColor
	}

	return category
}
