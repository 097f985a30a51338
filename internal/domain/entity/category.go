// Package entity contains the core business objects of the project.
package entity

import "time"

// Category is a top-level catalogue section owned by the backend.
type Category struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	ProductCount  int            `json:"product_count"`
	SubCategories []*SubCategory `json:"subcategories"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// SubCategory belongs to exactly one parent Category.
type SubCategory struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryDraft is the form payload of a category create or edit.
type CategoryDraft struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Image       *ImageUpload `json:"-"`
}

// SubCategoryDraft is the form payload of a subcategory create or edit.
type SubCategoryDraft struct {
	CategoryID  string       `json:"category_id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Image       *ImageUpload `json:"-"`
}
