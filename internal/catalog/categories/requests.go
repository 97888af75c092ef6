package categories

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ParentID    *int    `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *int    `json:"parent_id"`
}
