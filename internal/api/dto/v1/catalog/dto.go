package catalog

import (
	cat "devfolio/internal/catalog"
)

// ListQuery holds the optional filters for the catalog listing
type ListQuery struct {
	Category       string `form:"category" binding:"omitempty,techcategory"`
	MinProficiency int    `form:"min_proficiency" binding:"omitempty,min=0,max=100"`
}

// ListResponse is the catalog listing payload
type ListResponse struct {
	Technologies []cat.Technology `json:"technologies"`
	Total        int              `json:"total"`
}
