package dto

type CreateThreadDto struct {
	Title string `json:"title" binding:"required,min=1"`
	Body  string `json:"body" binding:"required,min=1"`
}
