package dto

type CreateCommentDto struct {
	Content string `json:"content" binding:"required,min=1"`
}

type CreateReplyDto struct {
	Content string `json:"content" binding:"required,min=1"`
}
