package model

// ThreadDetail is the full display tree for one thread. It is a read-only
// projection rebuilt on every request; dates are already rendered as RFC3339
// strings because nothing past this point should interpret them.
type ThreadDetail struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Date     string        `json:"date"`
	Username string        `json:"username"`
	Comments []CommentView `json:"comments"`
}

type CommentView struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Date      string      `json:"date"`
	Content   string      `json:"content"`
	LikeCount int64       `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}

type ReplyView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}
