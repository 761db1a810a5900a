package model

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	Completed   bool   `json:"completed"`
}

// TaskInput is the decoded body of POST/PUT /tasks requests. Omitted keys
// stay nil; on update they keep the previous value of the field.
type TaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
	Completed   *bool   `json:"completed"`
}
