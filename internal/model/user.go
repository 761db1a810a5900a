package model

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// UserInput is the decoded body of POST/PUT /users requests. Fields are
// pointers so that an omitted key can be told apart from a zero value.
type UserInput struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}
