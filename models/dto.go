package models

type RegisterRequest struct {
	Username  string `form:"username" json:"username"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type CommentRequest struct {
	Content string `form:"content" json:"content"`
}

type ProfileRequest struct {
	Bio       string `form:"bio" json:"bio"`
	Location  string `form:"location" json:"location"`
	Website   string `form:"website" json:"website"`
	Phone     string `form:"phone" json:"phone"`
	Avatar    string `form:"avatar" json:"avatar"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
}

type PageParams struct {
	Page int `form:"page,default=1"`
}

type SearchParams struct {
	Query string `form:"q"`
	Page  int    `form:"page,default=1"`
}

// CommentPayload is the AJAX response body for a newly created comment.
type CommentPayload struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
