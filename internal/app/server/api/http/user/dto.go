package user

import "ministry/internal/domain/user"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Username string `json:"username" doc:"Unique user name" minLength:"1"`
	Password string `json:"password" doc:"Plain password, stored as a bcrypt hash" minLength:"1"`
}

type output struct {
	Body user.User
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"User ID"`
}

type findInput struct {
	Username string `query:"username" required:"true" doc:"User name to look up"`
}
