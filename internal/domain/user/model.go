package user

// User is a placeholder identity. Password holds a bcrypt hash.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type CreateInput struct {
	Username string `validate:"required,min=3,max=32,username"`
	Password string `validate:"required,min=4,max=72"`
}
