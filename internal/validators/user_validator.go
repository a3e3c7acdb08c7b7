package validators

type SignupForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

func DuplicateUsername(username string) *FieldError {
	return &FieldError{
		Field:   "username",
		Message: username + " is already taken",
	}
}
