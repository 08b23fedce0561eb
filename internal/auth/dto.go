package auth

// LoginDTO is the transport shape for login requests on both surfaces.
type LoginDTO struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by the API login endpoint alongside the cookie.
type LoginResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
}
