package dto

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. No token is issued;
// callers re-authenticate per request.
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
