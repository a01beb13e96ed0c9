package dto

type CreateUserRequest struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	Role                  string `json:"role"`
	RequirePasswordChange bool   `json:"requirePasswordChange"`
}

// UpdateUserRequest uses pointers so absent fields are distinguishable
// from zero values; only supplied fields are merged into the document.
type UpdateUserRequest struct {
	Name                  *string `json:"name"`
	Email                 *string `json:"email"`
	Password              *string `json:"password"`
	Role                  *string `json:"role"`
	IsActive              *bool   `json:"isActive"`
	RequirePasswordChange *bool   `json:"requirePasswordChange"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
