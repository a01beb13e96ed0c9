package dto

type CreateAdminRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	University string `json:"university"`
	Status     string `json:"status"`
}

type CreateSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

type UpdateAdminRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	University *string `json:"university"`
	Status     *string `json:"status"`
}
