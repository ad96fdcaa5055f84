package entities

type AdminUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type LoginResponse struct {
	User  AdminUser `json:"user"`
	Token string    `json:"token"`
}

type VerifyResponse struct {
	User AdminUser `json:"user"`
}
