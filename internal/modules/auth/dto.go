package auth

import "homepro/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResult reports sign-up outcome. ProvisioningDeferred is true when
// the identity exists but the companion customer record could not be written
// yet; GET /auth/me repairs that state on first use.
type RegisterResult struct {
	User                 UserPublic
	Token                string
	ProvisioningDeferred bool
}

type LoginResult struct {
	User  UserPublic
	Token string
}

func publicUser(id, email, name string, role domain.Role) UserPublic {
	return UserPublic{
		ID:    id,
		Role:  string(role),
		Name:  name,
		Email: email,
	}
}
