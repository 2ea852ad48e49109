package dtos

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`

	// Optional Fields (which apply depends on role)
	Skills             string `json:"skills"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest uses pointers so an omitted field leaves the stored
// value untouched.
type ProfileUpdateRequest struct {
	Skills             *string `json:"skills"`
	CompanyName        *string `json:"company_name"`
	CompanyDescription *string `json:"company_description"`
}
