package application

type SubmitApplicationRequest struct {
	Email           string   `json:"email" binding:"required,email"`
	Name            string   `json:"name" binding:"required"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	ExperienceYears int      `json:"experienceYears"`
	Resume          string   `json:"resume"`
}
