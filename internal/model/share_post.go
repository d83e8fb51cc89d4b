package model

type SharePostDTO struct {
	Name      string `json:"name" validate:"required,max=25"`
	EmailFrom string `json:"email_from" validate:"required,email"`
	EmailTo   string `json:"email_to" validate:"required,email"`
	Comments  string `json:"comments" validate:"omitempty,max=2000"`
}
