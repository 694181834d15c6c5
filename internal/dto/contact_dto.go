package dto

import "github.com/google/uuid"

type ContactInquiryRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Company  string `json:"company" validate:"max=200"`
	Email    string `json:"email" validate:"required,site_email"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Subject  string `json:"subject" validate:"required,max=200"`
	Message  string `json:"message" validate:"max=5000"`
	Website  string `json:"website" validate:"max=100"`
}

type ContactInquiryResponse struct {
	Id uuid.UUID `json:"id"`
}

type JobApplicationRequest struct {
	JobId    string `json:"job_id"`
	JobTitle string `json:"job_title" validate:"required,max=200"`
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,site_email"`
	Phone    string `json:"phone" validate:"max=50"`
	LinkedIn string `json:"linkedin" validate:"max=300"`
	Message  string `json:"message" validate:"max=5000"`
}
