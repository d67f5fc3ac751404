package dto

// ContactRequest is a public contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ServiceRequest is the "request a service" variant of the contact form.
type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Service     string `json:"service" binding:"required"`
	Description string `json:"description" binding:"required"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
}

// ContactStatusUpdate changes the workflow status of a submission.
type ContactStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
