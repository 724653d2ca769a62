package request_models

// EmailChecklistRequest delivers the checklist to the visitor's inbox.
type EmailChecklistRequest struct {
	To string `json:"to" binding:"required,email"`
}
