package request_models

// ViewRequest names the screen the user navigated to.
type ViewRequest struct {
	View string `json:"view" binding:"required"`
}

// SelectActivityRequest opens an activity in the detail view.
type SelectActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
}
