package response_models

// SessionResponse describes the view state machine for the front end.
type SessionResponse struct {
	View               string `json:"view"`
	Destination        string `json:"destination"`
	SelectedActivityID string `json:"selected_activity_id,omitempty"`
}
