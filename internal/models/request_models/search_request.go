package request_models

// SearchRequest carries the human-entered destination selection, e.g.
// "Key West, Florida".
type SearchRequest struct {
	Destination string `json:"destination" binding:"required"`
}
