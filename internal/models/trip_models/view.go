package trip_models

// ViewState names the screen the front end should render. Transitions are
// triggered by explicit user actions only; there are no timers.
type ViewState string

const (
	ViewSearch    ViewState = "search"
	ViewLoading   ViewState = "loading"
	ViewList      ViewState = "list"
	ViewDetail    ViewState = "detail"
	ViewItinerary ViewState = "itinerary"
	ViewWizard    ViewState = "wizard"
)

// ParseViewState validates a client-supplied view name.
func ParseViewState(s string) (ViewState, bool) {
	switch v := ViewState(s); v {
	case ViewSearch, ViewLoading, ViewList, ViewDetail, ViewItinerary, ViewWizard:
		return v, true
	default:
		return "", false
	}
}
