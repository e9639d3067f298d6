package models

// AnalysisRequest is the payload sent by the prompt affordance when the user
// asks for a page to be analyzed.
type AnalysisRequest struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	WindowID int    `json:"window_id,omitempty"`
}

// Ack is the fire-and-forget acknowledgment returned by coordinator handlers.
type Ack struct {
	Received bool `json:"received"`
}
