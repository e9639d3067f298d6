package models

// ScoreBreakdown records the weighted per-category scores behind a verdict,
// mirroring the signal categories for explainability.
type ScoreBreakdown struct {
	URLScore  int `json:"url_score"`
	MetaScore int `json:"meta_score"`
	DOMScore  int `json:"dom_score"`
	PDFScore  int `json:"pdf_score"`
	Total     int `json:"total"`
}

// DetectionResult is the immutable outcome of one detection run.
type DetectionResult struct {
	// ContractDetected is the final decision: a terms page on a SaaS product.
	ContractDetected bool `json:"contract_detected"`
	// ContractPageDetected is the legal-page verdict alone.
	ContractPageDetected bool `json:"contract_page_detected"`
	// SaaSProductDetected is the SaaS-product verdict alone.
	SaaSProductDetected bool `json:"saas_product_detected"`

	Signals SignalSet      `json:"signals"`
	Scores  ScoreBreakdown `json:"scores"`

	PageTitle string `json:"page_title"`
	URL       string `json:"url"`
}

// StoredDetection is the persisted "last detection" slot: the most recent
// DetectionResult together with the originating tab and a timestamp.
// Single slot, overwritten wholesale, last write wins across tabs.
type StoredDetection struct {
	DetectionResult
	TabID     int   `json:"tab_id"`
	Timestamp int64 `json:"timestamp"`
}

// AnalysisContext records which page the user asked to analyze. Written when
// the prompt is accepted, read once by the presentation surface at open time,
// superseded by the next request.
type AnalysisContext struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// IndicatorState is the per-tab badge reflecting the latest detection outcome.
type IndicatorState struct {
	Shown bool   `json:"shown"`
	Text  string `json:"text"`
	Color string `json:"color"`
}
