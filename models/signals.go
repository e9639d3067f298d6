package models

// URLSignals is evidence derived from the URL alone.
type URLSignals struct {
	PathMatch  bool `json:"path_match"`
	QueryMatch bool `json:"query_match"`
	IsPDF      bool `json:"is_pdf"`
}

// MetaSignals is evidence derived from the document title and description tags.
type MetaSignals struct {
	TitleMatch bool `json:"title_match"`
	MetaMatch  bool `json:"meta_match"`
}

// DOMSignals is evidence derived from page structure.
type DOMSignals struct {
	HeadingMatch   bool `json:"heading_match"`
	LinkMatch      bool `json:"link_match"`
	ContainerMatch bool `json:"container_match"`
}

// PDFSignals is evidence that the page is a PDF with a terms-like title.
type PDFSignals struct {
	IsPDFURL      bool `json:"is_pdf_url"`
	PDFTitleMatch bool `json:"pdf_title_match"`
}

// SaaSSignals is evidence that the hosting site sells software as a service.
type SaaSSignals struct {
	HostMatch    bool `json:"host_match"`
	PathMatch    bool `json:"path_match"`
	LinkMatch    bool `json:"link_match"`
	MetaMatch    bool `json:"meta_match"`
	SaaSDetected bool `json:"saas_detected"`
}

// SignalSet groups all independently computed signal categories for one
// detection run. Every field is a pure function of the PageContext and the
// static vocabulary tables; no category depends on another.
type SignalSet struct {
	URL         URLSignals  `json:"url"`
	Meta        MetaSignals `json:"meta"`
	DOM         DOMSignals  `json:"dom"`
	PDF         PDFSignals  `json:"pdf"`
	SaaS        SaaSSignals `json:"saas"`
	Blocklisted bool        `json:"blocklisted"`
}
