package models

// Link is a single anchor on a page: its visible text and href target.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PageContext is a snapshot of everything the detection pipeline reads from a
// loaded page. It is built once per detection run and never persisted; the
// runner owns it for the duration of the run.
type PageContext struct {
	URL      string `json:"url"`
	Hostname string `json:"hostname"`
	Path     string `json:"path"`
	Query    string `json:"query"`

	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	OGDescription   string `json:"og_description"`

	Headings []string `json:"headings"`
	Links    []Link   `json:"links"`

	// ContainerHits lists which of the designated content-container selectors
	// were present on the page (article roles, known legal-content wrappers).
	ContainerHits []string `json:"container_hits,omitempty"`

	IsPDF bool `json:"is_pdf"`
}
