package framework

// Metadata describes the document head of a rendered page.
type Metadata struct {
	Title       string
	Description string
	OpenGraph   *OpenGraph
}

type OpenGraph struct {
	Type        string
	SiteName    string
	Title       string
	Description string
	URL         string
	Images      []OpenGraphImage
}

type OpenGraphImage struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Description == "" && m.OpenGraph == nil
}
