package dto

// CreateResearchRequest carries the multipart form fields of a new research
// paper. The PDF arrives as the `pdfFile` part and is mandatory.
type CreateResearchRequest struct {
	Title         string   `form:"title" json:"title"`
	Description   string   `form:"description" json:"description"`
	PublishedDate string   `form:"publishedDate" json:"publishedDate" example:"2023-11-15"`
	Publisher     string   `form:"publisher" json:"publisher"`
	Authors       []string `form:"authors" json:"authors"`
	DOI           string   `form:"doi" json:"doi"`
	Tags          []string `form:"tags" json:"tags"`
}

// UpdateResearchRequest uses pointer scalars and nilable slices; nil keeps
// the stored value, a present slice replaces it wholesale.
type UpdateResearchRequest struct {
	Title         *string  `form:"title" json:"title"`
	Description   *string  `form:"description" json:"description"`
	PublishedDate *string  `form:"publishedDate" json:"publishedDate"`
	Publisher     *string  `form:"publisher" json:"publisher"`
	Authors       []string `form:"authors" json:"authors"`
	DOI           *string  `form:"doi" json:"doi"`
	Tags          []string `form:"tags" json:"tags"`
}
