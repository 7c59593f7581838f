package gemini

// Request/response shapes for the generateContent endpoint, limited to the
// fields this service uses.

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type GenerateContentRequest struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text returns the first candidate's first text part, or "" when the
// response carries no usable text.
func (r *GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
