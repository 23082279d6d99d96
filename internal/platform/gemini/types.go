package gemini

// generateRequest is the body posted to the generateContent endpoint.
// The API distinguishes the user content (contents) from the behavioral
// directive (systemInstruction); both are required.
type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction content   `json:"systemInstruction"`
}

// content is a list of message parts, used for both request and response.
type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the success body the client consumes.
// The generated text lives at candidates[0].content.parts[0].text.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// text extracts the generated text from the response, reporting whether
// the expected field was present and non-empty.
func (r *generateResponse) text() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", false
	}
	return parts[0].Text, true
}

// newGenerateRequest builds the request body for one generation call.
func newGenerateRequest(promptText, systemInstruction string) generateRequest {
	return generateRequest{
		Contents: []content{
			{Parts: []part{{Text: promptText}}},
		},
		SystemInstruction: content{
			Parts: []part{{Text: systemInstruction}},
		},
	}
}
