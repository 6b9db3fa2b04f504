package api

// RephraseRequest defines the payload for the rephrase endpoint.
// Content is a pointer so that an absent field can be told apart from an
// empty string; both null and missing fail validation.
type RephraseRequest struct {
	Content *string `json:"content" validate:"required"`
}

// RephraseResponse defines the successful response for the rephrase endpoint.
type RephraseResponse struct {
	// Rephrased is the backend output, unmodified
	Rephrased string `json:"rephrased"`
}

// MessageResponse defines the liveness response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LivenessMessage is the fixed body of the root endpoint.
const LivenessMessage = "API is live!"
