package automobile

import "github.com/google/uuid"

// Request is the wire shape for create and update payloads. The
// original-color flag defaults to true when omitted.
type Request struct {
	Name          string `json:"name" validate:"omitempty,max=50"`
	Color         string `json:"color" validate:"omitempty,max=50"`
	OriginalColor *bool  `json:"is_original_color,omitempty"`
}

// Response is the wire shape returned for a single record.
type Response struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	OriginalColor bool      `json:"is_original_color"`
}

func newCreateParams(req Request) CreateParams {
	originalColor := true
	if req.OriginalColor != nil {
		originalColor = *req.OriginalColor
	}

	return CreateParams{
		Name:          req.Name,
		Color:         req.Color,
		OriginalColor: originalColor,
	}
}

func toResponse(a Automobile) Response {
	return Response{
		ID:            a.ID,
		Name:          a.Name,
		Color:         a.Color,
		OriginalColor: a.OriginalColor,
	}
}

func toResponses(automobiles []Automobile) []Response {
	responses := make([]Response, 0, len(automobiles))
	for _, a := range automobiles {
		responses = append(responses, toResponse(a))
	}
	return responses
}
