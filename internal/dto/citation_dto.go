package dto

import "woodshop-assistant-be/pkg/citation"

// LinksRequest is the union body of the two-phase citation endpoint.
// Phase 1 sends {context, query}; phase 2 sends {answer}.
type LinksRequest struct {
	Context string `json:"context,omitempty"`
	Query   string `json:"query,omitempty"`
	Answer  string `json:"answer,omitempty"`
}

func (r *LinksRequest) IsStagePhase() bool {
	return r.Context != "" && r.Query != ""
}

func (r *LinksRequest) IsExtractPhase() bool {
	return r.Answer != ""
}

// StageContextResponse is the phase-1 acknowledgement. Shape is preserved
// bit-for-bit for the existing frontend.
type StageContextResponse struct {
	Status     string `json:"status"`
	HasContext bool   `json:"hasContext"`
}

type ProductDTO struct {
	Id    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Link  string   `json:"link"`
}

// ExtractCitationsResponse is the phase-2 result. Always delivered with a
// success status; failures degrade to empty collections.
type ExtractCitationsResponse struct {
	VideoReferences map[string]citation.VideoReference `json:"videoReferences"`
	RelatedProducts []ProductDTO                       `json:"relatedProducts"`
	Status          string                             `json:"status"`
	HasContext      *bool                              `json:"hasContext,omitempty"`
}

// EmptyCitationsResponse is the degraded (or no-op) phase-2 result.
func EmptyCitationsResponse(hasContext *bool) *ExtractCitationsResponse {
	return &ExtractCitationsResponse{
		VideoReferences: map[string]citation.VideoReference{},
		RelatedProducts: []ProductDTO{},
		Status:          "success",
		HasContext:      hasContext,
	}
}
