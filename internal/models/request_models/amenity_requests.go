package request_models

type CreateAmenityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
