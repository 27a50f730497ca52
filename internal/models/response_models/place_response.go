package response_models

import "time"

type PlaceResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	OwnerID     string            `json:"owner_id"`
	Owner       *UserResponse     `json:"owner,omitempty"`
	Amenities   []AmenityResponse `json:"amenities"`
	Reviews     []ReviewResponse  `json:"reviews"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
