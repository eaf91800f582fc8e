package domain

type CreateReportRequest struct {
	Name        string  `json:"name" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"lat"`
	Longitude   float64 `json:"longitude" validate:"lng"`
	Address     string  `json:"address"`
	HazardType  string  `json:"hazard_type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	MediaBase64 string  `json:"media_base64"`
	MediaType   string  `json:"media_type"`
}

type UpdateStatusRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=pending reviewed resolved"`
}
