package dto

// InterestProjectionRequest defines the structure for projecting daily
// interest over a horizon of whole days.
type InterestProjectionRequest struct {
	AccountName string `json:"accountName" validate:"required"`
	Days        uint32 `json:"days"`
}
