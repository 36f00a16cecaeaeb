package dto

// SetDefaultRequest selects which email or phone of a contact becomes the default.
type SetDefaultRequest struct {
	Index *int `json:"index" binding:"required,min=0"`
}
