package admin

type ReviewApplicationRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
