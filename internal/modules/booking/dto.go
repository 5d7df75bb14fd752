package booking

type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	TechnicianID  string `json:"technicianId" binding:"required"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Description   string `json:"description"`
}

type RateBookingRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}
