package update_booking_status

// UpdateStatusRequest is the HTTP request model for a lifecycle transition
type UpdateStatusRequest struct {
	Status string `json:"status"`
	// AssignedUnitIDs are the concrete rental units assigned by staff when
	// confirming the booking
	AssignedUnitIDs []string `json:"assignedUnitIds,omitempty"`
}
