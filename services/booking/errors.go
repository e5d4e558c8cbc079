package booking

// Availability hints surfaced to the client alongside an empty slot list.
// "No slots" is a valid empty result, never an error.
const (
	msgNoScheduleForDay   = "Selected staff member does not work on that day"
	msgNoProviderSchedule = "No staff member works on the selected day"
	msgFullyBooked        = "No free slots remain for the selected day"
	msgSalonClosed        = "The salon is closed on the selected day"
)

// Commit rejection reasons carried in the tagged outcome.
const (
	reasonStartInPast     = "requested start is in the past"
	reasonBeyondHorizon   = "requested start is beyond the booking horizon"
	reasonNotCapable      = "selected staff member cannot perform every requested service"
	reasonIntervalTaken   = "requested time was taken by another booking"
	reasonUnknownProvider = "selected staff member does not exist or is inactive"
)
