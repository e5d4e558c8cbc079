package handlers

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	Booking  *BookingHandler
	Calendar *CalendarHandler
	Staff    *StaffHandler
	Client   *ClientHandler
	Catalog  *CatalogHandler
}
