package booking

import "glowbook/models"

// canPerformCart reports whether a staff member may perform every service
// in the cart. A staff member with no allow-lists at all is eligible for
// nothing; the search must not silently assign unqualified staff. The
// virtual "no preference" provider bypasses this filter entirely.
func canPerformCart(staff models.Staff, cart []models.Service) bool {
	for _, svc := range cart {
		if !staff.Capabilities.CanPerform(svc) {
			return false
		}
	}
	return true
}
