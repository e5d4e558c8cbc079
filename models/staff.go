package models

// AnyProviderID is the virtual "no preference" provider. It bypasses the
// capability filter and triggers multi-provider search.
const AnyProviderID = "any"

// Capabilities lists what a staff member is allowed to perform. A service
// is allowed when its id appears in ServiceIDs or its category appears in
// CategoryIDs. Both lists empty means the staff member is eligible for
// nothing (fail-closed).
type Capabilities struct {
	ServiceIDs  []string `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	CategoryIDs []string `bson:"categoryIds,omitempty" json:"categoryIds,omitempty"`
}

// CanPerform applies the allow-lists to a single catalog service.
func (c Capabilities) CanPerform(svc Service) bool {
	for _, id := range c.ServiceIDs {
		if id == svc.ID {
			return true
		}
	}
	for _, id := range c.CategoryIDs {
		if id == svc.CategoryID {
			return true
		}
	}
	return false
}

// Staff is a salon service provider.
type Staff struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Active       bool         `bson:"active" json:"active"`
	Capabilities Capabilities `bson:"capabilities" json:"capabilities"`
	FCMToken     string       `bson:"fcmToken,omitempty" json:"-"`
}
