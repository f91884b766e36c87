package entity

// RelatedEntityType names a business record type that references a customer.
type RelatedEntityType string

const (
	RelatedInquiries         RelatedEntityType = "inquiries"
	RelatedPropertyInquiries RelatedEntityType = "property_inquiries"
	RelatedActivities        RelatedEntityType = "activities"
	RelatedAccessGrants      RelatedEntityType = "access_grants"
	RelatedMessageDrafts     RelatedEntityType = "message_drafts"
)

// RelatedEntityTypes lists every entity type that is re-pointed by a merge, in processing order.
func RelatedEntityTypes() []RelatedEntityType {
	return []RelatedEntityType{
		RelatedInquiries,
		RelatedPropertyInquiries,
		RelatedActivities,
		RelatedAccessGrants,
		RelatedMessageDrafts,
	}
}

// IsValid checks if the RelatedEntityType is a known type.
func (t RelatedEntityType) IsValid() bool {
	switch t {
	case RelatedInquiries, RelatedPropertyInquiries, RelatedActivities, RelatedAccessGrants, RelatedMessageDrafts:
		return true
	default:
		return false
	}
}
