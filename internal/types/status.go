package types

// Status is a type for the lifecycle status of a resource (e.g. bulletin) in
// the record store. This is used to determine if it should be included in
// queries, independent of any business-level enabled flag.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)
