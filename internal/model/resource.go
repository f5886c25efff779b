package model

import "time"

// ResourceType distinguishes the kinds of bookable resources.  Vehicles
// additionally require a destination on every reservation.
type ResourceType string

const (
	ResourceRoom    ResourceType = "ROOM"
	ResourceVehicle ResourceType = "VEHICLE"
)

// ResourceStatus is the catalog-owned lifecycle state of a resource.  Only
// AVAILABLE resources accept new reservations; the scheduling engine never
// mutates this field.
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "AVAILABLE"
	ResourceUnavailable ResourceStatus = "UNAVAILABLE"
	ResourceMaintenance ResourceStatus = "MAINTENANCE"
	ResourceBooked      ResourceStatus = "BOOKED"
)

// Resource describes a bookable entity (a room or a vehicle).  The record
// is owned by the resource catalog; this service reads it to gate
// reservation creation and to render slot availability.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human-readable resource name.
//  Type        – ROOM or VEHICLE.
//  Status      – catalog availability state.
//  Description – optional free-text details.
//  CreatedAt   – creation timestamp.
type Resource struct {
	ID          uint64         `json:"id"`          // resources.id
	Name        string         `json:"name"`        // resources.name
	Type        ResourceType   `json:"type"`        // resources.type
	Status      ResourceStatus `json:"status"`      // resources.status
	Description *string        `json:"description,omitempty"` // resources.description (nullable)
	CreatedAt   time.Time      `json:"created_at"`  // resources.created_at
}
