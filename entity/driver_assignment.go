package entity

import (
	"time"

	"gorm.io/gorm"
)

// AssignmentStatus is the closed set of states a delivery assignment
// moves through. It is independent of OrderStatus: "accepted" here means
// the driver accepted the job, not that the restaurant accepted the order.
type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentDelivered AssignmentStatus = "delivered"
	AssignmentRejected  AssignmentStatus = "rejected"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentAssigned, AssignmentAccepted, AssignmentPickedUp,
		AssignmentDelivered, AssignmentRejected:
		return true
	default:
		return false
	}
}

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentDelivered || s == AssignmentRejected
}

// driverAssignmentStatuses is the subset a driver may request; "assigned"
// is only ever set by the admin creating the assignment.
var driverAssignmentStatuses = map[AssignmentStatus]bool{
	AssignmentAccepted:  true,
	AssignmentPickedUp:  true,
	AssignmentDelivered: true,
	AssignmentRejected:  true,
}

// DriverSettable reports whether a driver may request s.
func (s AssignmentStatus) DriverSettable() bool {
	return driverAssignmentStatuses[s]
}

// assignmentTransitions is the legal-successor table. rejected is reachable
// from every non-terminal state; same-status re-requests are allowed.
var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentAssigned: {AssignmentAccepted, AssignmentRejected},
	AssignmentAccepted: {AssignmentPickedUp, AssignmentRejected},
	AssignmentPickedUp: {AssignmentDelivered, AssignmentRejected},
}

// CanTransition reports whether to is a legal successor of s.
func (s AssignmentStatus) CanTransition(to AssignmentStatus) bool {
	if s == to {
		return true
	}
	for _, next := range assignmentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// DriverAssignment binds one driver to one order for delivery. The unique
// index on OrderID keeps at most one live assignment per order; replacing
// the driver is an upsert on that key, not delete-then-insert.
type DriverAssignment struct {
	gorm.Model
	Status AssignmentStatus `gorm:"size:32;default:assigned" json:"status"`

	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	DriverID uint   `gorm:"index" json:"driverId"`
	Driver   Driver `json:"-"`
}
