package models

import "gorm.io/gorm"

// Class status values, admin-settable via PATCH /updateStatus.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type Class struct {
	gorm.Model
	// ClassID is the canonical string id used everywhere a class is
	// referenced: routes, user reservation/enrollment lists, payments.
	// Assigned once at creation, never changed.
	ClassID         string  `json:"classId" gorm:"uniqueIndex;not null"`
	Name            string  `json:"className" gorm:"not null"`
	Image           string  `json:"classImage" gorm:"default:''"`
	InstructorName  string  `json:"instructorName" gorm:"default:''"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index"`
	Price           float64 `json:"price" gorm:"default:0"`
	AvailableSeat   int     `json:"availableSeat" gorm:"default:0"`
	StudentEnrolled int     `json:"studentEnrolled" gorm:"default:0"`
	Status          string  `json:"status" gorm:"default:'pending'"`
	Feedback        string  `json:"feedback" gorm:"default:''"`
	IsDeleted       bool    `json:"-" gorm:"default:false"`
}
