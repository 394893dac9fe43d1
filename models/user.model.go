package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"default:''"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Photo        string `json:"photo" gorm:"default:''"`
	IsInstructor bool   `json:"isInstructor" gorm:"default:false"`
	IsAdmin      bool   `json:"isAdmin" gorm:"default:false"`

	// TakenClass holds tentative seat reservations (pre-payment),
	// EnrolledClass holds confirmed enrollments. Both are ordered lists
	// of class ids; TakenClass is not deduplicated.
	TakenClass    datatypes.JSONSlice[string] `json:"takenClass"`
	EnrolledClass datatypes.JSONSlice[string] `json:"enrolledClass"`

	IsDeleted bool `json:"-" gorm:"default:false"`
}
