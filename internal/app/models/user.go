package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shift describes a weekly working window for doctors, nurses and staff.
// Times are "HH:mm" strings, days lowercase english day names.
type Shift struct {
	Days      []string `json:"days" bson:"days"`
	StartTime string   `json:"startTime" bson:"startTime"`
	EndTime   string   `json:"endTime" bson:"endTime"`
}

// User is a single collection discriminated by Role. Variant fields are
// nullable and only set for the roles that carry them.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Role     string             `json:"role" bson:"role"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Phone    string             `json:"phone" bson:"phone"`
	Gender   string             `json:"gender,omitempty" bson:"gender,omitempty"`

	// Doctor, Nurse and Staff
	DepartmentID *primitive.ObjectID `json:"departmentId,omitempty" bson:"departmentId,omitempty"`
	Shift        *Shift              `json:"shift,omitempty" bson:"shift,omitempty"`

	// Doctor only
	Specialization   string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	SpecializationAr string `json:"specializationAr,omitempty" bson:"specializationAr,omitempty"`
	AppointmentCount int    `json:"appointmentCount,omitempty" bson:"appointmentCount,omitempty"`

	// Staff only
	JobTitle   string `json:"jobTitle,omitempty" bson:"jobTitle,omitempty"`
	JobTitleAr string `json:"jobTitleAr,omitempty" bson:"jobTitleAr,omitempty"`

	// Patient only
	BirthDate *time.Time `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	BloodType string     `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Allergies []string   `json:"allergies,omitempty" bson:"allergies,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.Role == "Doctor"
}

func (u *User) IsPatient() bool {
	return u.Role == "Patient"
}
