package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Prescription struct {
	Medicine string `json:"medicine" bson:"medicine"`
	Dose     string `json:"dose" bson:"dose"`
}

type Appointment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date         time.Time          `json:"date" bson:"date"`
	PatientID    primitive.ObjectID `json:"patientId" bson:"patient"`
	DoctorID     primitive.ObjectID `json:"doctorId" bson:"doctor"`
	DepartmentID primitive.ObjectID `json:"departmentId" bson:"department"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Prescription *Prescription      `json:"prescription,omitempty" bson:"prescription,omitempty"`
	FollowUpDate *time.Time         `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	Status       string             `json:"status" bson:"status"`
	TimeModel    `bson:",inline"`
}
