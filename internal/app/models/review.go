package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID     primitive.ObjectID `json:"patientId" bson:"patient"`
	DoctorID      primitive.ObjectID `json:"doctorId" bson:"doctor"`
	DepartmentID  primitive.ObjectID `json:"departmentId" bson:"department"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointment"`
	Rating        float64            `json:"rating" bson:"rating"`
	Feedback      string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	TimeModel     `bson:",inline"`
}
