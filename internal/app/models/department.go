package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Department struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	NameAr         string             `json:"nameAr" bson:"nameAr"`
	Description    string             `json:"description" bson:"description"`
	DescriptionAr  string             `json:"descriptionAr" bson:"descriptionAr"`
	AppointmentFee float64            `json:"appointmentFee" bson:"appointmentFee"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	TimeModel      `bson:",inline"`
}
