package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Notification struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RecipientID primitive.ObjectID `json:"recipientId" bson:"recipient"`
	Title       string             `json:"title" bson:"title"`
	TitleAr     string             `json:"titleAr,omitempty" bson:"titleAr,omitempty"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	MessageAr   string             `json:"messageAr,omitempty" bson:"messageAr,omitempty"`
	Read        bool               `json:"read" bson:"read"`
	Hidden      bool               `json:"hidden" bson:"hidden"`
	TimeModel   `bson:",inline"`
}
