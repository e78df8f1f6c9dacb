package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReportData is the AI-generated body of an analytics report.
type ReportData struct {
	Overview      string   `json:"overview" bson:"overview"`
	Pros          []string `json:"pros,omitempty" bson:"pros,omitempty"`
	Cons          []string `json:"cons,omitempty" bson:"cons,omitempty"`
	AverageRating float64  `json:"averageRating" bson:"averageRating"`
	TotalReviews  int      `json:"totalReviews" bson:"totalReviews"`
}

// ReportCache stores one generated report per {type, from, to} key.
type ReportCache struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	From      string             `json:"from" bson:"from"`
	To        string             `json:"to" bson:"to"`
	Data      ReportData         `json:"data" bson:"data"`
	TimeModel `bson:",inline"`
}
