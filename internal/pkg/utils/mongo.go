package utils

import (
	"shifa-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
)

// ToBsonSetDocument flattens a model into the document used with $set,
// dropping _id so updates never touch the immutable field.
func ToBsonSetDocument(model interface{}) (bson.M, error) {
	data, err := bson.Marshal(model)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	delete(doc, "_id")
	return doc, nil
}
