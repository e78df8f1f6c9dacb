package utils

import (
	"testing"

	"shifa-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToBsonSetDocument(t *testing.T) {
	department := &models.Department{
		ID:     primitive.NewObjectID(),
		Name:   "Cardiology",
		NameAr: "أمراض القلب",
	}

	doc, err := ToBsonSetDocument(department)
	require.NoError(t, err)

	assert.NotContains(t, doc, "_id")
	assert.Equal(t, "Cardiology", doc["name"])
	assert.Equal(t, "أمراض القلب", doc["nameAr"])
}
