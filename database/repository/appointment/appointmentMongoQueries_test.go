package appointmentRepo

import (
	"testing"
	"time"

	"codabs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter_Empty(t *testing.T) {
	filter := buildListFilter(models.AppointmentQuery{})
	assert.Empty(t, filter)
}

func TestBuildListFilter_Search(t *testing.T) {
	filter := buildListFilter(models.AppointmentQuery{Search: "jane"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 4)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		for field, value := range clause {
			fields = append(fields, field)
			regex, ok := value.(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, "jane", regex.Pattern)
			assert.Equal(t, "i", regex.Options)
		}
	}
	assert.ElementsMatch(t, []string{"name", "email", "phone", "message"}, fields)
}

func TestBuildListFilter_Status(t *testing.T) {
	filter := buildListFilter(models.AppointmentQuery{Status: models.AppointmentAccepted})
	assert.Equal(t, models.AppointmentAccepted, filter["status"])

	// Unknown statuses are ignored rather than producing an empty result set.
	filter = buildListFilter(models.AppointmentQuery{Status: "bogus"})
	assert.NotContains(t, filter, "status")
}

func TestBuildListFilter_DateRange(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local)

	filter := buildListFilter(models.AppointmentQuery{DateFrom: &from, DateTo: &to})
	date, ok := filter["date"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, from, date["$gte"])
	assert.Equal(t, to, date["$lte"])

	filter = buildListFilter(models.AppointmentQuery{DateFrom: &from})
	date = filter["date"].(bson.M)
	assert.Equal(t, from, date["$gte"])
	assert.NotContains(t, date, "$lte")
}
