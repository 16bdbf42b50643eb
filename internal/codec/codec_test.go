package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/studydesk/studydesk/internal/model"
)

func TestRoundTripCourses(t *testing.T) {
	in := []model.Course{
		{ID: "1", Name: "CS101", Time: "9:00 AM - 10:30 AM", Days: "Mon, Wed", Location: "Hall B"},
		{ID: "2", Name: "ENG101", Time: "11:00 AM", Days: "Fri", Location: ""},
	}
	text, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode[model.Course](text)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRoundTripAssignments(t *testing.T) {
	due := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	in := []model.Assignment{
		{ID: "1", Title: "Essay", Course: "ENG101", DueDate: due, Description: "", Completed: false},
		{ID: "2", Title: "Lab 3", Course: "CS101", DueDate: due.Add(48 * time.Hour), Description: "pairs", Completed: true},
	}
	text, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode[model.Assignment](text)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		require.Equal(t, in[i].ID, out[i].ID)
		require.Equal(t, in[i].Title, out[i].Title)
		require.Equal(t, in[i].Course, out[i].Course)
		require.Equal(t, in[i].Description, out[i].Description)
		require.Equal(t, in[i].Completed, out[i].Completed)
		require.True(t, out[i].DueDate.Equal(in[i].DueDate))
	}
}

func TestDecodeEmptyInputYieldsEmptyCollection(t *testing.T) {
	out, err := Decode[model.Course]("")
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)

	out, err = Decode[model.Course]("   ")
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = Decode[model.Course]("[]")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecodeMalformedFailsWhole(t *testing.T) {
	_, err := Decode[model.Course]("{not json")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformed)

	// one assignment with a broken dueDate poisons the whole decode
	_, err = Decode[model.Assignment](`[{"id":"1","title":"ok","dueDate":"2024-05-01T00:00:00Z","completed":false},{"id":"2","title":"bad","dueDate":"not-a-date","completed":false}]`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestEncodeNilCollection(t *testing.T) {
	text, err := Encode[model.Course](nil)
	require.NoError(t, err)
	require.Equal(t, "[]", text)
}
