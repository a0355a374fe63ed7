package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsNumberAndString(t *testing.T) {
	var n FlexInt
	require.NoError(t, json.Unmarshal([]byte(`2024`), &n))
	assert.Equal(t, FlexInt(2024), n)

	var s FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"2025"`), &s))
	assert.Equal(t, FlexInt(2025), s)
}

func TestFlexIntRejectsNonNumeric(t *testing.T) {
	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`null`), &f))
	assert.Error(t, json.Unmarshal([]byte(`""`), &f))
}

func TestFlexIntRejectsUnpairedQuotes(t *testing.T) {
	// The decoder never produces these tokens, but direct callers can.
	var f FlexInt
	assert.Error(t, f.UnmarshalJSON([]byte(`2024"`)))
	assert.Error(t, f.UnmarshalJSON([]byte(`"2024`)))
	assert.Error(t, f.UnmarshalJSON([]byte(`"`)))
}

func TestPublishAssignmentRequestDistinguishesAbsentFromEmpty(t *testing.T) {
	var absent PublishAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"moduleId":4}`), &absent))
	assert.Nil(t, absent.SelectedCourses)

	var empty PublishAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"moduleId":4,"selectedCourses":[],"selectedStudents":[]}`), &empty))
	require.NotNil(t, empty.SelectedCourses)
	assert.Empty(t, *empty.SelectedCourses)
}
