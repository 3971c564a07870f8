package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/infobip-go/internal/validation"
)

type point struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type row struct {
	ID string `json:"id" validate:"required,max=5"`
}

type envelope struct {
	From     string `json:"from" validate:"required,max=24"`
	Caption  string `json:"caption,omitempty" validate:"omitempty,max=3"`
	Notify   string `json:"notifyUrl,omitempty" validate:"omitempty,url"`
	Language string `json:"languageCode,omitempty" validate:"omitempty,sms_language_code"`
	Page     *int   `json:"page,omitempty" validate:"omitnil,min=1"`
	Rows     []row  `json:"rows" validate:"required,min=1,max=2,dive"`
	Point    point  `json:"point"`
	Optional *point `json:"optional,omitempty"`
	Header   any    `json:"header,omitempty"`
	Internal string `json:"-"`
}

func validEnvelope() envelope {
	return envelope{From: "441134960000", Rows: []row{{ID: "a"}}}
}

func TestStructValid(t *testing.T) {
	v := validEnvelope()
	violations, err := validation.Struct(&v)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestStructCollectsEveryViolation(t *testing.T) {
	page := 0
	v := envelope{
		Caption:  "abcd",
		Notify:   "not a url",
		Language: "EN",
		Page:     &page,
		Rows:     []row{{ID: "toolong"}, {}},
		Point:    point{Latitude: 90.1, Longitude: -180.1},
		Optional: &point{Latitude: -91},
		Header:   row{},
	}

	violations, err := validation.Struct(v)
	require.NoError(t, err)

	got := map[string]string{}
	for _, violation := range violations {
		got[violation.Field] = violation.Rule
	}
	assert.Equal(t, map[string]string{
		"from":              "required",
		"caption":           "max",
		"notifyUrl":         "url",
		"languageCode":      "sms_language_code",
		"page":              "min",
		"rows[0].id":        "max",
		"rows[1].id":        "required",
		"point.latitude":    "max",
		"point.longitude":   "min",
		"optional.latitude": "min",
		"header.id":         "required",
	}, got)
}

func TestStructLengthCountsRunes(t *testing.T) {
	v := validEnvelope()
	v.Caption = "äöü"
	violations, err := validation.Struct(v)
	require.NoError(t, err)
	assert.Empty(t, violations)

	v.Caption = "äöüß"
	violations, err = validation.Struct(v)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, validation.Violation{Field: "caption", Rule: "max", Param: "3"}, violations[0])
}

func TestStructBoundariesInclusive(t *testing.T) {
	v := validEnvelope()
	v.From = strings.Repeat("1", 24)
	v.Point = point{Latitude: -90, Longitude: 180}
	v.Rows = []row{{ID: "12345"}, {ID: "b"}}
	violations, err := validation.Struct(v)
	require.NoError(t, err)
	assert.Empty(t, violations)

	v.From = strings.Repeat("1", 25)
	violations, err = validation.Struct(v)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "from", violations[0].Field)
}

func TestStructCollectionBound(t *testing.T) {
	v := validEnvelope()
	v.Rows = []row{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	violations, err := validation.Struct(v)
	require.NoError(t, err)
	assert.Equal(t, []validation.Violation{{Field: "rows", Rule: "max", Param: "2"}}, violations)

	v.Rows = nil
	violations, err = validation.Struct(v)
	require.NoError(t, err)
	assert.Equal(t, []validation.Violation{{Field: "rows", Rule: "required"}}, violations)
}

func TestStructNilBody(t *testing.T) {
	var v *envelope
	violations, err := validation.Struct(v)
	require.NoError(t, err)
	assert.Equal(t, []validation.Violation{{Field: "body", Rule: "required"}}, violations)
}

func TestStructRejectsNonStruct(t *testing.T) {
	_, err := validation.Struct("text")
	require.Error(t, err)
}

func TestVar(t *testing.T) {
	assert.Empty(t, validation.Var("appId", "app-1", "required"))
	assert.Equal(t,
		[]validation.Violation{{Field: "appId", Rule: "required"}},
		validation.Var("appId", "", "required"))
}

func TestViolationString(t *testing.T) {
	assert.Equal(t, "text: required", validation.Violation{Field: "text", Rule: "required"}.String())
	assert.Equal(t, "text: max=4096", validation.Violation{Field: "text", Rule: "max", Param: "4096"}.String())
}
