package validator

import (
	"testing"

	"gameapi/internal/domain/entity"
	"gameapi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 {
	return &v
}

func TestCustomValidator_ReportsJSONPaths(t *testing.T) {
	snapshot := &entity.Snapshot{
		Chad: &entity.Chad{
			BoundingBox: &entity.BoundingBox{
				Pos:  &entity.Vector{X: float(1)},
				Size: &entity.Vector{X: float(1), Y: float(1)},
			},
		},
		Inventory: &entity.Inventory{},
		Story:     &entity.Story{},
		Zone:      &entity.Zone{},
	}

	err := New().Validate(snapshot)

	require.Error(t, err)
	fieldErr, ok := errors.AsType[*FieldError](err)
	require.True(t, ok)
	assert.Contains(t, fieldErr.Fields, "chad.boundingBox.pos.y")
	assert.Contains(t, fieldErr.Fields, "chad.health")
	assert.Contains(t, fieldErr.Fields, "chad.lastBoundingBox")
	assert.Contains(t, fieldErr.Fields, "inventory.ammoBag")
	assert.Contains(t, fieldErr.Fields, "zone.name")
	assert.NotContains(t, fieldErr.Fields, "chad._scale")
	assert.Contains(t, err.Error(), "missing or invalid fields: ")
}

func TestCustomValidator_MissingSections(t *testing.T) {
	err := New().Validate(&entity.Snapshot{})

	require.Error(t, err)
	fieldErr, ok := errors.AsType[*FieldError](err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"chad", "inventory", "story", "zone"}, fieldErr.Fields)
}

func TestCustomValidator_Valid(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
	}

	assert.NoError(t, New().Validate(&request{Name: "ok"}))
}
