package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"taskboard/app/models"
)

func TestPatchFields(t *testing.T) {
	name := "renamed"
	status := models.StatusCompleted

	tests := []struct {
		name  string
		patch models.TaskPatch
		want  bson.M
	}{
		{"empty", models.TaskPatch{}, bson.M{}},
		{"name only", models.TaskPatch{Name: &name}, bson.M{"name": "renamed"}},
		{"name and status", models.TaskPatch{Name: &name, Status: &status}, bson.M{"name": "renamed", "status": "Completed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := patchFields(tt.patch)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.patch.Empty() != (len(got) == 0) {
				t.Errorf("Empty() = %v with %d fields", tt.patch.Empty(), len(got))
			}
		})
	}
}

func TestMongoInvalidIDIsNotFound(t *testing.T) {
	repo := NewMongoRepository(nil)
	ctx := context.Background()

	if _, err := repo.Update(ctx, "not-hex", models.TaskPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: %v", err)
	}
	if err := repo.Delete(ctx, "not-hex"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: %v", err)
	}
}
