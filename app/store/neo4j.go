package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"taskboard/app/models"
)

const taskReturn = "RETURN t.id AS id, t.name AS name, t.description AS description, t.status AS status"

// Neo4jRepository stores tasks as :Task nodes.
type Neo4jRepository struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jRepository creates a repository on top of an open driver.
func NewNeo4jRepository(driver neo4j.DriverWithContext) *Neo4jRepository {
	return &Neo4jRepository{driver: driver}
}

// List retrieves all tasks in creation order.
func (r *Neo4jRepository) List(ctx context.Context) ([]models.Task, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, "MATCH (t:Task) "+taskReturn+" ORDER BY t.createdAt", nil)
		if err != nil {
			return nil, err
		}

		tasks := []models.Task{}
		for res.Next(ctx) {
			tasks = append(tasks, taskFromRecord(res.Record()))
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Task), nil
}

// Create adds a task node with a generated identifier.
func (r *Neo4jRepository) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	task := models.Task{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			"CREATE (t:Task {id: $id, name: $name, description: $description, status: $status, createdAt: timestamp()})",
			map[string]any{
				"id":          task.ID,
				"name":        task.Name,
				"description": task.Description,
				"status":      string(task.Status),
			},
		)
		return nil, err
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update sets only the fields present in patch.
func (r *Neo4jRepository) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	props := map[string]any{}
	if patch.Name != nil {
		props["name"] = *patch.Name
	}
	if patch.Description != nil {
		props["description"] = *patch.Description
	}
	if patch.Status != nil {
		props["status"] = string(*patch.Status)
	}

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (t:Task {id: $id}) SET t += $props "+taskReturn,
			map[string]any{"id": id, "props": props},
		)
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			if err := res.Err(); err != nil {
				return nil, err
			}
			return nil, ErrNotFound
		}
		return taskFromRecord(res.Record()), nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return result.(models.Task), nil
}

// Delete removes the task node and its relationships.
func (r *Neo4jRepository) Delete(ctx context.Context, id string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	deleted, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (t:Task {id: $id}) DETACH DELETE t RETURN count(t) AS deleted",
			map[string]any{"id": id},
		)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		count, _ := record.Values[0].(int64)
		return count, nil
	})
	if err != nil {
		return err
	}
	if deleted.(int64) == 0 {
		return ErrNotFound
	}
	return nil
}

func taskFromRecord(record *neo4j.Record) models.Task {
	return models.Task{
		ID:          stringValue(record.Values[0]),
		Name:        stringValue(record.Values[1]),
		Description: stringValue(record.Values[2]),
		Status:      models.Status(stringValue(record.Values[3])),
	}
}

// stringValue tolerates missing properties, which come back as nil.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
