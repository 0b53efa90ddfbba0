package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eastask/internal/core/domain"
)

type dependencyRow struct {
	ID              string    `db:"id"`
	WorkspaceID     string    `db:"workspace_id"`
	TaskID          string    `db:"task_id"`
	DependsOnTaskID string    `db:"depends_on_task_id"`
	DependencyType  string    `db:"dependency_type"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r *RemoteStore) ListDependencies(ctx context.Context, workspaceID string) ([]domain.TaskDependency, error) {
	const query = `
SELECT id, workspace_id, task_id, depends_on_task_id, dependency_type, created_at
FROM task_dependencies
WHERE workspace_id = ?
ORDER BY created_at;
`
	var rows []dependencyRow
	if err := r.db.SelectContext(ctx, &rows, query, workspaceID); err != nil {
		return nil, err
	}

	deps := make([]domain.TaskDependency, 0, len(rows))
	for _, row := range rows {
		deps = append(deps, domain.TaskDependency{
			ID:              row.ID,
			TaskID:          row.TaskID,
			DependsOnTaskID: row.DependsOnTaskID,
			Type:            domain.DependencyType(row.DependencyType),
		})
	}
	return deps, nil
}

// InsertDependency rejects circular inserts: if the depended-upon task
// already reaches the dependent task through existing edges, the new edge
// would close a cycle.
func (r *RemoteStore) InsertDependency(ctx context.Context, workspaceID string, dep domain.TaskDependency) (domain.TaskDependency, error) {
	if dep.TaskID == dep.DependsOnTaskID {
		return domain.TaskDependency{}, domain.ErrDependencyCycle
	}

	existing, err := r.ListDependencies(ctx, workspaceID)
	if err != nil {
		return domain.TaskDependency{}, err
	}
	if reaches(existing, dep.DependsOnTaskID, dep.TaskID) {
		return domain.TaskDependency{}, domain.ErrDependencyCycle
	}

	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	const query = `
INSERT INTO task_dependencies (id, workspace_id, task_id, depends_on_task_id, dependency_type, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err = r.db.ExecContext(ctx, query,
		id, workspaceID, dep.TaskID, dep.DependsOnTaskID, string(dep.Type), now)
	if err != nil {
		return domain.TaskDependency{}, err
	}

	dep.ID = id
	return dep, nil
}

func (r *RemoteStore) DeleteDependency(ctx context.Context, workspaceID, dependencyID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM task_dependencies WHERE workspace_id = ? AND id = ?", workspaceID, dependencyID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrTaskNotFound)
}

// reaches reports whether from transitively depends on to.
func reaches(deps []domain.TaskDependency, from, to string) bool {
	edges := make(map[string][]string, len(deps))
	for _, d := range deps {
		edges[d.TaskID] = append(edges[d.TaskID], d.DependsOnTaskID)
	}

	visited := map[string]struct{}{from: {}}
	queue := []string{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range edges[id] {
			if next == to {
				return true
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}
