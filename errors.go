package blockscene

import "fmt"

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type CellOutOfRangeError struct {
	Cell          Cell
	Rows, Columns int
}

func (e CellOutOfRangeError) Error() string {
	return fmt.Sprintf("cell %v outside %dx%d grid", e.Cell, e.Rows, e.Columns)
}

type CellOccupiedError struct {
	Cell Cell
}

func (e CellOccupiedError) Error() string {
	return fmt.Sprintf("cell %v already holds a block", e.Cell)
}

type CellEmptyError struct {
	Cell Cell
}

func (e CellEmptyError) Error() string {
	return fmt.Sprintf("cell %v holds no block", e.Cell)
}

type NoComponentsError struct{}

func (e NoComponentsError) Error() string {
	return "a block needs at least one component"
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on block: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on block: %T", e.Component)
}

type CacheFullError struct {
	Capacity int
}

func (e CacheFullError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Capacity)
}

type MissingServiceError struct {
	Name string
}

func (e MissingServiceError) Error() string {
	return fmt.Sprintf("scene service %s is nil", e.Name)
}

type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

type SceneStateError struct {
	Op    string
	State string
}

func (e SceneStateError) Error() string {
	return fmt.Sprintf("cannot %s: scene %s", e.Op, e.State)
}
