package store

import (
	"errors"
	"fmt"
)

var (
	// ErrIOFailure reports that the backing location could not be read or written.
	ErrIOFailure = errors.New("storage I/O failure")
	// ErrDataCorruption reports backing contents that exist but cannot be parsed.
	ErrDataCorruption = errors.New("stored task data is corrupt")
	// ErrInvalidDescription is returned when a task description is empty.
	ErrInvalidDescription = errors.New("task description cannot be empty")
)

// StorageError carries the operation and location of a persistence failure.
// It matches its Kind (ErrIOFailure or ErrDataCorruption) and the underlying
// cause with errors.Is.
type StorageError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Kind: ErrIOFailure, Err: err}
}

func corruptionError(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Kind: ErrDataCorruption, Err: err}
}

// asStorageError keeps errors that already carry a kind and classifies
// everything else as an I/O failure.
func asStorageError(op, path string, err error) error {
	if errors.Is(err, ErrIOFailure) || errors.Is(err, ErrDataCorruption) {
		return err
	}
	return ioError(op, path, err)
}
