package compiler

import "errors"

// Sentinel errors for every compile failure kind. Each is wrapped with path
// context at the point of occurrence; match with errors.Is.
var (
	// ErrInvalidSource means the source theme's inheritance chain could not
	// be resolved.
	ErrInvalidSource = errors.New("source theme cannot be resolved")
	// ErrInvalidTarget means the theme name is not a plain directory name,
	// or names a directory the compile would read from.
	ErrInvalidTarget = errors.New("invalid theme name")
	// ErrTargetExists means the target directory exists and overwrite was
	// not requested.
	ErrTargetExists = errors.New("target directory already exists")
	// ErrDelete means a directory could not be removed.
	ErrDelete = errors.New("cannot delete directory")
	// ErrCreateDir means a directory could not be created.
	ErrCreateDir = errors.New("cannot create directory")
	// ErrSourceUnreadable means a layer directory could not be listed.
	ErrSourceUnreadable = errors.New("cannot read source directory")
	// ErrCopy means a file could not be copied into the target.
	ErrCopy = errors.New("cannot copy file")
	// ErrPersist means the merged descriptor could not be written.
	ErrPersist = errors.New("cannot write merged descriptor")
)
