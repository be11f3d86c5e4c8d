package engine

import "fmt"

// ValidationError indicates bad user input. State is left unchanged.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// DuplicateError indicates a name collision (stat names, owned cosmetics).
type DuplicateError struct {
	Name string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%q already exists", e.Name)
}

// LastStatError is returned when deleting the sole remaining stat.
type LastStatError struct {
	Name string
}

func (e LastStatError) Error() string {
	return fmt.Sprintf("cannot delete %q: it is the last remaining stat", e.Name)
}

// GatingError is returned when a Mega quest is attempted without any
// SS-or-higher stat. This should be shown to the user.
type GatingError struct {
	Quest string
}

func (e GatingError) Error() string {
	return fmt.Sprintf("%q is a Mega quest: at least one SS+ stat is required", e.Quest)
}

// NotFoundError indicates an operation on a missing quest/challenge/skill/item.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
