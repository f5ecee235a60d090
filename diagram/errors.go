package diagram

import "fmt"

// InvalidNameError is returned when a resource name is empty or contains a
// delimiter reserved by the CSV dialect.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "diagram: resource name is empty"
	}
	return fmt.Sprintf("diagram: resource name %q contains a reserved delimiter", e.Name)
}

// UnknownTargetError is returned when a reference points at a name the builder
// never issued.
type UnknownTargetError struct {
	Target string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("diagram: reference target %q does not match any node", e.Target)
}

// UnknownKindError is returned when a resource kind has no style mapping.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("diagram: no style mapping for resource kind %q", e.Kind)
}
