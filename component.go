package ecsforge

import (
	"reflect"
	"sync"
)

// ComponentID is a dense, process-wide identifier assigned the first time
// a component type is registered. Paired with a byte size and implicit
// blit-copy semantics: components are plain data, no destructors run on
// copy.
type ComponentID uint32

// ComponentDescriptor pairs a registered component's id with its size and
// reflected type.
type ComponentDescriptor struct {
	ID   ComponentID
	Size uintptr
	Type reflect.Type
}

// componentRegistry is process-wide: component ids, like the reference
// implementation's GetComponent<T>() statics, are stable for the life of
// the process, not just one World.
type componentRegistry struct {
	mu          sync.Mutex
	byType      map[reflect.Type]ComponentID
	descriptors []ComponentDescriptor
	newColumn   []func() column
}

var registry = &componentRegistry{byType: make(map[reflect.Type]ComponentID)}

// RegisterComponent assigns, or returns the existing, component id for T.
// Idempotent per type within one run. Go has no template-local statics, so
// the memo is keyed on reflect.Type instead.
func RegisterComponent[T any]() ComponentID {
	var zero T
	t := reflect.TypeOf(zero)

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if id, ok := registry.byType[t]; ok {
		return id
	}
	id := ComponentID(len(registry.descriptors))
	registry.descriptors = append(registry.descriptors, ComponentDescriptor{
		ID:   id,
		Size: t.Size(),
		Type: t,
	})
	registry.newColumn = append(registry.newColumn, func() column { return newTypedColumn[T]() })
	registry.byType[t] = id
	return id
}

// DescriptorOf looks up a previously registered component id. Fails if the
// id was never registered.
func DescriptorOf(id ComponentID) (ComponentDescriptor, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if int(id) >= len(registry.descriptors) {
		return ComponentDescriptor{}, UnknownComponentError{ID: id}
	}
	return registry.descriptors[id], nil
}

func registeredComponentCount() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.descriptors)
}

// newColumnFor builds a fresh, empty column for a registered component id.
func newColumnFor(id ComponentID) column {
	registry.mu.Lock()
	factory := registry.newColumn
	registry.mu.Unlock()
	if int(id) >= len(factory) {
		fatal(UnknownComponentError{ID: id})
	}
	return factory[id]()
}
