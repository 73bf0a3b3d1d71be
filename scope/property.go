package scope

// PropertyValue is the declaration of a named piece of test data. It has
// exactly two implementations: SharedValue and PrivateValue. The interface is
// sealed so that resolution can dispatch on the concrete type.
type PropertyValue interface {
	propertyValue()
}

// SharedValue wraps a value that is reused identically by every test case
// that reads it. The wrapped value is immutable by contract; the engine never
// copies it.
type SharedValue struct {
	Value interface{}
}

// PrivateValue declares a value that is constructed at most once per test
// case, on first read, by calling Make. If Finalize is non-nil it is called
// exactly once at the end of any test case that actually read the value.
type PrivateValue struct {
	Make     func() interface{}
	Finalize func(interface{})
}

func (SharedValue) propertyValue()  {}
func (PrivateValue) propertyValue() {}

// Property pairs a name with its value declaration, for passing to RunSet and
// RunCase.
type Property struct {
	Name  string
	Value PropertyValue
}

// Shared declares a property whose value is reused across all test cases.
func Shared(value interface{}) PropertyValue {
	return SharedValue{Value: value}
}

// Private declares a property whose value is built fresh for each test case
// that reads it.
func Private(factory func() interface{}) PropertyValue {
	return PrivateValue{Make: factory}
}

// PrivateFinalized is like Private, but also registers a finalizer that is
// called with the materialized value at the end of each test case that read
// the property.
func PrivateFinalized(factory func() interface{}, finalizer func(interface{})) PropertyValue {
	return PrivateValue{Make: factory, Finalize: finalizer}
}
