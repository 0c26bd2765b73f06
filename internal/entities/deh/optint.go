package deh

// UnsetValue is how an unset optional field reads through the patch format.
const UnsetValue = -2

// OptInt is an integer field that patches may leave unset. Unset fields fall
// back to engine defaults and produce no output.
type OptInt struct {
	value int
	set   bool
}

// Unset returns an OptInt with no value.
func Unset() OptInt {
	return OptInt{}
}

// Opt returns an OptInt holding v.
func Opt(v int) OptInt {
	return OptInt{value: v, set: true}
}

// FromRaw converts a patch value, treating UnsetValue as unset.
func FromRaw(v int) OptInt {
	if v == UnsetValue {
		return Unset()
	}
	return Opt(v)
}

// Get returns the value and whether it is set.
func (o OptInt) Get() (int, bool) {
	return o.value, o.set
}

// IsSet reports whether the field holds a value.
func (o OptInt) IsSet() bool {
	return o.set
}

// Raw returns the patch representation, UnsetValue when unset.
func (o OptInt) Raw() int {
	if !o.set {
		return UnsetValue
	}
	return o.value
}
