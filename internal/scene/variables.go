package scene

// Variables is the named numeric parameter set driving a scene. Update
// replaces the whole snapshot; there is no merging, so a key present in an
// earlier snapshot and absent from the current one is simply gone, and
// readers fall back to their documented defaults.
type Variables map[string]float64

// Get returns the value stored under name, or def when the key is absent.
func (v Variables) Get(name string, def float64) float64 {
	if val, ok := v[name]; ok {
		return val
	}
	return def
}

// Clone returns a defensive copy, so a caller mutating its map after
// Update does not alias the stored snapshot.
func (v Variables) Clone() Variables {
	c := make(Variables, len(v))
	for k, val := range v {
		c[k] = val
	}
	return c
}
