package payload

// Missing returns the allow-listed names that do not occur in the payload.
// An explicit null counts as present; it fails the field validators instead.
func Missing(p Payload, allow []string) []string {
	var missing []string
	for _, name := range allow {
		if !p.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Forbidden returns the forbid-listed names present in the payload as keys,
// regardless of value.
func Forbidden(p Payload, forbid []string) []string {
	var found []string
	for _, name := range forbid {
		if p.Has(name) {
			found = append(found, name)
		}
	}
	return found
}

// Unrecognized returns every payload key that belongs to neither list,
// sorted for deterministic messages.
func Unrecognized(p Payload, allow, forbid []string) []string {
	known := make(map[string]bool, len(allow)+len(forbid))
	for _, name := range allow {
		known[name] = true
	}
	for _, name := range forbid {
		known[name] = true
	}
	var unknown []string
	for _, key := range p.Keys() {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
