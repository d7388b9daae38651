package reconcile

// Merge overlays caller-supplied fields onto a default record. Caller fields
// win on conflict. Neither input map is mutated.
func Merge(defaults, fields map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(fields))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
