package intent

// PruneConstraints drops hard-constraint values that only signal absence
// (empty string, empty list, false, nil), removes an empty soft.rankBy and
// omits the hard/soft wrappers when they end up empty. The input is not
// modified. An empty result means no constraint should be forwarded.
func PruneConstraints(requested map[string]any) map[string]any {
	out := map[string]any{}

	if hard, ok := requested["hard"].(map[string]any); ok {
		kept := map[string]any{}
		for k, v := range hard {
			if !isAbsent(v) {
				kept[k] = v
			}
		}
		if len(kept) > 0 {
			out["hard"] = kept
		}
	}

	if soft, ok := requested["soft"].(map[string]any); ok {
		kept := map[string]any{}
		for k, v := range soft {
			if k == "rankBy" {
				if rankBy := nonEmptyStrings(v); len(rankBy) > 0 {
					kept[k] = rankBy
				}
				continue
			}
			if !isAbsent(v) {
				kept[k] = v
			}
		}
		if len(kept) > 0 {
			out["soft"] = kept
		}
	}

	return out
}

func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case *bool:
		return t == nil || !*t
	case *int:
		return t == nil
	default:
		return false
	}
}

func nonEmptyStrings(v any) []string {
	var out []string
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
