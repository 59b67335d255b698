package swaggen

import "sort"

// Closure returns every namespace transitively reachable over import
// edges from root, including root itself. Import cycles terminate via
// the visited set; the result is sorted by name so it can drive output
// ordering deterministically.
func Closure(root *Namespace) []*Namespace {
	seen := make(map[string]bool)
	var out []*Namespace

	var visit func(ns *Namespace)
	visit = func(ns *Namespace) {
		if seen[ns.Name] {
			return
		}
		seen[ns.Name] = true
		out = append(out, ns)
		for _, imp := range ns.ImportedNamespaces() {
			visit(imp)
		}
	}
	visit(root)

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
