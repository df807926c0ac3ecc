package server

import "sort"

// NotFoundPage is served from the pages directory for unknown paths.
const NotFoundPage = "404.html"

// RouteTable maps exact, case-sensitive URL paths to page file names.
// It has no mutation methods and is shared by all requests.
type RouteTable struct {
	pages map[string]string
}

// NewRouteTable copies entries so later changes by the caller have no effect.
func NewRouteTable(entries map[string]string) RouteTable {
	pages := make(map[string]string, len(entries))
	for path, file := range entries {
		pages[path] = file
	}
	return RouteTable{pages: pages}
}

func DefaultRoutes() RouteTable {
	return NewRouteTable(map[string]string{
		"/home":     "home.html",
		"/about":    "about.html",
		"/contact":  "contact.html",
		"/services": "services.html",
	})
}

// Lookup returns the page file for path.
func (t RouteTable) Lookup(path string) (string, bool) {
	file, ok := t.pages[path]
	return file, ok
}

// Paths lists the routed paths in sorted order.
func (t RouteTable) Paths() []string {
	paths := make([]string, 0, len(t.pages))
	for path := range t.pages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
