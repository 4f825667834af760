package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Route names
const (
	RouteHome     = "home"
	RouteColoring = "coloring"
	RoutePage     = "page"
	RouteUpload   = "upload"
	RouteProgress = "progress"
	RouteSettings = "settings"
	RouteLicense  = "license"
)

// ParamCategory is the query parameter selecting a category
const ParamCategory = "category"

var (
	// ErrUnknownRoute is returned for paths no screen handles
	ErrUnknownRoute = errors.New("unknown route")

	// ErrPageLocked is returned when navigating to a locked page
	ErrPageLocked = errors.New("page is locked")
)

// Route is a parsed navigation target
type Route struct {
	Name   string
	ID     string
	Params url.Values
}

// ParseRoute parses paths like "/coloring/cat?category=animals"
func ParseRoute(path string) (Route, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, fmt.Errorf("invalid route %q: %w", path, err)
	}

	route := Route{Params: u.Query()}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch {
	case len(segments) == 1 && segments[0] == "":
		route.Name = RouteHome
	case segments[0] == RouteColoring && len(segments) == 1:
		route.Name = RouteColoring
	case segments[0] == RouteColoring && len(segments) == 2 && segments[1] != "":
		route.Name = RoutePage
		route.ID = segments[1]
	case len(segments) == 1 && isTopLevel(segments[0]):
		route.Name = segments[0]
	default:
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	return route, nil
}

func isTopLevel(name string) bool {
	switch name {
	case RouteUpload, RouteProgress, RouteSettings, RouteLicense:
		return true
	}
	return false
}

// Param returns a query parameter or ""
func (r Route) Param(key string) string {
	return r.Params.Get(key)
}

// Path formats the route back into a navigable path
func (r Route) Path() string {
	var path string
	switch r.Name {
	case RouteHome:
		path = "/"
	case RoutePage:
		path = "/" + RouteColoring + "/" + url.PathEscape(r.ID)
	default:
		path = "/" + r.Name
	}

	if len(r.Params) > 0 {
		path += "?" + r.Params.Encode()
	}
	return path
}

// CategoryPath returns the route of the picture list for a category
func CategoryPath(categoryID string) string {
	return Route{Name: RouteColoring, Params: url.Values{ParamCategory: {categoryID}}}.Path()
}

// PagePath returns the route of a coloring page
func PagePath(pageID, categoryID string) string {
	r := Route{Name: RoutePage, ID: pageID}
	if categoryID != "" {
		r.Params = url.Values{ParamCategory: {categoryID}}
	}
	return r.Path()
}
