// Package nav describes the screens of the application as routes and keeps the back stack.
package nav

import (
	"strconv"
	"strings"

	"github.com/code19m/errx"
)

const (
	// RouteUserList is the start destination.
	RouteUserList = "user_list"

	// RouteUserDetail is the pattern of the detail destination.
	RouteUserDetail = "user_detail/{" + ArgUserID + "}"

	// ArgUserID is the name of the detail route parameter.
	ArgUserID = "userId"

	CodeRouteNotFound = "ROUTE_NOT_FOUND"
)

//nolint:gochecknoglobals // static route table
var patterns = []string{RouteUserList, RouteUserDetail}

// CreateDetailRoute returns the concrete detail route for a user id.
func CreateDetailRoute(userID int) string {
	return strings.Replace(RouteUserDetail, "{"+ArgUserID+"}", strconv.Itoa(userID), 1)
}

// Args holds the string parameters extracted from a route.
type Args map[string]string

// Get returns the parameter value and whether it is present.
func (a Args) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Destination is a concrete route resolved against the route table.
type Destination struct {
	Pattern string
	Route   string
	Args    Args
}

// Match resolves a concrete route such as "user_detail/7" into its destination.
// Parameters are captured verbatim; interpreting them is up to the screen.
func Match(route string) (Destination, error) {
	segments := strings.Split(route, "/")

	for _, pattern := range patterns {
		args, ok := matchPattern(strings.Split(pattern, "/"), segments)
		if ok {
			return Destination{Pattern: pattern, Route: route, Args: args}, nil
		}
	}

	return Destination{}, errx.New(
		"route not found",
		errx.WithCode(CodeRouteNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"route": route}),
	)
}

func matchPattern(pattern, segments []string) (Args, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	args := Args{}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segments[i] == "" {
				return nil, false
			}
			args[strings.Trim(p, "{}")] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return args, true
}

// ParseUserID reads the user id parameter. It reports false when the parameter is
// absent or is not a base-10 32-bit integer.
func ParseUserID(args Args) (int, bool) {
	raw, ok := args.Get(ArgUserID)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
