package access

import (
	"fmt"
	"medical-portal/internal/app/models"
	"strconv"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// routeModel matches a route by method and pattern, then hands the session and
// the route's requirement to accessAllowed, which runs Evaluate.
const routeModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = obj, act, auth, admin, perm

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.obj == p.obj && r.act == p.act && accessAllowed(r.sub, p.auth, p.admin, p.perm)
`

const noPermission = "-"

// Enforcer holds the route table as casbin policies. Routes are registered
// once at startup and decided on every request.
type Enforcer struct {
	casbin *casbin.SyncedEnforcer
}

func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(routeModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}
	e.AddFunction("accessAllowed", accessAllowed)

	return &Enforcer{casbin: e}, nil
}

// Register records requirement for method and pattern. Registering the same
// route twice is an error.
func (e *Enforcer) Register(method, pattern string, requirement models.AccessRequirement) error {
	permission := requirement.RequiredPermission
	if permission == "" {
		permission = noPermission
	}

	added, err := e.casbin.AddPolicy(
		pattern,
		method,
		strconv.FormatBool(requirement.RequireAuth),
		strconv.FormatBool(requirement.RequireAdmin),
		permission,
	)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("route %s %s is already registered", method, pattern)
	}
	return nil
}

// Decide returns Allow only when a registered route for method and pattern
// lets session through. Unknown routes and enforcement errors are denied.
func (e *Enforcer) Decide(session *models.Session, method, pattern string) Decision {
	ok, err := e.casbin.Enforce(session, pattern, method)
	if err != nil || !ok {
		return deny(session)
	}
	return Allow
}

func accessAllowed(args ...interface{}) (interface{}, error) {
	if len(args) != 4 {
		return false, fmt.Errorf("accessAllowed expects 4 arguments, got %d", len(args))
	}

	session, _ := args[0].(*models.Session)
	requireAuth, err := strconv.ParseBool(fmt.Sprint(args[1]))
	if err != nil {
		return false, err
	}
	requireAdmin, err := strconv.ParseBool(fmt.Sprint(args[2]))
	if err != nil {
		return false, err
	}
	permission := fmt.Sprint(args[3])
	if permission == noPermission {
		permission = ""
	}

	requirement := models.AccessRequirement{
		RequireAuth:        requireAuth,
		RequireAdmin:       requireAdmin,
		RequiredPermission: permission,
	}
	return Evaluate(session, requirement).Allowed(), nil
}
