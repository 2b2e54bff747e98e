package rbac

import "go-emprecords/internal/shared/token"

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// DefaultPolicies grants admins everything; employees may read the roster and
// their documents and record leave.
var DefaultPolicies = [][]string{
	{token.RoleAdmin, "*", "*"},
	{token.RoleEmployee, "employee", "read"},
	{token.RoleEmployee, "leave_event", "read"},
	{token.RoleEmployee, "leave_event", "create"},
	{token.RoleEmployee, "document", "read"},
}
