package leavemarker

// NavItem is a static route-to-capability declaration. Entries with no role
// restriction are visible to everyone, anonymous callers included.
type NavItem struct {
	Name  string
	Path  string
	Icon  string
	Roles []Role
}

// DefaultNavigation mirrors the dashboard sidebar, in display order.
var DefaultNavigation = []NavItem{
	{Name: "Dashboard", Path: RouteDashboard, Icon: "building"},
	{Name: "Employees", Path: "/dashboard/employees", Icon: "users", Roles: []Role{RoleSuperAdmin, RoleHRAdmin}},
	{Name: "Leave Policies", Path: "/dashboard/leave-policies", Icon: "file-text", Roles: []Role{RoleSuperAdmin, RoleHRAdmin}},
	{Name: "Holidays", Path: "/dashboard/holidays", Icon: "calendar", Roles: []Role{RoleSuperAdmin, RoleHRAdmin}},
	{Name: "Leave Applications", Path: "/dashboard/leave-applications", Icon: "clipboard"},
	{Name: "Reports", Path: "/dashboard/reports", Icon: "bar-chart", Roles: []Role{RoleSuperAdmin, RoleHRAdmin, RoleManager}},
}

// FilterNavigation returns the subsequence of items visible to identity,
// preserving order. It is pure: re-derive it on every render rather than
// caching, since the identity can change between renders.
func FilterNavigation(items []NavItem, identity *Identity) []NavItem {
	visible := make([]NavItem, 0, len(items))
	for _, item := range items {
		if len(item.Roles) == 0 {
			visible = append(visible, item)
			continue
		}
		if identity == nil {
			continue
		}
		for _, r := range item.Roles {
			if r == identity.Role {
				visible = append(visible, item)
				break
			}
		}
	}
	return visible
}
