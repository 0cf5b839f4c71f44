package views

type NavItem struct {
	Label string
	Href  string
}

// NavGroup is a sidebar section; the first group has no heading.
type NavGroup struct {
	Label string
	Items []NavItem
}

var Sidebar = []NavGroup{
	{Items: []NavItem{
		{"Dashboard", "/dashboard"},
		{"Users", "/users"},
		{"Corporates", "/corporates"},
	}},
	{Label: "Sales", Items: []NavItem{
		{"Demo Requests", "/demo-requests"},
		{"Invoices", "/invoices"},
	}},
	{Label: "Trips", Items: []NavItem{
		{"Trips", "/trips"},
		{"Trip Change Requests", "/trip-change-requests"},
		{"Travelers", "/travelers"},
		{"Shopping Cart", "/shopping-cart"},
	}},
	{Label: "Communication", Items: []NavItem{
		{"Email Templates", "/email-templates"},
		{"Queued Emails", "/queued-emails"},
		{"Email Accounts", "/email-accounts"},
	}},
	{Label: "Localization", Items: []NavItem{
		{"Languages", "/languages"},
		{"Localized Labels", "/localized-resources"},
	}},
	{Label: "Settings", Items: []NavItem{
		{"Permissions", "/permissions"},
		{"Currency", "/currencies"},
		{"SABRE Tokens", "/token-sessions"},
	}},
	{Label: "Maintenance", Items: []NavItem{
		{"Schedule Tasks", "/scheduled-tasks"},
		{"Logs", "/logs"},
	}},
	{Label: "Reports", Items: []NavItem{
		{"Sales summary", "/sales-summary"},
		{"Traveler activity", "/traveler-activity"},
		{"Service Level Insights", "/insights"},
	}},
}
