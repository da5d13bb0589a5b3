// Package challenge holds the static challenge rules: which raw Strava
// activity types roll up into a category, the minimum cumulative distance a
// user needs before overtaking notifications apply, and the message pools the
// detector draws from. Everything here is built once and read-only afterwards.
package challenge

// Category groups raw Strava activity types for aggregation and ranking.
type Category struct {
	Name string
	// Types are the raw activity type strings summed into this category.
	Types []string
	// MinDistance is the cumulative distance (meters) a user must reach in
	// this category before they can appear in an overtaking notification.
	MinDistance float64
}

// Categories is the fixed challenge line-up.
var Categories = []Category{
	{
		Name:        "Run",
		Types:       []string{"Run", "TrailRun"},
		MinDistance: 10000,
	},
	{
		Name:        "Ride",
		Types:       []string{"Ride", "MountainBikeRide", "GravelRide", "EBikeRide", "VirtualRide"},
		MinDistance: 20000,
	},
	{
		Name:        "Swim",
		Types:       []string{"Swim"},
		MinDistance: 1000,
	},
}

// ByName returns the category with the given name, or false when the name is
// not part of the challenge.
func ByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// DisplayName picks the friendliest available name for a user:
// "first last", then first name alone, then username, then a placeholder.
func DisplayName(firstname, lastname, username string) string {
	if firstname != "" && lastname != "" {
		return firstname + " " + lastname
	}
	if firstname != "" {
		return firstname
	}
	if username != "" {
		return username
	}
	return "Quelqu'un"
}
