package domain

// CategoryOption is one button of the category filter.
type CategoryOption struct {
	ID    string
	Label string
	Icon  string
}

var knownCategories = []CategoryOption{
	{ID: CategoryAll, Label: "All", Icon: "🌟"},
	{ID: "restaurants", Label: "Restaurants", Icon: "🍜"},
	{ID: "nightlife", Label: "Nightlife", Icon: "🍹"},
	{ID: "activities", Label: "Activities", Icon: "🎯"},
	{ID: "beaches", Label: "Beaches", Icon: "🏖️"},
	{ID: "sights", Label: "Sights", Icon: "📸"},
	{ID: "cafes", Label: "Cafés", Icon: "☕"},
	{ID: BucketPractical, Label: "Practical", Icon: "💡"},
	{ID: "dining", Label: "Dining", Icon: "🍽️"},
}

// CategoryOptions returns the filter buttons for a destination with the given
// buckets: "all" first, then the known categories present in the data in
// their fixed display order, then any other bucket names in document order.
func CategoryOptions(bucketNames []string) []CategoryOption {
	present := make(map[string]bool, len(bucketNames))
	for _, n := range bucketNames {
		present[n] = true
	}

	known := make(map[string]bool, len(knownCategories))
	out := make([]CategoryOption, 0, len(bucketNames)+1)
	for _, c := range knownCategories {
		known[c.ID] = true
		if c.ID == CategoryAll || present[c.ID] {
			out = append(out, c)
		}
	}
	for _, n := range bucketNames {
		if !known[n] {
			out = append(out, CategoryOption{ID: n, Label: n, Icon: "📍"})
			known[n] = true
		}
	}
	return out
}
