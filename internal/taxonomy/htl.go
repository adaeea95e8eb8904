package taxonomy

// Hours-To-Learn estimates by category. Languages are the deepest
// investment; tools are the fastest to pick up.
var htlByCategory = map[Category]int{
	CategoryLanguage:  40,
	CategoryFramework: 30,
	CategoryCloud:     20,
	CategoryDatabase:  15,
	CategoryTool:      10,
}

// DefaultHTL is the fallback estimate for unrecognised categories.
const DefaultHTL = 15

// HoursToLearn returns the estimated study hours for a category.
func HoursToLearn(cat Category) int {
	if hours, ok := htlByCategory[cat]; ok {
		return hours
	}
	return DefaultHTL
}
