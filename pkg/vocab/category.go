package vocab

// Category identifies one of the five fixed word classes. The constant
// order is significant: component position N of a generated identifier
// draws from Category(N).
type Category int

// Word categories in component-position order.
const (
	Adjective Category = iota
	Noun
	Verb
	Adverb
	Preposition
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Adjective:
		return "adjective"
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adverb:
		return "adverb"
	case Preposition:
		return "preposition"
	default:
		return "unknown"
	}
}

// Categories returns the five categories in component-position order.
func Categories() []Category {
	return []Category{Adjective, Noun, Verb, Adverb, Preposition}
}
