package vocab

// Word lists are fixed at init and never mutated afterwards. Every word is
// lowercase, unique within its list, and contains no digits or separator
// characters, so generated identifiers split back into the same parts.
var words = map[Category][]string{
	Adjective: {
		"cute", "large", "big", "small", "tiny", "giant", "tall", "short",
		"long", "little", "fast", "slow", "quick", "swift", "brave", "calm",
		"eager", "gentle", "happy", "jolly", "kind", "lively", "nice", "proud",
		"silly", "witty", "mighty", "sharp", "bold", "bright", "clever", "quiet",
		"loud", "soft", "smooth", "rough", "shiny", "dull", "warm", "cool",
		"cold", "hot", "fresh", "sweet", "sour", "young", "old", "new",
		"ancient", "modern", "wild", "tame", "free", "busy", "lazy", "neat",
		"tidy", "clean", "light", "dark", "pale", "vivid", "plain", "fancy",
		"round", "square", "flat", "deep", "shallow", "wide", "narrow", "heavy",
		"thin", "thick", "strong", "weak", "brisk", "merry",
	},

	Noun: {
		"rabbit", "fox", "tiger", "eagle", "dolphin", "lion", "panda", "koala",
		"whale", "shark", "wolf", "falcon", "otter", "bear", "owl", "deer",
		"horse", "crow", "crane", "duck", "goose", "swan", "robin", "finch",
		"heron", "hawk", "raven", "seal", "walrus", "moose", "badger", "beaver",
		"weasel", "ferret", "lemur", "monkey", "gibbon", "camel", "llama", "alpaca",
		"bison", "zebra", "giraffe", "hippo", "rhino", "lizard", "gecko", "turtle",
		"frog", "newt", "salmon", "trout", "tuna", "marlin", "squid", "crab",
		"lobster", "shrimp", "oyster", "snail", "mole", "shrew", "stoat", "lynx",
		"puma", "jaguar", "ocelot", "wombat",
	},

	Verb: {
		"swim", "run", "jump", "fly", "dive", "glide", "soar", "race",
		"dance", "sing", "hunt", "leap", "climb", "sprint", "drift", "roam",
		"wander", "explore", "charge", "surge", "spin", "roll", "slide", "dash",
		"hop", "trot", "gallop", "march", "stride", "float", "sail", "paddle",
		"crawl", "sneak", "prowl", "pounce", "dig", "build", "carve", "weave",
	},

	Adverb: {
		"gladly", "boldly", "calmly", "gently", "swiftly", "slowly", "quickly", "quietly",
		"loudly", "neatly", "bravely", "eagerly", "warmly", "coolly", "freely", "wildly",
		"safely", "softly", "firmly", "keenly", "lightly", "deeply", "widely", "rarely",
		"often", "daily", "nightly", "truly", "nearly", "barely", "really", "simply",
	},

	Preposition: {
		"above", "below", "under", "over", "near", "beside", "between", "beyond",
		"across", "along", "around", "behind", "before", "after", "within", "without",
		"toward", "against", "during", "inside", "outside", "underneath", "amid", "past",
	},
}

// Words returns a copy of the word list for the category, or nil for an
// unknown category.
func Words(c Category) []string {
	list, ok := words[c]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Size returns the number of words in the category's list, or 0 for an
// unknown category.
func Size(c Category) int {
	return len(words[c])
}

// Summary reports the size of every word list.
type Summary struct {
	Adjectives   int
	Nouns        int
	Verbs        int
	Adverbs      int
	Prepositions int
}

// Sizes returns the size summary of all five lists.
func Sizes() Summary {
	return Summary{
		Adjectives:   len(words[Adjective]),
		Nouns:        len(words[Noun]),
		Verbs:        len(words[Verb]),
		Adverbs:      len(words[Adverb]),
		Prepositions: len(words[Preposition]),
	}
}
