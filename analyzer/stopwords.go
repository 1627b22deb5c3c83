package analyzer

// contractionStopwords supplements the snowball English stopword list.
// The tokenizer keeps internal apostrophes, so contraction forms reach the
// keyword filter as single tokens that snowball's list does not contain.
var contractionStopwords = map[string]bool{
	"i'm": true, "i've": true, "i'll": true, "i'd": true,
	"you're": true, "you've": true, "you'll": true, "you'd": true,
	"he's": true, "she's": true, "it's": true, "we're": true,
	"we've": true, "we'll": true, "they're": true, "they've": true,
	"that's": true, "there's": true, "here's": true, "what's": true,
	"let's": true, "who's": true, "don't": true, "doesn't": true,
	"didn't": true, "won't": true, "wouldn't": true, "can't": true,
	"cannot": true, "couldn't": true, "shouldn't": true, "isn't": true,
	"aren't": true, "wasn't": true, "weren't": true, "haven't": true,
	"hasn't": true, "hadn't": true,
}

// stopwordSet builds the full filter: contractions plus any caller-supplied
// extras (e.g. from a YAML config stoplist).
func stopwordSet(extra []string) map[string]bool {
	if len(extra) == 0 {
		return contractionStopwords
	}

	set := make(map[string]bool, len(contractionStopwords)+len(extra))
	for w := range contractionStopwords {
		set[w] = true
	}
	for _, w := range extra {
		set[w] = true
	}
	return set
}
