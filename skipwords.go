package bibfmt

import "golang.org/x/text/cases"

// skipWords is the stopword set excluded from citation-key title
// compression, after the Zotero better-bibtex list. Membership is
// tested one casefolded token at a time, so the multi-word entries near
// the end and the " thru" entry (published with its leading space) can
// never match; they are carried as-is so keys generated elsewhere stay
// reproducible here.
var skipWords = map[string]struct{}{
	"about": {}, "above": {}, "across": {}, "afore": {}, "after": {},
	"against": {}, "al": {}, "along": {}, "alongside": {}, "amid": {},
	"amidst": {}, "among": {}, "amongst": {}, "anenst": {}, "apropos": {},
	"apud": {}, "around": {}, "as": {}, "aside": {}, "astride": {},
	"at": {}, "athwart": {}, "atop": {}, "barring": {}, "before": {},
	"behind": {}, "below": {}, "beneath": {}, "beside": {}, "besides": {},
	"between": {}, "beyond": {}, "but": {}, "by": {}, "circa": {},
	"despite": {}, "down": {}, "during": {}, "et": {}, "except": {},
	"for": {}, "forenenst": {}, "from": {}, "given": {}, "in": {},
	"inside": {}, "into": {}, "lest": {}, "like": {}, "modulo": {},
	"near": {}, "next": {}, "notwithstanding": {}, "of": {}, "off": {},
	"on": {}, "onto": {}, "out": {}, "over": {}, "per": {},
	"plus": {}, "pro": {}, "qua": {}, "sans": {}, "since": {},
	"than": {}, "through": {}, " thru": {}, "throughout": {}, "thruout": {},
	"till": {}, "to": {}, "toward": {}, "towards": {}, "under": {},
	"underneath": {}, "until": {}, "unto": {}, "up": {}, "upon": {},
	"versus": {}, "vs.": {}, "v.": {}, "vs": {}, "v": {},
	"via": {}, "vis-à-vis": {}, "with": {}, "within": {}, "without": {},
	"according to": {}, "ahead of": {}, "apart from": {}, "as for": {},
	"as of": {}, "as per": {}, "as regards": {}, "aside from": {},
	"back to": {}, "because of": {}, "close to": {}, "due to": {},
	"except for": {}, "far from": {}, "inside of": {}, "instead of": {},
	"near to": {}, "next to": {}, "on to": {}, "out from": {},
	"out of": {}, "outside of": {}, "prior to": {}, "pursuant to": {},
	"rather than": {}, "regardless of": {}, "such as": {}, "that of": {},
	"up to": {}, "where as": {}, "or": {}, "yet": {}, "so": {},
	"and": {}, "nor": {}, "a": {}, "an": {}, "the": {},
	"de": {}, "d'": {}, "von": {}, "van": {}, "c": {}, "ca": {},
}

// isSkipWord reports whether the casefolded form of tok is a stopword.
func isSkipWord(tok string) bool {
	_, ok := skipWords[cases.Fold().String(tok)]
	return ok
}
