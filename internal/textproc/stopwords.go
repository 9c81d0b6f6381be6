package textproc

// Stopword sets per supported language. A token matching its language's set
// is dropped before lemmatization, mirroring the usual "is_stop" filtering
// of NLP toolkits. The sets are intentionally compact: they cover function
// words that carry no ranking signal, not every rare particle.

// englishStopwords lists common English function words.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {}, "just": {}, "me": {}, "more": {}, "most": {},
	"my": {}, "myself": {}, "no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// spanishStopwords lists common Spanish function words.
var spanishStopwords = map[string]struct{}{
	"a": {}, "al": {}, "algo": {}, "antes": {}, "como": {}, "con": {},
	"contra": {}, "cual": {}, "cuando": {}, "de": {}, "del": {}, "desde": {},
	"donde": {}, "durante": {}, "e": {}, "el": {}, "ella": {}, "ellas": {},
	"ellos": {}, "en": {}, "entre": {}, "era": {}, "es": {}, "esa": {},
	"ese": {}, "eso": {}, "esta": {}, "este": {}, "esto": {}, "fue": {},
	"ha": {}, "han": {}, "hasta": {}, "hay": {}, "la": {}, "las": {},
	"le": {}, "les": {}, "lo": {}, "los": {}, "mas": {}, "me": {}, "mi": {},
	"muy": {}, "nada": {}, "ni": {}, "no": {}, "nos": {}, "o": {}, "os": {},
	"otra": {}, "otro": {}, "para": {}, "pero": {}, "poco": {}, "por": {},
	"porque": {}, "que": {}, "quien": {}, "se": {}, "ser": {}, "si": {},
	"sin": {}, "sobre": {}, "son": {}, "su": {}, "sus": {}, "también": {},
	"te": {}, "tiene": {}, "todo": {}, "tu": {}, "un": {}, "una": {},
	"uno": {}, "unos": {}, "y": {}, "ya": {}, "yo": {},
}

// stopwordsFor returns the stopword set for a supported language.
func stopwordsFor(language string) map[string]struct{} {
	switch language {
	case LanguageEnglish:
		return englishStopwords
	case LanguageSpanish:
		return spanishStopwords
	default:
		return nil
	}
}
