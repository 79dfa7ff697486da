package models

// KnownTickers is the ticker universe of the tracked portfolio.
// Source files may carry other symbols; consumers tolerate them.
var KnownTickers = []string{
	"AMZN", "AXP", "AAPL", "AXTA", "BAC", "BK", "GOLD", "BIIB", "CHTR", "KO", "COST", "DVA", "GM", "GL", "JNJ", "JPM", "KHC", "KR",
	"LBTYA", "LBTYK", "LILA", "LILAK", "LSXMA", "LSXMK", "MTB", "MA", "MDLZ", "MCO", "PNC", "PG", "RH", "SIRI", "SNOW", "SPY", "STNE",
	"STOR", "SU", "SYF", "TEVA", "USB", "UPS", "VOO", "VRSN", "V", "WFC",
}

var knownTickerSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KnownTickers))
	for _, t := range KnownTickers {
		m[t] = struct{}{}
	}
	return m
}()

// IsKnownTicker reports whether symbol belongs to the ticker universe
func IsKnownTicker(symbol string) bool {
	_, ok := knownTickerSet[symbol]
	return ok
}
