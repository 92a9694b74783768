package news

import "strings"

// jakartaSuffix marks tickers listed on the Indonesian exchange, whose news
// coverage is predominantly in Indonesian.
const jakartaSuffix = ".JK"

// localeProfile selects the language, region and search edition for the
// fallback news search, plus the query keyword appended to the ticker.
type localeProfile struct {
	Lang    string
	Region  string
	Edition string
	Keyword string
}

var (
	localeIndonesian = localeProfile{Lang: "id", Region: "ID", Edition: "ID:id", Keyword: "saham"}
	localeEnglish    = localeProfile{Lang: "en", Region: "US", Edition: "US:en", Keyword: "stock"}
)

// needsTranslation reports whether titles fetched under this profile must be
// translated to English before classification.
func (p localeProfile) needsTranslation() bool {
	return p.Lang != "en"
}

// profileFor strips any local-exchange suffix from the ticker and picks the
// locale profile: Jakarta-listed tickers search the local edition, everything
// else the international one.
func profileFor(ticker string) (clean string, p localeProfile) {
	upper := strings.ToUpper(ticker)
	if strings.HasSuffix(upper, jakartaSuffix) {
		return strings.TrimSuffix(upper, jakartaSuffix), localeIndonesian
	}
	return upper, localeEnglish
}
