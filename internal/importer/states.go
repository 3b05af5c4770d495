package importer

import (
	"sort"
	"strings"
)

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
	"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND",
	"ohio": "OH", "oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC", "puerto rico": "PR",
}

// sortedStateNames keeps the fuzzy stages deterministic.
var sortedStateNames = func() []string {
	names := make([]string, 0, len(stateNames))
	for n := range stateNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}()

// Common informal abbreviations seen in real files.
var stateShorthand = map[string]string{
	"ariz": "AZ", "ark": "AR", "calif": "CA", "cal": "CA", "colo": "CO",
	"conn": "CT", "del": "DE", "fla": "FL", "ill": "IL", "ind": "IN",
	"kan": "KS", "mass": "MA", "mich": "MI", "minn": "MN", "miss": "MS",
	"mont": "MT", "neb": "NE", "nev": "NV", "okla": "OK", "ore": "OR",
	"penn": "PA", "tenn": "TN", "tex": "TX", "wash": "WA", "wis": "WI",
	"wyo": "WY",
}

// NormalizeState maps a state cell to its two-letter code. Two-character
// input is uppercased as-is. Longer input goes through the full name
// table, then a contains match in either direction ("State of Texas",
// "Washington State"), then word-level token overlap ("N. Carolina"),
// then the informal abbreviation table. Unrecognized text comes back
// empty.
func NormalizeState(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) == 2 {
		return strings.ToUpper(value)
	}
	key := strings.ToLower(strings.Join(strings.Fields(value), " "))
	key = strings.TrimSuffix(key, ".")
	if code, ok := stateNames[key]; ok {
		return code
	}

	// Decorated names: the input contains a state name, or a long
	// enough input is contained in one ("tenn" in "tennessee"). The
	// longest matching name wins so "mississippi" beats "missouri".
	best := ""
	for _, name := range sortedStateNames {
		if !strings.Contains(key, name) && !(len(key) >= 4 && strings.Contains(name, key)) {
			continue
		}
		if len(name) > len(best) {
			best = name
		}
	}
	if best != "" {
		return stateNames[best]
	}

	if code := matchStateTokens(key); code != "" {
		return code
	}

	if code, ok := stateShorthand[key]; ok {
		return code
	}
	return ""
}

// matchStateTokens scores each state name by the fraction of its words
// the input covers, counting a word matched when it equals an input
// token or one is a prefix of the other ("n" for "north"). The best
// name above half coverage wins; ties keep the alphabetically first.
func matchStateTokens(key string) string {
	inTokens := strings.Fields(key)
	if len(inTokens) == 0 {
		return ""
	}
	for i, t := range inTokens {
		inTokens[i] = strings.TrimSuffix(t, ".")
	}

	bestName := ""
	bestScore := 0.5
	for _, name := range sortedStateNames {
		nameTokens := strings.Fields(name)
		matched := 0
		for _, nt := range nameTokens {
			for _, it := range inTokens {
				if it == "" {
					continue
				}
				if it == nt || strings.HasPrefix(nt, it) || strings.HasPrefix(it, nt) {
					matched++
					break
				}
			}
		}
		if score := float64(matched) / float64(len(nameTokens)); score > bestScore {
			bestName, bestScore = name, score
		}
	}
	if bestName == "" {
		return ""
	}
	return stateNames[bestName]
}
