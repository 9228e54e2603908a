// Package voice implements intent classification and canned responses
// for the voice assistant. Classification is regex-based and fully
// deterministic.
package voice

import (
	"regexp"
	"strings"
)

// Match is the outcome of classifying one query.
type Match struct {
	Intent       string  `json:"intent"`
	ResponseType string  `json:"response_type"`
	Confidence   float64 `json:"confidence"`
}

type intentDef struct {
	name         string
	responseType string
	patterns     []*regexp.Regexp
}

// Patterns are tried in order per intent; the first hit decides the
// match rank, and earlier patterns signal a stronger match.
var intentDefs = []intentDef{
	{
		name:         "weather",
		responseType: "weather_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`weather|temperature|rain|sunny|cloudy|humidity`),
			regexp.MustCompile(`what.*weather|how.*weather|weather.*like`),
			regexp.MustCompile(`rain.*today|sunny.*today|cloudy.*today`),
		},
	},
	{
		name:         "soil",
		responseType: "soil_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`soil|ph|moisture|nutrient|fertilizer`),
			regexp.MustCompile(`what.*soil|soil.*condition|soil.*quality`),
			regexp.MustCompile(`ph.*level|moisture.*level|nutrient.*level`),
		},
	},
	{
		name:         "crop",
		responseType: "crop_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`crop|plant|grow|harvest|yield`),
			regexp.MustCompile(`what.*crop|which.*crop|best.*crop`),
			regexp.MustCompile(`plant.*now|grow.*now|harvest.*when`),
		},
	},
	{
		name:         "disease",
		responseType: "disease_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`disease|sick|infected|pest|problem`),
			regexp.MustCompile(`what.*wrong|plant.*sick|leaf.*spot`),
			regexp.MustCompile(`disease.*plant|pest.*control|treatment`),
		},
	},
	{
		name:         "market",
		responseType: "market_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`price|market|sell|buy|cost`),
			regexp.MustCompile(`what.*price|how.*much|market.*price`),
			regexp.MustCompile(`sell.*crop|buy.*seed|price.*today`),
		},
	},
	{
		name:         "recommendation",
		responseType: "recommendation_query",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`recommend|suggest|advice|help`),
			regexp.MustCompile(`what.*do|how.*grow|best.*way`),
			regexp.MustCompile(`recommend.*crop|suggest.*fertilizer`),
		},
	},
}

// Confidence by matched pattern rank: the broad keyword pattern scores
// highest, narrower phrasings progressively lower.
var rankConfidence = []float64{0.95, 0.90, 0.85}

const fallbackConfidence = 0.5

// Classify determines the intent of a query. Every intent is tried and
// the strongest match wins; ties break toward the earlier intent. A
// query matching nothing classifies as general at low confidence.
func Classify(query string) Match {
	lowered := strings.ToLower(query)

	best := Match{Intent: "general", ResponseType: "general_query", Confidence: fallbackConfidence}
	matched := false
	for _, def := range intentDefs {
		for rank, pattern := range def.patterns {
			if pattern.MatchString(lowered) {
				c := rankConfidence[rank]
				if !matched || c > best.Confidence {
					best = Match{Intent: def.name, ResponseType: def.responseType, Confidence: c}
					matched = true
				}
				break
			}
		}
	}
	return best
}

// IntentInfo describes one supported intent for discovery endpoints.
type IntentInfo struct {
	Intent         string   `json:"intent"`
	ResponseType   string   `json:"response_type"`
	Description    string   `json:"description"`
	ExampleQueries []string `json:"example_queries"`
}

// Intents returns the supported intent catalog in classification order.
func Intents() []IntentInfo {
	infos := make([]IntentInfo, len(intentDefs))
	for i, def := range intentDefs {
		infos[i] = IntentInfo{
			Intent:         def.name,
			ResponseType:   def.responseType,
			Description:    descriptions[def.name],
			ExampleQueries: examples[def.name],
		}
	}
	return infos
}

var descriptions = map[string]string{
	"weather":        "Get weather information and forecasts for your location",
	"soil":           "Analyze soil conditions, pH, moisture, and nutrient levels",
	"crop":           "Get crop recommendations and growing advice",
	"disease":        "Identify plant diseases and get treatment recommendations",
	"market":         "Check crop prices and market conditions",
	"recommendation": "Get personalized farming recommendations",
	"general":        "General farming questions and assistance",
}

var examples = map[string][]string{
	"weather": {
		"What's the weather like today?",
		"Will it rain tomorrow?",
		"What's the temperature and humidity?",
	},
	"soil": {
		"How is my soil condition?",
		"What's the pH level of my soil?",
		"Do I need to add fertilizer?",
	},
	"crop": {
		"What crops should I plant?",
		"When should I harvest my wheat?",
		"How much water do my crops need?",
	},
	"disease": {
		"My plants look sick, what's wrong?",
		"I see spots on my leaves",
		"Help me identify this plant disease",
	},
	"market": {
		"What are the current crop prices?",
		"When should I sell my harvest?",
		"Is it a good time to buy seeds?",
	},
	"recommendation": {
		"What should I do to improve my farm?",
		"Give me farming advice for this season",
		"How can I increase my crop yield?",
	},
	"general": {
		"Help me with my farm",
		"What can you do for me?",
		"I need farming assistance",
	},
}
