// Package translate implements dictionary-backed translation of
// agricultural terms between the supported languages, plus heuristic
// language detection.
package translate

// termKeys are the English term identifiers every language dictionary
// covers, in display order.
var termKeys = []string{
	"soil", "crop", "fertilizer",
	"irrigation", "harvest", "yield",
	"pest", "disease", "weather",
	"planting", "seeding", "watering",
	"ph", "moisture", "temperature",
	"humidity", "rainfall", "sunlight",
}

var terms = map[string]map[string]string{
	"en": {
		"soil": "soil", "crop": "crop", "fertilizer": "fertilizer",
		"irrigation": "irrigation", "harvest": "harvest", "yield": "yield",
		"pest": "pest", "disease": "disease", "weather": "weather",
		"planting": "planting", "seeding": "seeding", "watering": "watering",
		"ph": "pH", "moisture": "moisture", "temperature": "temperature",
		"humidity": "humidity", "rainfall": "rainfall", "sunlight": "sunlight",
	},
	"hi": {
		"soil": "मिट्टी", "crop": "फसल", "fertilizer": "उर्वरक",
		"irrigation": "सिंचाई", "harvest": "फसल कटाई", "yield": "उपज",
		"pest": "कीट", "disease": "रोग", "weather": "मौसम",
		"planting": "रोपण", "seeding": "बीजारोपण", "watering": "पानी देना",
		"ph": "पीएच", "moisture": "नमी", "temperature": "तापमान",
		"humidity": "आर्द्रता", "rainfall": "वर्षा", "sunlight": "सूर्य का प्रकाश",
	},
	"es": {
		"soil": "suelo", "crop": "cultivo", "fertilizer": "fertilizante",
		"irrigation": "riego", "harvest": "cosecha", "yield": "rendimiento",
		"pest": "plaga", "disease": "enfermedad", "weather": "clima",
		"planting": "siembra", "seeding": "siembra", "watering": "riego",
		"ph": "pH", "moisture": "humedad", "temperature": "temperatura",
		"humidity": "humedad", "rainfall": "lluvia", "sunlight": "luz solar",
	},
	"fr": {
		"soil": "sol", "crop": "culture", "fertilizer": "engrais",
		"irrigation": "irrigation", "harvest": "récolte", "yield": "rendement",
		"pest": "ravageur", "disease": "maladie", "weather": "temps",
		"planting": "plantation", "seeding": "semis", "watering": "arrosage",
		"ph": "pH", "moisture": "humidité", "temperature": "température",
		"humidity": "humidité", "rainfall": "précipitations", "sunlight": "lumière du soleil",
	},
	"de": {
		"soil": "Boden", "crop": "Ernte", "fertilizer": "Dünger",
		"irrigation": "Bewässerung", "harvest": "Ernte", "yield": "Ertrag",
		"pest": "Schädling", "disease": "Krankheit", "weather": "Wetter",
		"planting": "Pflanzung", "seeding": "Aussaat", "watering": "Bewässerung",
		"ph": "pH", "moisture": "Feuchtigkeit", "temperature": "Temperatur",
		"humidity": "Luftfeuchtigkeit", "rainfall": "Niederschlag", "sunlight": "Sonnenlicht",
	},
	"zh": {
		"soil": "土壤", "crop": "作物", "fertilizer": "肥料",
		"irrigation": "灌溉", "harvest": "收获", "yield": "产量",
		"pest": "害虫", "disease": "疾病", "weather": "天气",
		"planting": "种植", "seeding": "播种", "watering": "浇水",
		"ph": "pH值", "moisture": "湿度", "temperature": "温度",
		"humidity": "湿度", "rainfall": "降雨", "sunlight": "阳光",
	},
}

// languageNames maps language codes to display names, in catalog order.
var languageCodes = []string{"en", "hi", "es", "fr", "de", "zh"}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
}

// languageTags prefix translated output so mock translations are
// recognizable in transcripts. English output carries no tag.
var languageTags = map[string]string{
	"hi": "[Hindi] ",
	"es": "[Spanish] ",
	"fr": "[French] ",
	"de": "[German] ",
	"zh": "[Chinese] ",
}

// Language pairs a code with its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the supported languages in catalog order.
func Languages() []Language {
	langs := make([]Language, len(languageCodes))
	for i, code := range languageCodes {
		langs[i] = Language{Code: code, Name: languageNames[code]}
	}
	return langs
}

// Supported reports whether the language code is known.
func Supported(code string) bool {
	_, ok := languageNames[code]
	return ok
}

// LanguageName returns the display name for a code, or "" if unknown.
func LanguageName(code string) string {
	return languageNames[code]
}

// Term is one dictionary entry.
type Term struct {
	Key         string `json:"key"`
	Translation string `json:"translation"`
}

// Terms returns the agricultural term dictionary for a language in
// display order. The second return is false for unknown languages.
func Terms(lang string) ([]Term, bool) {
	dict, ok := terms[lang]
	if !ok {
		return nil, false
	}
	out := make([]Term, len(termKeys))
	for i, key := range termKeys {
		out[i] = Term{Key: key, Translation: dict[key]}
	}
	return out, true
}
