package voice_test

import (
	"testing"

	"github.com/agriscope/agriscope/pkg/voice"
)

func TestClassifyIntents(t *testing.T) {
	cases := []struct {
		query      string
		intent     string
		confidence float64
	}{
		{"What's the weather like today?", "weather", 0.95},
		{"how is my soil condition", "soil", 0.95},
		{"which variety should I cultivate", "general", 0.5},
		{"My plants look sick", "crop", 0.95}, // "plant" keyword outranks the sick pattern
		{"when should I sell my produce", "market", 0.95},
		{"give me farming advice", "recommendation", 0.95},
	}
	for _, tc := range cases {
		m := voice.Classify(tc.query)
		if m.Intent != tc.intent {
			t.Errorf("Classify(%q) = %s, want %s", tc.query, m.Intent, tc.intent)
		}
		if m.Confidence != tc.confidence {
			t.Errorf("Classify(%q) confidence = %v, want %v", tc.query, m.Confidence, tc.confidence)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	query := "should I buy seed for planting before the rain"
	first := voice.Classify(query)
	for i := 0; i < 5; i++ {
		if got := voice.Classify(query); got != first {
			t.Fatalf("classification unstable: %+v vs %+v", got, first)
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	m := voice.Classify("xyzzy")
	if m.Intent != "general" || m.ResponseType != "general_query" {
		t.Errorf("fallback = %+v", m)
	}
	if m.Confidence != 0.5 {
		t.Errorf("fallback confidence = %v, want 0.5", m.Confidence)
	}
}

func TestRespondShapes(t *testing.T) {
	actionIntents := map[string]string{
		"crop":           "crop_recommendation",
		"disease":        "disease_detection",
		"recommendation": "full_recommendation",
	}
	for intent, actionType := range actionIntents {
		r := voice.Respond(intent)
		if !r.ActionRequired {
			t.Errorf("%s response should require action", intent)
		}
		if r.ActionType != actionType {
			t.Errorf("%s action type = %s, want %s", intent, r.ActionType, actionType)
		}
	}

	for _, intent := range []string{"weather", "soil", "market", "general"} {
		r := voice.Respond(intent)
		if r.ActionRequired {
			t.Errorf("%s response should not require action", intent)
		}
		if r.ResponseText == "" || len(r.FollowUpQuestions) != 2 {
			t.Errorf("%s response incomplete: %+v", intent, r)
		}
	}

	// Unknown intents take the general response.
	if voice.Respond("nonsense").ResponseType != "general_query" {
		t.Error("unknown intent should respond as general")
	}
}

func TestIntentCatalog(t *testing.T) {
	intents := voice.Intents()
	if len(intents) != 6 {
		t.Fatalf("intents = %d, want 6", len(intents))
	}
	for _, info := range intents {
		if info.Description == "" {
			t.Errorf("%s has no description", info.Intent)
		}
		if len(info.ExampleQueries) != 3 {
			t.Errorf("%s has %d examples, want 3", info.Intent, len(info.ExampleQueries))
		}
	}
	if intents[0].Intent != "weather" || intents[5].Intent != "recommendation" {
		t.Errorf("intent order changed: %s .. %s", intents[0].Intent, intents[5].Intent)
	}
}
