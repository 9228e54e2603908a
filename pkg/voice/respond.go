package voice

// Response is the assistant's answer for a classified query.
type Response struct {
	ResponseType      string   `json:"response_type"`
	ResponseText      string   `json:"response_text"`
	ActionRequired    bool     `json:"action_required"`
	ActionType        string   `json:"action_type,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

// Respond returns the canned answer for an intent. Unknown intents fall
// through to the general response.
func Respond(intent string) Response {
	switch intent {
	case "weather":
		return Response{
			ResponseType: "weather_query",
			ResponseText: "Based on your location, the current weather is sunny with a temperature of 25°C. Humidity is at 60% and there's a 20% chance of rain today. Perfect conditions for most crops!",
			FollowUpQuestions: []string{
				"Would you like a 7-day weather forecast?",
				"Do you need weather alerts for your crops?",
			},
		}
	case "soil":
		return Response{
			ResponseType: "soil_query",
			ResponseText: "Your soil analysis shows pH level of 6.5, which is optimal for most crops. Moisture content is at 30% and nutrient levels are good. I recommend adding organic matter to improve soil structure.",
			FollowUpQuestions: []string{
				"Would you like specific fertilizer recommendations?",
				"Do you need help with soil testing?",
			},
		}
	case "crop":
		return Response{
			ResponseType:   "crop_query",
			ResponseText:   "Based on your soil conditions and current season, I recommend planting wheat, rice, or corn. These crops are well-suited for your area and have good market demand. Would you like detailed growing instructions?",
			ActionRequired: true,
			ActionType:     "crop_recommendation",
			FollowUpQuestions: []string{
				"Which crop interests you most?",
				"Do you need planting schedule information?",
			},
		}
	case "disease":
		return Response{
			ResponseType:   "disease_query",
			ResponseText:   "I can help you identify plant diseases. Please upload a photo of the affected plant, and I'll analyze it for common diseases like rust, blight, or fungal infections. Early detection is key to effective treatment.",
			ActionRequired: true,
			ActionType:     "disease_detection",
			FollowUpQuestions: []string{
				"Can you describe the symptoms you're seeing?",
				"Would you like general disease prevention tips?",
			},
		}
	case "market":
		return Response{
			ResponseType: "market_query",
			ResponseText: "Current market prices are looking good! Wheat is at ₹2,500 per quintal, rice at ₹3,000, and corn at ₹2,000. Prices have been stable with slight upward trends. Good time to plan your harvest and sales.",
			FollowUpQuestions: []string{
				"Would you like price forecasts for specific crops?",
				"Do you need help with market timing?",
			},
		}
	case "recommendation":
		return Response{
			ResponseType:   "recommendation_query",
			ResponseText:   "I'd be happy to provide personalized recommendations! To give you the best advice, I'll need to analyze your soil data, weather conditions, and market prices. This will help me suggest the most profitable crops for your farm.",
			ActionRequired: true,
			ActionType:     "full_recommendation",
			FollowUpQuestions: []string{
				"What's your farm size and location?",
				"Do you have any specific crop preferences?",
			},
		}
	default:
		return Response{
			ResponseType: "general_query",
			ResponseText: "I'm here to help with your farming needs! I can assist with weather information, soil analysis, crop recommendations, disease detection, market prices, and more. What would you like to know?",
			FollowUpQuestions: []string{
				"What's your main farming concern today?",
				"How can I help improve your crop yield?",
			},
		}
	}
}

// Greeting opens a conversational session.
const Greeting = "Hello! I'm your AI farming assistant. I can help you with weather updates, soil analysis, crop recommendations, disease detection, market prices, and more. What would you like to know about your farm today?"

// SuggestedQueries returns conversation starters for a new session.
func SuggestedQueries() []string {
	return []string{
		"What's the weather like today?",
		"How is my soil condition?",
		"What crops should I plant?",
		"Check market prices for my crops",
		"Help me identify plant diseases",
	}
}
