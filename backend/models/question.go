package models

// Question is a single generated multiple-choice question. Questions are
// produced from model output and returned to the client; they are never
// persisted.
type Question struct {
	Topic    string   `json:"topic"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Explain  string   `json:"explain"`
}

// GenerateRequest describes one question-generation call.
type GenerateRequest struct {
	Topics     []string `json:"topics"`
	Difficulty string   `json:"difficulty"`
	PerTopic   int      `json:"perTopic"`
}
