package entities

// Scenario is one phone/SMS scam walkthrough shown in the demo.
type Scenario struct {
	Contact  string `json:"contact"`
	Message  string `json:"message"`
	Question string `json:"question"`
	Choice1  string `json:"choice1"`
	Choice2  string `json:"choice2"`
	Choice3  string `json:"choice3"`
}

// Demo is the content of the "demo" section of a locale file.
// Field order is the key order written to disk.
type Demo struct {
	Call             string   `json:"call"`
	RiskyFeedback    string   `json:"riskyFeedback"`
	CautiousFeedback string   `json:"cautiousFeedback"`
	NextScenario     string   `json:"nextScenario"`
	TryReal          string   `json:"tryReal"`
	Hint             string   `json:"hint"`
	Scenario1        Scenario `json:"scenario1"`
	Scenario2        Scenario `json:"scenario2"`
	Scenario3        Scenario `json:"scenario3"`
	Scenario4        Scenario `json:"scenario4"`
	Scenario5        Scenario `json:"scenario5"`
}

