package interview

// GenerateQuestionsRequest is the question-generation request body
type GenerateQuestionsRequest struct {
	Title string `json:"title"`
}

// QuestionsResponse carries the generated questions
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}
