package tutor

type AskRequest struct {
	Subject             string `json:"subject"`
	Topic               string `json:"topic"`
	ModificationRequest string `json:"modificationRequest,omitempty"`
	PreviousAnswer      string `json:"previousAnswer,omitempty"`
}

// Validate rejects requests that carry nothing to build a prompt from.
func (r AskRequest) Validate() error {
	if r.Subject == "" && r.Topic == "" && r.ModificationRequest == "" {
		return ErrInvalidRequest
	}
	return nil
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type CompletionResult struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}
