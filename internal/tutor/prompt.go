package tutor

import (
	"sort"
	"strings"
)

const topicPlaceholder = "{topic}"

var subjectPrompts = map[string]string{
	"mathematics":      "You are a teacher in the subject of Mathematics. Please explain the concept of {topic} in a clear and understandable manner. Provide examples and step-by-step solutions to problems. Be concise and ensure that the explanation is suitable for high school students.",
	"physics":          "You are a physics teacher. Explain the topic of {topic} in detail. Provide relevant formulas, real-world applications, and examples that help students understand the concept. Include diagrams if necessary. Make sure the explanation is accurate and at a high school level.",
	"chemistry":        "You are a chemistry teacher. Explain the concept of {topic}, covering key principles, reactions, and relevant scientific laws. Provide examples and experiments that help students better understand the topic. Your explanation should be detailed yet clear for high school students.",
	"biology":          "You are a biology teacher. Explain the topic of {topic}. Include key facts, diagrams (if necessary), and real-world examples. Focus on ensuring high school students understand the biological concepts. Explain in simple terms, but with enough detail for students to grasp the subject.",
	"history":          "You are a history teacher. Provide a detailed explanation of the topic of {topic}. Cover important historical events, figures, and their significance. Provide context and explain how this topic fits into the broader historical narrative. Ensure the explanation is understandable for high school students.",
	"geography":        "You are a geography teacher. Explain the topic of {topic}, covering important geographical features, concepts, and real-world examples. Make sure the explanation is accurate, and appropriate for high school students. Provide maps or diagrams if necessary.",
	"literature":       "You are a literature teacher. Analyze the topic of {topic}, whether it's a specific work, author, or literary period. Provide insights into themes, characters, and literary techniques. Explain how this work is relevant to the study of literature at the high school level.",
	"foreign language": "You are a language teacher. Explain the key grammar, vocabulary, or language rules related to the topic of {topic}. Provide examples and practice sentences that help high school students understand the usage of these rules. Include pronunciation tips if applicable.",
	"art":              "You are an art teacher. Explain the principles of art related to the topic of {topic}. Discuss relevant techniques, famous artists, and examples of works that showcase the topic. Your explanation should be detailed and accessible for high school students.",
	"music":            "You are a music teacher. Explain the musical concepts related to the topic of {topic}. Cover music theory, instruments, composers, or styles as appropriate. Provide examples from famous works that illustrate the concepts. Make sure the explanation is clear for high school students.",
}

const genericSubjectPrompt = "You are a teacher of {subject}. Please explain the topic of {topic} in a clear and concise manner, appropriate for high school students. Ensure that the explanation includes relevant examples, key points, and any important terminology."

var rewritePrompts = map[ModificationIntent]string{
	IntentShorten:   "Скороти наступну інформацію до ключових моментів:",
	IntentExpand:    "Розгорни детальніше цю відповідь:",
	IntentSimplify:  "Поясни простішими словами:",
	IntentRephrase:  "Перефразуй наступну відповідь:",
	IntentVeryShort: "Зроби наступну відповідь максимально короткою:",
}

// BuildSubjectPrompt renders the persona template for subject. Unknown
// subjects get the generic teacher prompt with the subject as given.
func BuildSubjectPrompt(subject, topic string) string {
	if tmpl, ok := subjectPrompts[strings.ToLower(subject)]; ok {
		return strings.ReplaceAll(tmpl, topicPlaceholder, topic)
	}
	return strings.NewReplacer("{subject}", subject, topicPlaceholder, topic).Replace(genericSubjectPrompt)
}

// BuildRewritePrompt prefixes previousAnswer with the instruction for intent.
// An intent without an instruction yields previousAnswer unchanged.
func BuildRewritePrompt(intent ModificationIntent, previousAnswer string) string {
	instruction, ok := rewritePrompts[intent]
	if !ok {
		return previousAnswer
	}
	return instruction + "\n" + previousAnswer
}

// BuildPrompt picks between a rewrite of the previous answer and a fresh
// subject prompt. A modification request whose intent cannot be detected
// passes the previous answer through as the prompt.
func BuildPrompt(req AskRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	if req.ModificationRequest != "" && req.PreviousAnswer != "" {
		intent := DetectModification(req.ModificationRequest)
		return BuildRewritePrompt(intent, req.PreviousAnswer), nil
	}
	return BuildSubjectPrompt(req.Subject, req.Topic), nil
}

func Subjects() []string {
	subjects := make([]string, 0, len(subjectPrompts))
	for s := range subjectPrompts {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}
