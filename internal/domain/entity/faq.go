package entity

import (
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/pkg/numeric"
)

const (
	FAQFieldQuestion = "question"
	FAQFieldAnswer   = "answer"
)

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

func FAQFromDocument(id string, doc document.Document) FAQ {
	return FAQ{
		ID:       id,
		Question: numeric.ToString(doc[FAQFieldQuestion]),
		Answer:   numeric.ToString(doc[FAQFieldAnswer]),
	}
}
