// Package chat relays test messages from the dashboard to the automation
// workflow's webhook and returns the agent's reply.
package chat

import "time"

// Message is one customer message sent through the relay.
type Message struct {
	Message        string `json:"message"`
	Phone          string `json:"phone"`
	Name           string `json:"name"`
	ConversationID string `json:"conversationId"`
}

// Reply is the agent's answer. Status is the webhook's HTTP status.
type Reply struct {
	Response       string `json:"response"`
	Status         int    `json:"status"`
	ConversationID string `json:"conversationId"`
}

// OK reports whether the webhook answered with a 2xx status.
func (r *Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

type payload struct {
	Message
	Timestamp time.Time `json:"timestamp"`
}
