package models

// Message is a claim or reply as returned by GET /api/messages.
//
// IsAuthentic is the server's signature-verification verdict; the client
// renders it as a badge and performs no cryptographic checks of its own.
type Message struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"item_id"`
	SenderID    string `json:"sender_id"`
	ReceiverID  string `json:"receiver_id"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
	IsAuthentic bool   `json:"is_authentic"`
}
