package internal

// CreateTestMessage creates a finalized message for tests
func CreateTestMessage(id, author, content string, createdAt int64) *Message {
	return &Message{
		ID:        id,
		Author:    author,
		Content:   content,
		CreatedAt: createdAt,
		Kind:      KindMessage,
	}
}

// CreateTestReply creates a finalized reply message for tests
func CreateTestReply(id, author, content, replyTo string, createdAt int64) *Message {
	msg := CreateTestMessage(id, author, content, createdAt)
	msg.ReplyTo = replyTo
	return msg
}

// CreateTestFinalEvent creates a final-message event for tests
func CreateTestFinalEvent(id, author, content string, createdAt int64) *Event {
	return &Event{
		ID:        id,
		Author:    author,
		Kind:      KindMessage,
		CreatedAt: createdAt,
		Content:   content,
	}
}

// CreateTestDeltaEvent creates a stream-delta event for tests
func CreateTestDeltaEvent(author string, sequence int, fragment string, createdAt int64) *Event {
	return &Event{
		Author:    author,
		Kind:      KindStreamDelta,
		CreatedAt: createdAt,
		Content:   fragment,
		Sequence:  sequence,
	}
}

// CreateTestTypingEvent creates a typing-start or typing-stop event
func CreateTestTypingEvent(author string, kind int, createdAt int64) *Event {
	return &Event{
		Author:    author,
		Kind:      kind,
		CreatedAt: createdAt,
	}
}

// CreateTestChain creates a linear reply chain of length n, rooted at
// the first message, one second apart
func CreateTestChain(n int) []*Message {
	msgs := make([]*Message, 0, n)
	var parent string
	for i := 0; i < n; i++ {
		msg := CreateTestReply(
			chainID(i),
			"author",
			"message",
			parent,
			int64(1000+i),
		)
		msgs = append(msgs, msg)
		parent = msg.ID
	}
	return msgs
}

func chainID(i int) string {
	return string(rune('a'+i)) + "-chain"
}
