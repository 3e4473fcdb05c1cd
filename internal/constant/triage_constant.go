package constant

// Fixed replies for the safety gates. Deterministic on purpose: a user in
// crisis gets this text even when every model provider is down.
const (
	CrisisReply = "I'm very sorry you're feeling this way. If you are in immediate danger, please contact local emergency services now."

	EscalationReply = "I am concerned for your safety. Please contact emergency services. Would you like local resources?"
)
