package assessment

// beginMsg kicks off the session once the screen is on the stack, so
// the engine call happens on the update thread.
type beginMsg struct{}

// timerTickMsg is sent once per second while a cognitive session runs.
// gen identifies the tick loop it belongs to; a message from a loop
// started for an earlier session is dropped, so an in-flight tick at
// retake can't fork a second loop.
type timerTickMsg struct {
	gen int
}
