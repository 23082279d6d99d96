package generation

import "context"

// Generator defines the interface for requesting generated text from a
// remote language model. This interface is the boundary between the
// interaction flow and the external AI service.
type Generator interface {
	// Generate performs one logical text-generation call. promptText is
	// the user-facing content; systemInstruction is the fixed behavioral
	// directive for the calling phase and must never be empty.
	//
	// Generate never panics and never returns an unclassified failure:
	// the returned Result either carries generated text or an error
	// wrapping one of this package's sentinels. The call blocks until it
	// resolves, bounded by the client's attempt timeout and backoff.
	Generate(ctx context.Context, promptText, systemInstruction string) Result
}
