// Package generation defines the contract for interacting with the external
// text-generation service. It abstracts the details of the Gemini API
// integration, allowing the interaction flow to request generated text
// without coupling to a specific transport, and provides a uniform
// classification for every way a generation call can fail.
package generation
