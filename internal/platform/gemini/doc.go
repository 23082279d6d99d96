// Package gemini implements the generation.Generator interface against
// Google's Gemini generateContent API. The client owns the wire format,
// the per-attempt timeout, and a bounded retry loop with exponential
// backoff, and resolves every call to a classified generation.Result.
package gemini
