// Package forge implements the collaborative prompt-engineering flow: a
// human seeds a rough story idea, the model proposes structured
// refinements, the human edits the combined draft, and the model produces
// a final summary from the perfected prompt. Session state lives in an
// explicit per-session object held by an in-memory store; it is mutated
// only by successful generation results and never survives the process.
package forge
