package forge

// DefaultSeedIdea pre-fills the seed input for a new session.
const DefaultSeedIdea = "A detective story set in the future."

// suggestionInstruction steers the brainstorming phase. The model must
// answer with exactly three labeled elements and nothing else, so the UI
// can rely on the structure.
const suggestionInstruction = "You are a creative brainstorming partner. The user is providing a rough story idea. " +
	"Your task is to provide 3 distinct, structured creative elements to refine this idea. " +
	"Format your response strictly using this structure: " +
	"**GENRE VARIANT:** [A specific sub-genre suggestion]\n\n" +
	"**KEY CONFLICT:** [A high-stakes, specific conflict idea]\n\n" +
	"**ATMOSPHERE/TONE:** [A unique tone or style suggestion]\n\n" +
	"Keep all suggestions concise (under 10 words each) and impactful. Do not add any introductory or concluding text."

// summaryInstruction steers the final execution phase.
const summaryInstruction = "You are a master storyteller. Your task is to write a compelling, concise (150-word maximum) " +
	"plot summary based EXACTLY on the refined prompt provided by the user. " +
	"Do not add any additional analysis or commentary."
