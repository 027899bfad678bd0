// Package content holds the static copy shown around the game.
package content

// Section is one headed paragraph of an informational page.
type Section struct {
	Heading string
	Text    string
}

// Page is an informational screen.
type Page struct {
	Title    string
	Sections []Section
}

// Intro copy.
const (
	Tagline   = `"The Thinking Levels Game"`
	Welcome   = "Welcome to 360IQ, the game that challenges your mind across five dimensions of intelligence. Each level will reveal more about your personality, critical thinking, and IQ."
	Strapline = "5 Levels · AI Evaluation · Personality Mapping"
)

// Closing copy for the final report.
const (
	ReportHeading    = "Analysis Complete"
	ReportSubheading = "Your Thinking Profile has been mapped."
	ClosingQuote     = `"Your journey in 360IQ shows your unique strengths. Keep developing your mind for innovation, resilience, and success."`
)

// Placeholder is the hint shown in the empty answer box.
const Placeholder = "Type your answer here... Be detailed to get a more accurate evaluation."

// HowItWorks describes the assessment.
var HowItWorks = Page{
	Title: "The 360IQ Methodology",
	Sections: []Section{
		{
			Heading: "Multidimensional Assessment",
			Text:    "Unlike traditional IQ tests that focus solely on pattern recognition, 360IQ evaluates five distinct cognitive pillars: Deductive Logic, Analytical Processing, Divergent Creativity, Strategic Risk Management, and Adaptive Leadership.",
		},
		{
			Heading: "Powered by WealthMind Psychology",
			Text:    "Our evaluation framework is built upon the WealthMind Psychology proprietary cognitive model. This model analyzes not just the correctness of your answer, but the linguistic patterns, risk tolerance, and innovative depth of your reasoning.",
		},
		{
			Heading: "Real-time AI Synthesis",
			Text:    "Your responses are parsed by a large language model (Gemini by default) through a specialized psychological prompt architecture to provide instant feedback and personality profiling.",
		},
	},
}

// Privacy describes how answers are handled.
var Privacy = Page{
	Title: "Privacy & Data Security",
	Sections: []Section{
		{
			Heading: "Ephemeral Data Processing",
			Text:    "360IQ is designed with a 'Privacy-First' architecture. Your answers are processed in real-time and are not stored in any permanent database. Once you close your session, your specific answers are purged.",
		},
		{
			Heading: "AI Interaction",
			Text:    "Your responses are sent to the configured AI provider for evaluation. No personal identifying information (PII) like your name or email is shared with the AI or collected by 360IQ.",
		},
		{
			Heading: "Local Session State",
			Text:    "Nothing is written to disk unless you ask for a log file. Your session state lives in the memory of this process for the duration of the game only.",
		},
	},
}
