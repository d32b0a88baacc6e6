package summarize

// Prompt templates — data only, no logic.

// summaryPrompt asks for a bullet-point digest of one transcript.
// Args: topic, topic, comma-separated entity names, transcript.
const summaryPrompt = `Summarize the following podcast transcript, focusing on key %s insights:

Key areas to highlight:
- Global policy impacts and regulatory changes
- Political issues affecting the %s
- Technology advancements and innovations
- Market trends and business developments
- Mentions of major players: %s

Provide a concise summary with actionable insights in bullet points.

Transcript:
%s`
