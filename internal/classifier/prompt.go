package classifier

import "fmt"

const systemInstruction = `You are an expert ocean hazard analyst. Analyze the given hazard report and provide:
1. Severity level: Low, Medium, or High
2. Panic index: Score from 0-100 (0=no panic, 100=extreme panic)
3. AI category: Refined category based on description

Respond in JSON format:
{
    "severity": "Low|Medium|High",
    "panic_index": 0-100,
    "ai_category": "refined_category",
    "reasoning": "brief explanation"
}`

func buildPrompt(hazardType, description string) string {
	return fmt.Sprintf(
		"Hazard Type: %s\nDescription: %s\n\nPlease analyze this ocean hazard report.",
		hazardType, description,
	)
}
