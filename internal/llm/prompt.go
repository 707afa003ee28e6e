package llm

import (
	"fmt"
	"strings"
)

// BuildMenuAnalysisPrompt interpolates the user's goal, dietary
// preferences and allergies into the menu analysis instruction.
func BuildMenuAnalysisPrompt(goal string, preferences, allergies []string) string {
	prefs := "none"
	if len(preferences) > 0 {
		prefs = strings.Join(preferences, ", ")
	}

	allergyList := "none"
	if len(allergies) > 0 {
		allergyList = strings.Join(allergies, ", ")
	}

	return fmt.Sprintf(`Analyze the photographed restaurant menu for a diner with this profile:
- Goal: %s
- Dietary preferences: %s
- Allergies: %s

Group dishes into topPicks, caution and avoid (at most 3 each).
For every dish return name, a short reason, and 0-3 tags.
Also return a warnings list for anything the diner should know
(allergy conflicts, unreadable sections, missing prices).

Return JSON matching exactly:
{
  "topPicks": [{"name": "...", "reason": "...", "tags": ["..."]}],
  "caution": [{"name": "...", "reason": "...", "tags": ["..."]}],
  "avoid": [{"name": "...", "reason": "...", "tags": ["..."]}],
  "warnings": ["..."]
}`, goal, prefs, allergyList)
}

// BuildStrictMenuAnalysisPrompt is the abbreviated retry variant used
// after a parse failure.
func BuildStrictMenuAnalysisPrompt(goal string, preferences, allergies []string) string {
	return "Return ONLY JSON. No markdown. No extra text.\n\n" +
		BuildMenuAnalysisPrompt(goal, preferences, allergies)
}

func BuildMealPhotoPrompt() string {
	return "Analyze this meal photo and return JSON with caloriesKcal, proteinG, carbsG, fatG (numbers) and description (string)."
}

func BuildStrictMealPhotoPrompt() string {
	return "Return ONLY JSON. No markdown. No extra text. " + BuildMealPhotoPrompt()
}

// BuildChatPrompt frames a user question for the assistant, with
// optional context (profile, today's macros) serialized by the caller.
func BuildChatPrompt(contextText, message string) string {
	prefix := ""
	if contextText != "" {
		prefix = "Context: " + contextText + "\n\n"
	}
	return prefix + "User question: " + message +
		"\n\nProvide a helpful, concise response about nutrition and meal planning."
}
