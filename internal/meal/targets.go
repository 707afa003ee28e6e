package meal

import (
	"math"

	"github.com/alexshipulin/Buddy/internal/profile"
)

// ComputePersonalTargets derives daily macro targets from the profile
// using Mifflin-St Jeor. Returns nil when base parameters are missing.
func ComputePersonalTargets(user *profile.UserProfile) *MacroTotals {
	if user == nil || user.BaseParams == nil {
		return nil
	}

	p := user.BaseParams

	age := p.Age
	if age == 0 {
		age = 30
	}

	sexOffset := 5.0
	if p.Sex == "Female" {
		sexOffset = -161
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(age) + sexOffset
	maintenance := bmr * activityMultiplier(p.ActivityLevel)

	target := maintenance
	switch user.Goal {
	case profile.GoalLoseFat:
		target -= 350
	case profile.GoalGainMuscle:
		target += 250
	}

	calories := math.Max(1200, math.Round(target))

	proteinPerKg := 1.8
	if user.Goal == profile.GoalGainMuscle {
		proteinPerKg = 2
	}
	protein := math.Round(p.WeightKg * proteinPerKg)
	fat := math.Round(calories * 0.28 / 9)
	carbs := math.Round((calories - protein*4 - fat*9) / 4)

	return &MacroTotals{
		CaloriesKcal: calories,
		ProteinG:     protein,
		CarbsG:       carbs,
		FatG:         fat,
	}
}

func activityMultiplier(level profile.ActivityLevel) float64 {
	switch level {
	case profile.ActivityLow:
		return 1.3
	case profile.ActivityMedium:
		return 1.5
	default:
		return 1.7
	}
}
