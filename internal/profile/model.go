package profile

// Goal values match the mobile client's wording.
type Goal string

const (
	GoalLoseFat    Goal = "Lose fat"
	GoalMaintain   Goal = "Maintain weight"
	GoalGainMuscle Goal = "Gain muscle"
)

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "Low"
	ActivityMedium ActivityLevel = "Medium"
	ActivityHigh   ActivityLevel = "High"
)

// BaseParams are the optional physical parameters used for
// personal macro targets.
type BaseParams struct {
	HeightCm      float64       `json:"heightCm"`
	WeightKg      float64       `json:"weightKg"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Age           int           `json:"age,omitempty"`
	Sex           string        `json:"sex,omitempty"`
}

// UserProfile is created at onboarding completion and mutated by
// profile edits. Scanning requires it to exist.
type UserProfile struct {
	Goal               Goal        `json:"goal"`
	DietaryPreferences []string    `json:"dietaryPreferences"`
	Allergies          []string    `json:"allergies"`
	BaseParams         *BaseParams `json:"baseParams,omitempty"`
}

// Prefs are small app-level flags and counters.
type Prefs struct {
	LaunchCount            int  `json:"launchCount"`
	SignInNudgeDismissed   bool `json:"signInNudgeDismissed"`
	SaveScansToPhotos      bool `json:"saveScansToPhotos"`
	SaveScansPromptHandled bool `json:"saveScansPromptHandled"`
}
