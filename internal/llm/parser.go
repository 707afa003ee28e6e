package llm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ParseMenuAnalysis validates raw model output against the menu schema
// and decodes it. Schema violations count as parse failures so the
// caller's single-retry policy covers both.
func ParseMenuAnalysis(raw string) (*MenuAnalysis, error) {
	if err := validate(menuSchema, raw); err != nil {
		return nil, err
	}

	var analysis MenuAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, errors.New("invalid menu analysis JSON")
	}
	return &analysis, nil
}

// ParseMealPhotoAnalysis validates and decodes a meal photo reply.
func ParseMealPhotoAnalysis(raw string) (*MealPhotoAnalysis, error) {
	if err := validate(mealSchema, raw); err != nil {
		return nil, err
	}

	var analysis MealPhotoAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, errors.New("invalid meal photo JSON")
	}
	return &analysis, nil
}

func validate(schema *gojsonschema.Schema, raw string) error {
	if !json.Valid([]byte(raw)) {
		return errors.New("model returned non-json output")
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return errors.New("model returned non-json output")
	}
	if !result.Valid() {
		return fmt.Errorf("model output violates schema: %s", result.Errors()[0])
	}
	return nil
}
