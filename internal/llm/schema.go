package llm

import (
	"encoding/json"
	"log"

	"github.com/xeipuuv/gojsonschema"
)

// menuAnalysisSchema constrains the model to exactly the shape the
// scan pipeline consumes: three ranked lists of at most 3 dishes, each
// with name, short reason and 0-3 tags, plus a warnings list.
const menuAnalysisSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"topPicks": {"$ref": "#/definitions/dishList"},
		"caution": {"$ref": "#/definitions/dishList"},
		"avoid": {"$ref": "#/definitions/dishList"},
		"warnings": {
			"type": "array",
			"items": {"type": "string"}
		}
	},
	"required": ["topPicks", "caution", "avoid", "warnings"],
	"definitions": {
		"dishList": {
			"type": "array",
			"maxItems": 3,
			"items": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string"},
					"reason": {"type": "string"},
					"tags": {
						"type": "array",
						"maxItems": 3,
						"items": {"type": "string"}
					}
				},
				"required": ["name", "reason", "tags"]
			}
		}
	}
}`

const mealPhotoSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"caloriesKcal": {"type": "number"},
		"proteinG": {"type": "number"},
		"carbsG": {"type": "number"},
		"fatG": {"type": "number"},
		"description": {"type": "string"}
	},
	"required": ["caloriesKcal", "proteinG", "carbsG", "fatG", "description"]
}`

var (
	menuSchema *gojsonschema.Schema
	mealSchema *gojsonschema.Schema
)

func init() {
	var err error

	menuSchema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(menuAnalysisSchema))
	if err != nil {
		log.Fatal("invalid menu analysis schema:", err)
	}

	mealSchema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(mealPhotoSchema))
	if err != nil {
		log.Fatal("invalid meal photo schema:", err)
	}
}

// MenuGenerationConfig is the fixed generation config for menu scans.
func MenuGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		ResponseMIMEType:   "application/json",
		ResponseJSONSchema: json.RawMessage(menuAnalysisSchema),
		Temperature:        0.2,
		MaxOutputTokens:    1024,
	}
}

// MealGenerationConfig is the fixed generation config for meal photos.
func MealGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		ResponseMIMEType:   "application/json",
		ResponseJSONSchema: json.RawMessage(mealPhotoSchema),
		Temperature:        0.2,
		MaxOutputTokens:    200,
	}
}
