package llm

import (
	"strings"

	"github.com/talentform/docextract/constants"
)

// BuildInstruction returns the document-type-specific system instruction.
// The two instructions differ only in the output schema they demand.
func BuildInstruction(dt constants.DocumentType) string {
	if dt == constants.DocumentTypeJD {
		return jdInstruction
	}
	return cvInstruction
}

var cvInstruction = strings.TrimSpace(`
You are an expert at extracting structured information from unstructured text.
Do not make up any information.
Extract the following from the resume text below: full name, email address,
phone number, location, summary, LinkedIn/GitHub/portfolio URLs, skills,
work experience (job title, company, duration, description), education
(degree, institution, graduation year), certifications, languages, projects,
and references.
Return ONLY a JSON object with this structure; use "Not Available" when a
field is missing:
{
  "full_name": "string",
  "email_address": "string",
  "phone_number": "string",
  "location": "string",
  "summary": "string",
  "linkedin_profile": "URL string or null",
  "github_profile": "URL string or null",
  "portfolio_website": "URL string or null",
  "skills": ["string"],
  "work_experience": [{"job_title": "string", "company": "string", "duration": "string", "description": "string"}],
  "education": [{"degree": "string", "institution": "string", "graduation_year": "string"}],
  "certifications": ["string"],
  "languages": ["string"],
  "projects": ["string"],
  "references": ["string"]
}
Here is the resume text:
`)

var jdInstruction = strings.TrimSpace(`
You are an expert at extracting structured information from unstructured text.
Do not make up any information.
Extract the following from the job description text below: job title, company
name, location, job type, salary range, company website, posting date, contact
information, responsibilities, requirements, benefits, application
instructions, required certifications, and preferred languages.
Return ONLY a JSON object with this structure; use "Not Available" when a
field is missing:
{
  "job_title": "string",
  "company_name": "string",
  "location": "string",
  "job_type": "string",
  "salary_range": "string",
  "company_website": "URL string or null",
  "posting_date": "string",
  "contact_information": "string",
  "responsibilities": ["string"],
  "requirements": ["string"],
  "benefits": ["string"],
  "application_instructions": "string",
  "required_certifications": ["string"],
  "preferred_languages": ["string"]
}
Here is the job description text:
`)

// BuildSchema returns the JSON Schema (draft 2020-12 subset) used to validate
// the model's output for the given document type.
func BuildSchema(dt constants.DocumentType) map[string]any {
	if dt == constants.DocumentTypeJD {
		return jdSchema()
	}
	return cvSchema()
}

func cvSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"full_name":         map[string]any{"type": "string"},
			"email_address":     map[string]any{"type": "string"},
			"phone_number":      map[string]any{"type": "string"},
			"location":          map[string]any{"type": "string"},
			"summary":           map[string]any{"type": "string"},
			"linkedin_profile":  nullableString(),
			"github_profile":    nullableString(),
			"portfolio_website": nullableString(),
			"skills":            stringArray(),
			"work_experience": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"job_title":   map[string]any{"type": "string"},
						"company":     map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
				},
			},
			"education": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"degree":          map[string]any{"type": "string"},
						"institution":     map[string]any{"type": "string"},
						"graduation_year": map[string]any{"type": "string"},
					},
				},
			},
			"certifications": stringArray(),
			"languages":      stringArray(),
			"projects":       stringArray(),
			"references":     stringArray(),
		},
		"required": []string{"full_name"},
	}
}

func jdSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_title":                map[string]any{"type": "string"},
			"company_name":             map[string]any{"type": "string"},
			"location":                 map[string]any{"type": "string"},
			"job_type":                 map[string]any{"type": "string"},
			"salary_range":             map[string]any{"type": "string"},
			"company_website":          nullableString(),
			"posting_date":             map[string]any{"type": "string"},
			"contact_information":      map[string]any{"type": "string"},
			"responsibilities":         stringArray(),
			"requirements":             stringArray(),
			"benefits":                 stringArray(),
			"application_instructions": map[string]any{"type": "string"},
			"required_certifications":  stringArray(),
			"preferred_languages":      stringArray(),
		},
		"required": []string{"job_title"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
