package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildStructuringPrompt creates the prompt that turns raw CV text into the
// fixed JSON schema. The model must answer with the JSON object alone.
func (pb *PromptBuilder) BuildStructuringPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the following CV text and structure the information in this exact JSON format:
{
  "personal_info": { "name": "", "email": "", "phone": "", "address": "" },
  "experiences": [ { "title": "", "company": "", "dates": "", "description": "" } ],
  "education": [ { "school": "", "department": "", "degree": "", "dates": "" } ],
  "skills": []
}

Return ONLY this JSON object. Do not add any other text, explanation or markdown formatting.

CV text:

%s`, cvText)
}

// BuildCoverLetterPrompt creates the prompt for the optional cover letter,
// using the already structured CV data plus the target job description.
func (pb *PromptBuilder) BuildCoverLetterPrompt(structuredCvData, jobDescription string) string {
	return fmt.Sprintf(`You are an experienced career coach. Write a concise, professional cover letter (3-4 paragraphs) for the candidate described by the structured CV data below, tailored to the given job description.

STRUCTURED CV DATA:
%s

JOB DESCRIPTION:
%s

Write in the first person, keep it under 350 words, and return ONLY the cover letter text. No headers, no placeholders, no markdown.`, structuredCvData, jobDescription)
}
