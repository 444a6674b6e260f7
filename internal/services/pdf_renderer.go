package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"atscv/cv-converter/internal/models"
)

type PDFRendererService interface {
	RenderCV(structuredCvData string) ([]byte, error)
}

type pdfRendererService struct{}

func NewPDFRendererService() PDFRendererService {
	return &pdfRendererService{}
}

// RenderCV parses the structured JSON produced by the AI service and lays it
// out as an ATS friendly single column PDF. Parse failure and an entirely
// empty schema are distinct errors.
func (r *pdfRendererService) RenderCV(structuredCvData string) ([]byte, error) {
	var cvData models.CvData
	if err := json.Unmarshal([]byte(structuredCvData), &cvData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableData, err)
	}

	if isEmptyCvData(cvData) {
		return nil, ErrEmptyResult
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	// Personal info
	name := safeGet(cvData.PersonalInfo.Name)
	if name != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(contentWidth, 9, name, "", "L", false)
	}

	var contactParts []string
	for _, part := range []string{
		safeGet(cvData.PersonalInfo.Email),
		safeGet(cvData.PersonalInfo.Phone),
		safeGet(cvData.PersonalInfo.Address),
	} {
		if part != "" {
			contactParts = append(contactParts, part)
		}
	}
	if len(contactParts) > 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(contentWidth, 6, strings.Join(contactParts, " | "), "", "L", false)
	}
	pdf.Ln(4)

	// Experience
	if len(cvData.Experiences) > 0 {
		r.addSectionHeading(pdf, contentWidth, "EXPERIENCE")
		for _, exp := range cvData.Experiences {
			title := safeGet(exp.Title)
			company := safeGet(exp.Company)

			headline := title
			if company != "" {
				if headline != "" {
					headline += " | "
				}
				headline += company
			}
			if headline != "" {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.MultiCell(contentWidth, 6, headline, "", "L", false)
			}

			pdf.SetFont("Helvetica", "", 11)
			if dates := safeGet(exp.Dates); dates != "" {
				pdf.MultiCell(contentWidth, 6, dates, "", "L", false)
			}
			if desc := safeGet(exp.Description); desc != "" {
				pdf.MultiCell(contentWidth, 6, desc, "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	// Education
	if len(cvData.Education) > 0 {
		r.addSectionHeading(pdf, contentWidth, "EDUCATION")
		for _, edu := range cvData.Education {
			if school := safeGet(edu.School); school != "" {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.MultiCell(contentWidth, 6, school, "", "L", false)
			}

			pdf.SetFont("Helvetica", "", 11)
			department := safeGet(edu.Department)
			degree := safeGet(edu.Degree)
			line := department
			if degree != "" {
				if line != "" {
					line += " - "
				}
				line += degree
			}
			if line != "" {
				pdf.MultiCell(contentWidth, 6, line, "", "L", false)
			}
			if dates := safeGet(edu.Dates); dates != "" {
				pdf.MultiCell(contentWidth, 6, dates, "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	// Skills
	var skills []string
	for _, skill := range cvData.Skills {
		if s := safeGet(skill); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) > 0 {
		r.addSectionHeading(pdf, contentWidth, "SKILLS")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(contentWidth, 6, strings.Join(skills, ", "), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *pdfRendererService) addSectionHeading(pdf *fpdf.Fpdf, contentWidth float64, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(contentWidth, 8, title, "", "L", false)

	// Gray separator under the heading
	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.3)
	pdf.Line(left, y, left+contentWidth, y)
	pdf.Ln(3)
}

// safeGet scrubs both empty values and the literal "null" the model
// sometimes fills unknown fields with.
func safeGet(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, "null") {
		return ""
	}
	return trimmed
}

func isEmptyCvData(cvData models.CvData) bool {
	if safeGet(cvData.PersonalInfo.Name) != "" ||
		safeGet(cvData.PersonalInfo.Email) != "" ||
		safeGet(cvData.PersonalInfo.Phone) != "" ||
		safeGet(cvData.PersonalInfo.Address) != "" {
		return false
	}
	if len(cvData.Experiences) > 0 || len(cvData.Education) > 0 {
		return false
	}
	for _, skill := range cvData.Skills {
		if safeGet(skill) != "" {
			return false
		}
	}
	return true
}
