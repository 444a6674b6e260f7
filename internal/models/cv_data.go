package models

// CvData is the fixed schema the structuring step asks Gemini to fill in.
// Every field is optional on the wire; the renderer decides what is usable.
type CvData struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
}

type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type Education struct {
	School     string `json:"school"`
	Department string `json:"department"`
	Degree     string `json:"degree"`
	Dates      string `json:"dates"`
}
