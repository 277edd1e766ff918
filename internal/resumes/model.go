package resumes

import "time"

// Resume is a user-owned resume document. Section slices are stored and
// returned whole; clients replace them in full on update.
type Resume struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Title          string           `json:"title"`
	ThumbnailLink  string           `json:"thumbnailLink"`
	ProfileInfo    ProfileInfo      `json:"profileInfo"`
	ContactInfo    ContactInfo      `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Interests      []string         `json:"interests"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type ProfileInfo struct {
	ProfileImg        *string `json:"profileImg"`
	ProfilePreviewURL string  `json:"profilePreviewUrl"`
	FullName          string  `json:"fullName"`
	Designation       string  `json:"designation"`
	Summary           string  `json:"summary"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill progress is a 0-100 proficiency value.
type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// NewDefault builds the default resume template for a new record: every
// section present, each list seeded with a single empty entry so the editor
// renders a blank form.
func NewDefault(userID, title string) Resume {
	now := time.Now().UTC()
	return Resume{
		UserID: userID,
		Title:  title,
		ProfileInfo: ProfileInfo{
			ProfileImg:        nil,
			ProfilePreviewURL: "",
			FullName:          "",
			Designation:       "",
			Summary:           "",
		},
		ContactInfo:    ContactInfo{},
		WorkExperience: []WorkExperience{{}},
		Education:      []Education{{}},
		Skills:         []Skill{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Languages:      []Language{{}},
		Interests:      []string{""},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
