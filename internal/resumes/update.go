package resumes

// Update is a typed partial update for a resume. A nil field means "leave
// unchanged"; a present field replaces the corresponding record field whole.
// Slices are replaced in full, never merged element-wise.
type Update struct {
	Title          *string           `json:"title"`
	ThumbnailLink  *string           `json:"thumbnailLink"`
	ProfileInfo    *ProfileInfo      `json:"profileInfo"`
	ContactInfo    *ContactInfo      `json:"contactInfo"`
	WorkExperience *[]WorkExperience `json:"workExperience"`
	Education      *[]Education      `json:"education"`
	Skills         *[]Skill          `json:"skills"`
	Projects       *[]Project        `json:"projects"`
	Certifications *[]Certification  `json:"certifications"`
	Languages      *[]Language       `json:"languages"`
	Interests      *[]string         `json:"interests"`
}

// Apply performs the shallow merge onto the record.
func (u Update) Apply(r *Resume) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.ThumbnailLink != nil {
		r.ThumbnailLink = *u.ThumbnailLink
	}
	if u.ProfileInfo != nil {
		r.ProfileInfo = *u.ProfileInfo
	}
	if u.ContactInfo != nil {
		r.ContactInfo = *u.ContactInfo
	}
	if u.WorkExperience != nil {
		r.WorkExperience = *u.WorkExperience
	}
	if u.Education != nil {
		r.Education = *u.Education
	}
	if u.Skills != nil {
		r.Skills = *u.Skills
	}
	if u.Projects != nil {
		r.Projects = *u.Projects
	}
	if u.Certifications != nil {
		r.Certifications = *u.Certifications
	}
	if u.Languages != nil {
		r.Languages = *u.Languages
	}
	if u.Interests != nil {
		r.Interests = *u.Interests
	}
}
